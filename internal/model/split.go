// Package model wraps train/test splitting and the gradient-boosted tree
// classifier behind a small training API.
package model

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Split holds the shuffled train/test partitions of a feature matrix and its
// label vector.
type Split struct {
	XTrain *mat.Dense
	XTest  *mat.Dense
	YTrain []float64
	YTest  []float64
}

// TrainTestSplit shuffles row indices with the given seed and carves off the
// first testRatio fraction as the test set. The split is random, not
// stratified. Both partitions must end up non-empty; too few rows for the
// ratio is an error, not a panic further down the pipeline.
func TrainTestSplit(x *mat.Dense, y []float64, testRatio float64, seed int64) (Split, error) {
	n, cols := x.Dims()
	nTest := int(float64(n) * testRatio)
	if nTest <= 0 || nTest >= n {
		return Split{}, fmt.Errorf("split: %d rows at test ratio %g leaves an empty partition", n, testRatio)
	}
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	s := Split{
		YTrain: make([]float64, 0, n-nTest),
		YTest:  make([]float64, 0, nTest),
	}
	trainRows := make([]float64, 0, (n-nTest)*cols)
	testRows := make([]float64, 0, nTest*cols)
	for i, idx := range perm {
		row := x.RawRowView(idx)
		if i < nTest {
			testRows = append(testRows, row...)
			s.YTest = append(s.YTest, y[idx])
		} else {
			trainRows = append(trainRows, row...)
			s.YTrain = append(s.YTrain, y[idx])
		}
	}
	s.XTest = mat.NewDense(nTest, cols, testRows)
	s.XTrain = mat.NewDense(n-nTest, cols, trainRows)
	return s, nil
}
