package model

import (
	"fmt"

	"github.com/YuminosukeSato/scigo/sklearn/lightgbm"
	"gonum.org/v1/gonum/mat"
)

// Params are the gradient-boosted tree hyperparameters. The defaults are
// fixed; there is no tuning loop.
type Params struct {
	Trees        int
	MaxDepth     int
	Leaves       int
	LearningRate float64
}

// DefaultParams returns the reference hyperparameters.
func DefaultParams() Params {
	return Params{
		Trees:        500,
		MaxDepth:     10,
		Leaves:       20,
		LearningRate: 0.1,
	}
}

// Classifier is a fitted gradient-boosted tree model. NaN feature values are
// routed to the trees' default branches by the underlying library, so rows
// with missing statistics need no imputation.
type Classifier struct {
	clf *lightgbm.LGBMClassifier
}

// Train fits a LightGBM classifier on the feature matrix and binary labels.
func Train(x *mat.Dense, y []float64, p Params) (*Classifier, error) {
	n, _ := x.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("train: %d feature rows but %d labels", n, len(y))
	}
	clf := lightgbm.NewLGBMClassifier().
		WithNumIterations(p.Trees).
		WithMaxDepth(p.MaxDepth).
		WithNumLeaves(p.Leaves).
		WithLearningRate(p.LearningRate)
	yCol := mat.NewDense(len(y), 1, append([]float64(nil), y...))
	if err := clf.Fit(x, yCol); err != nil {
		return nil, fmt.Errorf("fit classifier: %w", err)
	}
	return &Classifier{clf: clf}, nil
}

// Predict returns the predicted class (0 or 1) per row.
func (c *Classifier) Predict(x *mat.Dense) ([]float64, error) {
	pred, err := c.clf.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	n, _ := pred.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = pred.At(i, 0)
	}
	return out, nil
}
