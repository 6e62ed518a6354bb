package model_test

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/KaramelBytes/rowsense-cli/internal/model"
)

func makeData(n int) (*mat.Dense, []float64) {
	x := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i))
		x.Set(i, 1, float64(i)*2)
		if i%3 == 0 {
			y[i] = 1
		}
	}
	return x, y
}

func TestTrainTestSplitSizes(t *testing.T) {
	x, y := makeData(100)
	s, err := model.TrainTestSplit(x, y, 0.2, 42)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(s.YTest) != 20 || len(s.YTrain) != 80 {
		t.Fatalf("expected 80/20 split, got %d/%d", len(s.YTrain), len(s.YTest))
	}
	tr, _ := s.XTrain.Dims()
	te, _ := s.XTest.Dims()
	if tr != 80 || te != 20 {
		t.Fatalf("matrix dims do not match label lengths: %d/%d", tr, te)
	}
}

func TestTrainTestSplitDeterministicWithSeed(t *testing.T) {
	x, y := makeData(50)
	a, err := model.TrainTestSplit(x, y, 0.2, 7)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	b, err := model.TrainTestSplit(x, y, 0.2, 7)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if !reflect.DeepEqual(a.YTest, b.YTest) {
		t.Fatalf("same seed should give the same split")
	}
	c, err := model.TrainTestSplit(x, y, 0.2, 8)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if reflect.DeepEqual(a.YTest, c.YTest) {
		t.Fatalf("different seeds should almost surely differ")
	}
}

func TestTrainTestSplitRejectsEmptyPartitions(t *testing.T) {
	// 3 rows at ratio 0.2 rounds to an empty test set
	x, y := makeData(3)
	if _, err := model.TrainTestSplit(x, y, 0.2, 42); err == nil {
		t.Fatalf("expected error when the test partition is empty")
	}
	// ratio >= 1 leaves the training partition empty
	x, y = makeData(10)
	for _, ratio := range []float64{1.0, 1.5} {
		if _, err := model.TrainTestSplit(x, y, ratio, 42); err == nil {
			t.Fatalf("expected error for test ratio %g", ratio)
		}
	}
}

func TestTrainTestSplitCoversAllRows(t *testing.T) {
	x, y := makeData(30)
	s, err := model.TrainTestSplit(x, y, 0.2, 1)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	seen := make(map[float64]bool)
	for i := 0; i < len(s.YTrain); i++ {
		seen[s.XTrain.At(i, 0)] = true
	}
	for i := 0; i < len(s.YTest); i++ {
		id := s.XTest.At(i, 0)
		if seen[id] {
			t.Fatalf("row %v appears in both partitions", id)
		}
		seen[id] = true
	}
	if len(seen) != 30 {
		t.Fatalf("expected every row exactly once, saw %d", len(seen))
	}
}

func TestDefaultParams(t *testing.T) {
	p := model.DefaultParams()
	if p.Trees != 500 || p.MaxDepth != 10 || p.Leaves != 20 || p.LearningRate != 0.1 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}
