package features

import (
	"gonum.org/v1/gonum/mat"

	"github.com/KaramelBytes/rowsense-cli/internal/dataset"
)

// Matrix assembles the trained feature matrix and label vector for a row
// collection. One matrix row per input row, one column per entry of Columns;
// labels are 1 for header rows and 0 otherwise.
func Matrix(rows []dataset.Row, weights map[string]float64) (*mat.Dense, []float64) {
	x := mat.NewDense(len(rows), len(Columns), nil)
	y := make([]float64, len(rows))
	for i, r := range rows {
		x.SetRow(i, Extract(r, weights).trained())
		if r.Label {
			y[i] = 1
		}
	}
	return x, y
}
