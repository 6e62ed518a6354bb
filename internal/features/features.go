// Package features derives the per-row numeric features fed to the
// classifier. Degenerate rows (no values, no tokens, empty joined text) yield
// NaN sentinels rather than errors; the tree model routes missing values to a
// default branch.
package features

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/rowsense-cli/internal/dataset"
	"github.com/KaramelBytes/rowsense-cli/internal/textproc"
)

var (
	// Four-digit years 1900-2099.
	yearPattern = regexp.MustCompile(`(?:19|20)\d{2}`)
	// Digit-pair/digit-pair, e.g. 12/05.
	ddmmPattern = regexp.MustCompile(`\d{2}/\d{2}`)
)

// Vector holds the engineered features for one row. NumValues is computed for
// reporting but excluded from the trained feature set.
type Vector struct {
	NumValues    int
	Sparsity     float64
	FloatRatio   float64
	LongIntRatio float64
	WeightMean   float64
	WeightMax    float64
	WeightStd    float64
	YearDensity  float64
	DDMMDensity  float64
}

// Columns names the trained features, in matrix column order.
var Columns = []string{
	"sparsity",
	"float_ratio",
	"long_int_ratio",
	"word_weight_mean",
	"word_weight_max",
	"word_weight_std",
	"year_density",
	"ddmm_density",
}

// Extract computes the feature vector for one row given the word weight map.
func Extract(row dataset.Row, weights map[string]float64) Vector {
	v := Vector{NumValues: len(row.Values)}
	v.Sparsity = ratio(row.Values, func(s string) bool { return s == "" })
	v.FloatRatio = ratio(row.Values, isFloat)
	v.LongIntRatio = ratio(row.Values, isLongInt)
	v.WeightMean, v.WeightMax, v.WeightStd = weightStats(row, weights)

	joined := strings.Join(row.Values, " ")
	v.YearDensity = patternDensity(yearPattern, joined)
	v.DDMMDensity = patternDensity(ddmmPattern, joined)
	return v
}

// trained returns the feature values in Columns order.
func (v Vector) trained() []float64 {
	return []float64{
		v.Sparsity,
		v.FloatRatio,
		v.LongIntRatio,
		v.WeightMean,
		v.WeightMax,
		v.WeightStd,
		v.YearDensity,
		v.DDMMDensity,
	}
}

func ratio(values []string, pred func(string) bool) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	n := 0
	for _, v := range values {
		if pred(v) {
			n++
		}
	}
	return float64(n) / float64(len(values))
}

func isFloat(s string) bool {
	if !strings.Contains(s, ".") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isLongInt(s string) bool {
	if len(s) <= 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func weightStats(row dataset.Row, weights map[string]float64) (mean, max, std float64) {
	var ws []float64
	for _, w := range textproc.Tokenize(row.Values) {
		ws = append(ws, weights[w])
	}
	if len(ws) == 0 {
		nan := math.NaN()
		return nan, nan, nan
	}
	mean = stat.Mean(ws, nil)
	max = floats.Max(ws)
	// Population std: a single token has zero spread, not an undefined one.
	std = stat.PopStdDev(ws, nil)
	return mean, max, std
}

func patternDensity(re *regexp.Regexp, joined string) float64 {
	if len(joined) == 0 {
		return math.NaN()
	}
	return float64(len(re.FindAllStringIndex(joined, -1))) / float64(len(joined))
}
