// Package eval computes classification metrics and renders the evaluation
// report.
package eval

// Metrics holds evaluation results on the test set. The positive class is
// the header row. Baseline is the accuracy of an always-negative predictor;
// HeaderAccuracy is the fraction of true header rows classified correctly.
type Metrics struct {
	Accuracy       float64
	Baseline       float64
	HeaderAccuracy float64
	Precision      float64
	Recall         float64
	F1             float64
	Test           int
	Headers        int
}

// Evaluate compares predictions against true labels. Labels and predictions
// are 0/1 floats; any prediction >= 0.5 counts as positive. Metrics with a
// zero denominator are reported as 0.
func Evaluate(yTrue, yPred []float64) Metrics {
	m := Metrics{Test: len(yTrue)}
	if len(yTrue) == 0 {
		return m
	}
	var correct, tp, fp, fn int
	for i := range yTrue {
		truth := yTrue[i] >= 0.5
		pred := yPred[i] >= 0.5
		if truth {
			m.Headers++
		}
		switch {
		case truth && pred:
			tp++
		case !truth && pred:
			fp++
		case truth && !pred:
			fn++
		}
		if truth == pred {
			correct++
		}
	}
	n := float64(len(yTrue))
	m.Accuracy = float64(correct) / n
	m.Baseline = float64(len(yTrue)-m.Headers) / n
	if m.Headers > 0 {
		m.HeaderAccuracy = float64(tp) / float64(m.Headers)
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
