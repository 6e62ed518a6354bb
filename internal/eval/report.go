package eval

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/KaramelBytes/rowsense-cli/internal/model"
)

// Report bundles one evaluation run: counts, hyperparameters and metrics,
// stamped with a run ID.
type Report struct {
	RunID   string
	Dataset string
	Rows    int
	Sampled int
	Train   int
	Metrics Metrics
	Params  model.Params
}

// NewReport creates a report with a fresh run ID.
func NewReport(dataset string, rows, sampled, train int, p model.Params, m Metrics) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Dataset: dataset,
		Rows:    rows,
		Sampled: sampled,
		Train:   train,
		Params:  p,
		Metrics: m,
	}
}

// Render writes the report to w. Format "table" renders a bordered metrics
// table; anything else falls back to plain lines.
func (r *Report) Render(w io.Writer, format string) {
	fmt.Fprintf(w, "Run %s\n", r.RunID)
	fmt.Fprintf(w, "Dataset %s: %d rows, %d sampled, %d train / %d test\n",
		r.Dataset, r.Rows, r.Sampled, r.Train, r.Metrics.Test)
	fmt.Fprintf(w, "Model: %d trees, depth %d, %d leaves, learning rate %g\n",
		r.Params.Trees, r.Params.MaxDepth, r.Params.Leaves, r.Params.LearningRate)

	if format == "table" {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Metric", "Value"})
		for _, row := range r.metricRows() {
			t.AppendRow(table.Row{row.name, fmt.Sprintf("%.4f", row.value)})
		}
		t.Render()
		return
	}
	for _, row := range r.metricRows() {
		fmt.Fprintf(w, "%s: %.4f\n", row.name, row.value)
	}
}

type metricRow struct {
	name  string
	value float64
}

func (r *Report) metricRows() []metricRow {
	return []metricRow{
		{"accuracy", r.Metrics.Accuracy},
		{"baseline accuracy (all-negative)", r.Metrics.Baseline},
		{"header-only accuracy", r.Metrics.HeaderAccuracy},
		{"precision", r.Metrics.Precision},
		{"recall", r.Metrics.Recall},
		{"f1", r.Metrics.F1},
	}
}
