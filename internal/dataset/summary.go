package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/rowsense-cli/internal/textproc"
)

// Summary captures dataset-level statistics for the inspect command.
type Summary struct {
	Rows         int
	Headers      int
	Others       int
	MeanWidth    float64
	MeanSparsity float64
	TopWords     []WordCount
}

// WordCount is a word with its occurrence count in the header partition.
type WordCount struct {
	Word  string
	Count int
}

// Summarize computes counts, mean row width, mean sparsity and the most
// frequent header-partition words (up to topN).
func Summarize(rows []Row, topN int) Summary {
	s := Summary{Rows: len(rows)}
	counts := make(map[string]int)
	var widthSum, sparsitySum float64
	for _, r := range rows {
		widthSum += float64(len(r.Values))
		if len(r.Values) > 0 {
			empty := 0
			for _, v := range r.Values {
				if v == "" {
					empty++
				}
			}
			sparsitySum += float64(empty) / float64(len(r.Values))
		}
		if r.Label {
			s.Headers++
			for _, w := range textproc.Tokenize(r.Values) {
				counts[w]++
			}
		} else {
			s.Others++
		}
	}
	if s.Rows > 0 {
		s.MeanWidth = widthSum / float64(s.Rows)
		s.MeanSparsity = sparsitySum / float64(s.Rows)
	}
	tops := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		tops = append(tops, WordCount{Word: w, Count: c})
	}
	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Count == tops[j].Count {
			return tops[i].Word < tops[j].Word
		}
		return tops[i].Count > tops[j].Count
	})
	if topN > 0 && len(tops) > topN {
		tops = tops[:topN]
	}
	s.TopWords = tops
	return s
}

// Render returns a compact plain-text summary.
func (s Summary) Render() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Rows: %d (headers %d, others %d)\n", s.Rows, s.Headers, s.Others))
	b.WriteString(fmt.Sprintf("Mean row width: %.2f\n", s.MeanWidth))
	b.WriteString(fmt.Sprintf("Mean sparsity: %.3f\n", s.MeanSparsity))
	if len(s.TopWords) > 0 {
		b.WriteString("\n[TOP HEADER WORDS]\n")
		for _, wc := range s.TopWords {
			b.WriteString(fmt.Sprintf("- %s (%d)\n", wc.Word, wc.Count))
		}
	}
	return b.String()
}
