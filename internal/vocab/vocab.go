// Package vocab computes word popularity within label partitions and the
// discriminative word weights derived from them.
package vocab

import (
	"errors"

	"github.com/KaramelBytes/rowsense-cli/internal/dataset"
	"github.com/KaramelBytes/rowsense-cli/internal/textproc"
)

// ErrEmptyPartition indicates a label partition produced zero tokens, so no
// popularity distribution exists for it.
var ErrEmptyPartition = errors.New("partition has no tokens")

// Popularity tokenizes every row of one label partition and returns the
// relative frequency of each word. Frequencies sum to 1 over all observed
// words, repetitions counted.
func Popularity(rows []dataset.Row) (map[string]float64, error) {
	counts := make(map[string]int)
	total := 0
	for _, r := range rows {
		for _, w := range textproc.Tokenize(r.Values) {
			counts[w]++
			total++
		}
	}
	if total == 0 {
		return nil, ErrEmptyPartition
	}
	pop := make(map[string]float64, len(counts))
	for w, c := range counts {
		pop[w] = float64(c) / float64(total)
	}
	return pop, nil
}

// AllWords returns the set of distinct words across all rows.
func AllWords(rows []dataset.Row) map[string]struct{} {
	words := make(map[string]struct{})
	for _, r := range rows {
		for _, w := range textproc.Tokenize(r.Values) {
			words[w] = struct{}{}
		}
	}
	return words
}

// Weights scores every word in words as (h-o)/(h+o), where h and o are the
// word's popularity in the header and other partitions (0 when absent).
// Weights lie in [-1, 1]: 1 when the word appears only in headers, -1 when
// only in others. A word absent from both maps has no defined weight and is
// omitted; lookups default to 0.
func Weights(headerPop, otherPop map[string]float64, words map[string]struct{}) map[string]float64 {
	weights := make(map[string]float64, len(words))
	for w := range words {
		h := headerPop[w]
		o := otherPop[w]
		if h+o == 0 {
			continue
		}
		weights[w] = (h - o) / (h + o)
	}
	return weights
}
