// Package textproc provides the word tokenization used by the vocabulary
// and feature layers.
package textproc

import (
	"strings"
	"unicode"
)

// punctuation is the fixed set of characters treated as word separators.
const punctuation = "-/():.,;"

var punctReplacer *strings.Replacer

func init() {
	pairs := make([]string, 0, len(punctuation)*2)
	for _, r := range punctuation {
		pairs = append(pairs, string(r), " ")
	}
	punctReplacer = strings.NewReplacer(pairs...)
}

// Tokenize lower-cases each value, replaces punctuation with spaces, splits on
// whitespace and drops tokens containing digits. Order is preserved and
// duplicates are retained. Empty input yields an empty (nil) result.
func Tokenize(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, tokenizeValue(v)...)
	}
	return out
}

func tokenizeValue(v string) []string {
	cleaned := punctReplacer.Replace(strings.ToLower(v))
	fields := strings.Fields(cleaned)
	out := fields[:0]
	for _, f := range fields {
		if hasDigit(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
