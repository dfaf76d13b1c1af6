// Package wordcount counts token frequencies while keeping the order in
// which each distinct token first appears.
package wordcount

import (
	"slices"

	"github.com/nao1215/batchstat/internal/model"
)

// Count tallies every token in a single pass.
func Count(tokens []string) *model.FrequencyTable[string] {
	table := model.NewFrequencyTable[string]()
	for _, tok := range tokens {
		table.Add(tok)
	}
	return table
}

// Top returns up to n entries ordered by count, highest first. Entries with
// equal counts keep their first-seen order. A non-positive n returns all
// entries.
func Top(table *model.FrequencyTable[string], n int) []model.Entry[string] {
	entries := table.Entries()
	slices.SortStableFunc(entries, func(a, b model.Entry[string]) int {
		return b.Count - a.Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
