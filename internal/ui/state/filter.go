// Package state holds small pure helpers for the UI: filtering the grid
// sequence and keeping a focused row inside a scrolling window.
package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/RolfLobo/dembrandt/internal/catalog"
)

// FilterEntries returns the entries matching query, preserving catalog
// order. Matching is fuzzy against the domain first; when nothing ranks, a
// plain substring match against domain and kind is tried before giving up.
// An empty query returns every entry.
func FilterEntries(entries []catalog.Entry, query string) []catalog.Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		out := make([]catalog.Entry, len(entries))
		copy(out, entries)
		return out
	}

	domains := make([]string, len(entries))
	for i, entry := range entries {
		domains[i] = entry.Domain
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, domains)
	if len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]catalog.Entry, 0, len(matched))
		for i, entry := range entries {
			if _, ok := matched[i]; ok {
				filtered = append(filtered, entry)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}

	lower := strings.ToLower(trimmed)
	filtered := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Domain), lower) ||
			strings.Contains(strings.ToLower(entry.Kind), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
