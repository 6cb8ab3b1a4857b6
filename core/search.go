package core

import (
	"strings"

	"github.com/huangsam/pipelog/schema"
)

// Search returns every record whose raw text contains the query as a
// case-insensitive literal substring, preserving original line order.
// An empty (or whitespace-only) query returns nothing: matching everything
// by accident is worse than matching nothing.
func Search(records []schema.LogRecord, query string) []schema.LogRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []schema.LogRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.RawText), query) {
			matches = append(matches, r)
		}
	}
	return matches
}
