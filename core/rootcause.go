package core

import (
	"sort"
	"strings"

	"github.com/huangsam/pipelog/schema"
)

// rootCauseTaxonomy maps each keyword-driven category to its indicator terms.
// A record counts toward a category when its raw text contains any of the
// terms, case-insensitively; one record may count toward several categories.
var rootCauseTaxonomy = []struct {
	category schema.RootCauseCategory
	keywords []string
}{
	{schema.ConnectionCause, []string{"connection", "timeout", "network"}},
	{schema.MemoryCause, []string{"memory", "heap", "out of memory"}},
	{schema.DataQualityCause, []string{"null", "invalid", "corrupt", "constraint"}},
	{schema.PermissionCause, []string{"permission", "denied", "unauthorized", "access"}},
}

// ClassifyRootCauses scans error and warning records against the fixed keyword
// taxonomy and counts slow operations against the duration threshold. Only
// categories with at least one occurrence are returned, ordered by descending
// count and then by taxonomy declaration order.
func ClassifyRootCauses(records []schema.LogRecord) []schema.RootCause {
	counts := make(map[schema.RootCauseCategory]int)

	for _, r := range records {
		if !r.IsError && !r.IsWarning {
			continue
		}
		text := strings.ToLower(r.RawText)
		for _, entry := range rootCauseTaxonomy {
			for _, kw := range entry.keywords {
				if strings.Contains(text, kw) {
					counts[entry.category]++
					break
				}
			}
		}
	}

	// The performance category is threshold-driven, not keyword-driven, and
	// considers every duration-bearing record regardless of level.
	for _, r := range records {
		if r.DurationSeconds != nil && *r.DurationSeconds > schema.SlowThresholdSeconds {
			counts[schema.PerformanceCause]++
		}
	}

	var causes []schema.RootCause
	for _, category := range schema.AllRootCauseCategories {
		if n := counts[category]; n > 0 {
			causes = append(causes, schema.RootCause{Category: category, Count: n})
		}
	}
	sort.SliceStable(causes, func(i, j int) bool {
		return causes[i].Count > causes[j].Count
	})
	return causes
}
