// Package core has the parsing and analysis logic for ETL log files.
package core

import (
	"regexp"

	"github.com/huangsam/pipelog/schema"
)

// levelMatchers are checked in priority order; the first set with a match
// decides the level. A line matching no set is UNKNOWN.
var levelMatchers = []struct {
	level schema.Level
	re    *regexp.Regexp
}{
	{schema.ErrorLevel, regexp.MustCompile(`(?i)error|severe|fatal|exception|failed|failure`)},
	{schema.WarningLevel, regexp.MustCompile(`(?i)warning|warn`)},
	{schema.SuccessLevel, regexp.MustCompile(`(?i)success|completed|finished`)},
	{schema.InfoLevel, regexp.MustCompile(`(?i)info|information`)},
}

// ClassifyLine returns the severity level of one raw line. It never fails;
// a line with no recognized keyword is UNKNOWN.
func ClassifyLine(line string) schema.Level {
	for _, m := range levelMatchers {
		if m.re.MatchString(line) {
			return m.level
		}
	}
	return schema.UnknownLevel
}
