package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timestampPatterns pair a recognizer with the layout used to parse its
// capture. Patterns with two capture groups split date and time so that
// runs of whitespace in the source line collapse to a single space.
var timestampPatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2}:\d{2})`), "2006-01-02 15:04:05"},
	{regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(\d{2}:\d{2}:\d{2})`), "01/02/2006 15:04:05"},
	{regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})`), "2006-01-02T15:04:05"},
}

var jobPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)job[:\s]+([A-Za-z0-9_\-]+)`),
	regexp.MustCompile(`(?i)workflow[:\s]+([A-Za-z0-9_\-]+)`),
	regexp.MustCompile(`(?i)session[:\s]+([A-Za-z0-9_\-]+)`),
	regexp.MustCompile(`(?i)\[(?:workflow|session)=([A-Za-z0-9_\-]+)\]`),
}

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)duration[:\s]+(\d+\.?\d*)\s*(s|ms|seconds|milliseconds)`),
	regexp.MustCompile(`(?i)elapsed[:\s]+(\d+\.?\d*)\s*(s|ms|seconds|milliseconds)`),
	regexp.MustCompile(`(?i)took\s+(\d+\.?\d*)\s*(s|ms|seconds|milliseconds)`),
}

var rowsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s+rows?\s+(?:processed|loaded|extracted|inserted)`),
	regexp.MustCompile(`(?i)processed\s+(\d+)\s+records?`),
	regexp.MustCompile(`(?i)(?:loaded|extracted|inserted)\s+(\d+)\s+rows?`),
}

// ExtractTimestamp returns the first recognized timestamp in the line, or nil.
// A capture that looks like a timestamp but fails calendar parsing (e.g. a
// 13th month) is treated as no match.
func ExtractTimestamp(line string) *time.Time {
	for _, p := range timestampPatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := m[1]
		if len(m) == 3 {
			value = m[1] + " " + m[2]
		}
		ts, err := time.Parse(p.layout, value)
		if err != nil {
			continue
		}
		return &ts
	}
	return nil
}

// ExtractJobName returns the first job/workflow/session identifier found in
// the line, or "" when none is recognized.
func ExtractJobName(line string) string {
	for _, re := range jobPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ExtractDuration returns the first recognized elapsed time in the line,
// normalized to seconds, or nil. Millisecond units are converted.
func ExtractDuration(line string) *float64 {
	for _, re := range durationPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		unit := strings.ToLower(m[2])
		if strings.Contains(unit, "ms") || strings.Contains(unit, "millisecond") {
			value /= 1000
		}
		return &value
	}
	return nil
}

// ExtractRowsProcessed returns the first recognized row/record count in the
// line, or nil. A capture that overflows int64 is treated as no match.
func ExtractRowsProcessed(line string) *int64 {
	for _, re := range rowsPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		return &value
	}
	return nil
}
