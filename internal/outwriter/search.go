package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/pipelog/internal/contract"
	"github.com/huangsam/pipelog/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSearchResults prints the records matching a query. Tables show the
// first cfg.Limit matches; json and csv export every match. Parquet is a
// bulk-export format and is not offered for search output.
func WriteSearchResults(matches []schema.LogRecord, query string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, matches)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecordsCSV(w, matches, cfg)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("search results support text, csv or json output, not %s", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSearchTable(w, matches, query, cfg)
		}, "Wrote table")
	}
}

// writeSearchTable renders matches as a compact grid with a result summary.
func writeSearchTable(w io.Writer, matches []schema.LogRecord, query string, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Search results for: %q\n", query); err != nil {
		return err
	}

	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "No matches found")
		return err
	}

	textWidth := getMaxTableTextWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Line", "Level", "Timestamp", "Text"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	shown := matches
	if len(shown) > cfg.Limit {
		shown = shown[:cfg.Limit]
	}

	var data [][]string
	for _, r := range shown {
		timestamp := ""
		if r.Timestamp != nil {
			timestamp = r.Timestamp.Format(schema.ReportTimeLayout)
		}
		data = append(data, []string{
			strconv.Itoa(r.LineNumber),
			contract.GetColorLevel(r.Level),
			timestamp,
			contract.TruncateText(r.RawText, textWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Found %d matches, showing %d\n", len(matches), len(shown))
	return err
}
