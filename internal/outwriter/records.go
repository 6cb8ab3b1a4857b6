package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/pipelog/internal/contract"
	"github.com/huangsam/pipelog/internal/parquet"
	"github.com/huangsam/pipelog/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRecords dumps the parsed record set, dispatching based on the output
// format configured. Tables show the first cfg.Limit records; the structured
// formats (csv, json, parquet) always export the full set.
func WriteRecords(records []schema.LogRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecordsCSV(w, records, cfg)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteRecords(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecordsTable(w, records, cfg)
		}, "Wrote table")
	}
}

// writeRecordsTable renders the human-readable record grid.
func writeRecordsTable(w io.Writer, records []schema.LogRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	textWidth := getMaxTableTextWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Line", "Level", "Timestamp", "Job", "Duration(s)", "Rows", "Text"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	shown := records
	if len(shown) > cfg.Limit {
		shown = shown[:cfg.Limit]
	}

	var data [][]string
	for _, r := range shown {
		data = append(data, recordRow(r, fmtFloat, textWidth))
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d of %d records\n", len(shown), len(records))
	return err
}

// recordRow formats one record as table cells, leaving absent fields blank.
func recordRow(r schema.LogRecord, fmtFloat func(float64) string, textWidth int) []string {
	timestamp := ""
	if r.Timestamp != nil {
		timestamp = r.Timestamp.Format(schema.ReportTimeLayout)
	}
	duration := ""
	if r.DurationSeconds != nil {
		duration = fmtFloat(*r.DurationSeconds)
	}
	rows := ""
	if r.RowsProcessed != nil {
		rows = strconv.FormatInt(*r.RowsProcessed, 10)
	}
	return []string{
		strconv.Itoa(r.LineNumber),
		contract.GetColorLevel(r.Level),
		timestamp,
		r.JobName,
		duration,
		rows,
		contract.TruncateText(r.RawText, textWidth),
	}
}

// writeRecordsCSV writes the full record set in CSV format.
func writeRecordsCSV(w io.Writer, records []schema.LogRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{"line_number", "level", "timestamp", "job_name", "duration_seconds", "rows_processed", "raw_text"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		timestamp := ""
		if r.Timestamp != nil {
			timestamp = r.Timestamp.Format(schema.ReportTimeLayout)
		}
		duration := ""
		if r.DurationSeconds != nil {
			duration = fmtFloat(*r.DurationSeconds)
		}
		rows := ""
		if r.RowsProcessed != nil {
			rows = strconv.FormatInt(*r.RowsProcessed, 10)
		}
		row := []string{
			strconv.Itoa(r.LineNumber),
			string(r.Level),
			timestamp,
			r.JobName,
			duration,
			rows,
			r.RawText,
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}
