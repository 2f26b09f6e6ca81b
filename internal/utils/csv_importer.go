package utils

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/services"
)

const defaultBatchSize = 500

// InteractionWriter stores a validated batch of interactions
type InteractionWriter interface {
	AddInteractions(ctx context.Context, in []services.AddInteractionInput) ([]*models.Interaction, error)
}

// RowError describes a CSV row that was skipped
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ImportReport summarises an import run
type ImportReport struct {
	Imported int
	Skipped  int
	Errors   []RowError
}

// CSVImporter loads interactions from CSV files
type CSVImporter struct {
	writer    InteractionWriter
	batchSize int
}

// NewCSVImporter creates a new CSVImporter. A batchSize below 1 uses the default.
func NewCSVImporter(writer InteractionWriter, batchSize int) *CSVImporter {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &CSVImporter{
		writer:    writer,
		batchSize: batchSize,
	}
}

type columns struct {
	phone, prompt, link, result, timestamp int
}

var positional = columns{phone: 0, prompt: 1, link: 2, result: 3, timestamp: 4}

// ImportInteractions reads userPhoneNumber,prompt,link,result[,timestamp] rows.
// The header row is optional. Bad rows are reported and skipped; a store
// failure aborts the run and returns the report so far.
func (i *CSVImporter) ImportInteractions(ctx context.Context, r io.Reader) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	report := &ImportReport{}
	cols := positional
	first := true
	batch := make([]services.AddInteractionInput, 0, i.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := i.writer.AddInteractions(ctx, batch); err != nil {
			return fmt.Errorf("failed to store batch: %w", err)
		}
		report.Imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			report.skip(parseErr.Line, parseErr.Err)
			continue
		}
		if err != nil {
			return report, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if header, ok := headerColumns(record); ok {
				cols = header
				continue
			}
		}

		in, err := parseRow(record, cols)
		if err != nil {
			report.skip(line, err)
			continue
		}

		batch = append(batch, in)
		if len(batch) >= i.batchSize {
			if err := flush(); err != nil {
				return report, err
			}
		}
	}

	if err := flush(); err != nil {
		return report, err
	}

	slog.Info("CSV import finished", "imported", report.Imported, "skipped", report.Skipped)
	return report, nil
}

func (r *ImportReport) skip(line int, err error) {
	r.Skipped++
	r.Errors = append(r.Errors, RowError{Line: line, Err: err})
}

func headerColumns(record []string) (columns, bool) {
	cols := columns{
		phone:     findColumnIndex(record, []string{"userPhoneNumber", "phoneNumber", "phone", "msisdn"}),
		prompt:    findColumnIndex(record, []string{"prompt"}),
		link:      findColumnIndex(record, []string{"link", "url"}),
		result:    findColumnIndex(record, []string{"result"}),
		timestamp: findColumnIndex(record, []string{"timestamp", "date", "createdAt"}),
	}
	if cols.phone < 0 && cols.prompt < 0 && cols.result < 0 {
		return positional, false
	}
	return cols, true
}

func parseRow(record []string, cols columns) (services.AddInteractionInput, error) {
	in := services.AddInteractionInput{
		UserPhoneNumber: field(record, cols.phone),
		Prompt:          field(record, cols.prompt),
		Link:            field(record, cols.link),
		Result:          field(record, cols.result),
	}
	if in.UserPhoneNumber == "" || in.Prompt == "" || in.Result == "" {
		return in, errors.New("userPhoneNumber, prompt and result are required")
	}

	if raw := field(record, cols.timestamp); raw != "" {
		ts, err := parseDate(raw)
		if err != nil {
			return in, err
		}
		in.Timestamp = ts
	}
	return in, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// findColumnIndex finds the index of a column in the header, case-insensitively
func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}

// parseDate parses a date string in various formats
func parseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01/02/2006 15:04:05",
		"01/02/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
	}

	for _, format := range formats {
		date, err := time.Parse(format, dateStr)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
