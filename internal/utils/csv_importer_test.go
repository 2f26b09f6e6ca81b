package utils

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/newslens-backend/internal/models"
	"github.com/ArowuTest/newslens-backend/internal/services"
)

type recordingWriter struct {
	batches [][]services.AddInteractionInput
	err     error
}

func (w *recordingWriter) AddInteractions(_ context.Context, in []services.AddInteractionInput) ([]*models.Interaction, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.batches = append(w.batches, append([]services.AddInteractionInput(nil), in...))
	return make([]*models.Interaction, len(in)), nil
}

func (w *recordingWriter) all() []services.AddInteractionInput {
	var out []services.AddInteractionInput
	for _, b := range w.batches {
		out = append(out, b...)
	}
	return out
}

func TestImportInteractions_WithHeader(t *testing.T) {
	csvData := strings.Join([]string{
		"Result,Prompt,UserPhoneNumber,Link,Timestamp",
		"neutral tone,bias,+15550001,http://a,2024-03-01",
		"strong framing,bias,+15550002,,2024-03-02T10:00:00Z",
	}, "\n")

	w := &recordingWriter{}
	report, err := NewCSVImporter(w, 0).ImportInteractions(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 2, report.Imported)
	require.Zero(t, report.Skipped)

	rows := w.all()
	require.Len(t, rows, 2)
	require.Equal(t, services.AddInteractionInput{
		UserPhoneNumber: "+15550001",
		Prompt:          "bias",
		Link:            "http://a",
		Result:          "neutral tone",
		Timestamp:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}, rows[0])
	require.Equal(t, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), rows[1].Timestamp)
}

func TestImportInteractions_Positional(t *testing.T) {
	csvData := "+15550001,bias,http://a,neutral\n+15550001,tone,,calm\n"

	w := &recordingWriter{}
	report, err := NewCSVImporter(w, 0).ImportInteractions(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 2, report.Imported)

	rows := w.all()
	require.Equal(t, "bias", rows[0].Prompt)
	require.Equal(t, "calm", rows[1].Result)
	require.True(t, rows[1].Timestamp.IsZero())
}

func TestImportInteractions_SkipsBadRows(t *testing.T) {
	csvData := strings.Join([]string{
		"userPhoneNumber,prompt,link,result,timestamp",
		"+1,bias,,ok,",
		"+1,,,missing prompt,",
		"+1,bias,,bad date,yesterday",
		"+1,tone,,fine,",
	}, "\n")

	w := &recordingWriter{}
	report, err := NewCSVImporter(w, 0).ImportInteractions(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 2, report.Imported)
	require.Equal(t, 2, report.Skipped)
	require.Equal(t, 3, report.Errors[0].Line)
	require.Equal(t, 4, report.Errors[1].Line)
	require.Contains(t, report.Errors[1].Error(), "unable to parse date")
}

func TestImportInteractions_Batches(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString("+1,p,,r\n")
	}

	w := &recordingWriter{}
	report, err := NewCSVImporter(w, 2).ImportInteractions(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, 5, report.Imported)
	require.Len(t, w.batches, 3)
	require.Len(t, w.batches[2], 1)
}

func TestImportInteractions_StoreFailureAborts(t *testing.T) {
	w := &recordingWriter{err: errors.New("write concern")}
	report, err := NewCSVImporter(w, 0).ImportInteractions(context.Background(), strings.NewReader("+1,p,,r\n"))
	require.Error(t, err)
	require.Zero(t, report.Imported)
}

func TestFindColumnIndex(t *testing.T) {
	header := []string{" Phone ", "PROMPT"}
	require.Equal(t, 0, findColumnIndex(header, []string{"userPhoneNumber", "phone"}))
	require.Equal(t, 1, findColumnIndex(header, []string{"prompt"}))
	require.Equal(t, -1, findColumnIndex(header, []string{"result"}))
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024-03-01", "03/01/2024", "Mar 1, 2024", "2024-03-01T00:00:00Z"} {
		got, err := parseDate(in)
		require.NoError(t, err, in)
		require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got, in)
	}
	_, err := parseDate("not a date")
	require.Error(t, err)
}
