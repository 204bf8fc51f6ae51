package csvfile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journals.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFetch_SkipsHeaderAndPreservesOrder(t *testing.T) {
	path := writeCSV(t, `Title,DOI,Authors,Date,ISSN,Link,Quartils,Journal,Abstract
Paper A,10.1/x,"Alice Smith, Bob Lee",Date of Publication: 12 March 2021,1234-5678,http://x,Q1,Published in: Nature,abstract one
Paper B,10.2/y,Carol Ng,Date of Publication: 1 June 2019,8765-4321,http://y,Q2,Published in: Cell,abstract two
`)

	src := New(Config{Path: path}, testLogger())
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first, ok := records[0].([]string)
	require.True(t, ok)
	assert.Equal(t, "Paper A", first[0])
	assert.Equal(t, "Alice Smith, Bob Lee", first[2])

	second, ok := records[1].([]string)
	require.True(t, ok)
	assert.Equal(t, "Paper B", second[0])
}

func TestFetch_ToleratesShortRows(t *testing.T) {
	path := writeCSV(t, `Title,DOI
Paper A,10.1/x
`)

	src := New(Config{Path: path}, testLogger())
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	row, ok := records[0].([]string)
	require.True(t, ok)
	assert.Len(t, row, 2)
}

func TestFetch_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	src := New(Config{Path: path}, testLogger())
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetch_MissingFile(t *testing.T) {
	src := New(Config{Path: filepath.Join(t.TempDir(), "nope.csv")}, testLogger())
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
}
