package analyzer

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const twoCasesJSON = `{"test_cases":[` +
	`{"status":"passed","execution_time":5,"executed_on":"2024-01-01T10:00:00Z"},` +
	`{"status":"failed","execution_time":3,"executed_on":"2024-01-01T11:00:00Z"}]}`

func newTestAnalyzer(t *testing.T) (*Analyzer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &Analyzer{out: out, l: zaptest.NewLogger(t).Sugar()}, out
}

func writeInput(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
