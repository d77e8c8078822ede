package analyzer

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(statuses []string, times []float64) *Table {
	table := &Table{}
	for i, s := range statuses {
		table.Records = append(table.Records, Record{Status: s, ExecutionTime: times[i]})
	}
	return table
}

func TestCalculateMetrics(t *testing.T) {
	doc, err := ParseDocument([]byte(twoCasesJSON))
	require.NoError(t, err)
	table, err := NewTable(doc)
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Total:   2,
		Passed:  1,
		Failed:  1,
		Blocked: 0,
		Average: null.FloatFrom(4),
		Minimum: null.FloatFrom(3),
		Maximum: null.FloatFrom(5),
	}, CalculateMetrics(table))
}

func TestCalculateMetrics_UnrecognizedStatuses(t *testing.T) {
	s := CalculateMetrics(records(
		[]string{"passed", "Passed", "failed ", "blocked", "skipped", "", "blocked"},
		[]float64{1, 2, 3, 4, 5, 6, 0.5},
	))

	assert.Equal(t, 7, s.Total)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 0, s.Failed)
	assert.Equal(t, 2, s.Blocked)
	assert.InDelta(t, 21.5/7, s.Average.Float64, 1e-9)
	assert.Equal(t, null.FloatFrom(0.5), s.Minimum)
	assert.Equal(t, null.FloatFrom(6), s.Maximum)
}

func TestCalculateMetrics_Empty(t *testing.T) {
	for name, table := range map[string]*Table{"nil": nil, "no records": {Records: []Record{}}} {
		t.Run(name, func(t *testing.T) {
			s := CalculateMetrics(table)
			assert.Equal(t, 0, s.Total)
			assert.Equal(t, 0, s.Passed+s.Failed+s.Blocked)
			assert.False(t, s.Average.Valid)
			assert.False(t, s.Minimum.Valid)
			assert.False(t, s.Maximum.Valid)
		})
	}
}

func TestCalculateMetrics_NegativeAndFractional(t *testing.T) {
	s := CalculateMetrics(records([]string{"passed", "passed"}, []float64{-1.25, 0.75}))
	assert.Equal(t, null.FloatFrom(-0.25), s.Average)
	assert.Equal(t, null.FloatFrom(-1.25), s.Minimum)
	assert.Equal(t, null.FloatFrom(0.75), s.Maximum)
}

func TestCalculateMetrics_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genStatus := gen.OneConstOf("passed", "failed", "blocked", "Passed", "skipped", "")

	properties.Property("recognized counts never exceed total", prop.ForAll(
		func(statuses []string) bool {
			s := CalculateMetrics(records(statuses, make([]float64, len(statuses))))
			recognized := 0
			for _, st := range statuses {
				if st == StatusPassed || st == StatusFailed || st == StatusBlocked {
					recognized++
				}
			}
			sum := s.Passed + s.Failed + s.Blocked
			return s.Total == len(statuses) && sum == recognized && sum <= s.Total &&
				(sum == s.Total) == (recognized == len(statuses))
		},
		gen.SliceOf(genStatus),
	))

	properties.Property("min <= avg <= max", prop.ForAll(
		func(times []float64) bool {
			s := CalculateMetrics(records(make([]string, len(times)), times))
			if len(times) == 0 {
				return !s.Average.Valid && !s.Minimum.Valid && !s.Maximum.Valid
			}
			return s.Minimum.Float64 <= s.Average.Float64+1e-9 && s.Average.Float64 <= s.Maximum.Float64+1e-9
		},
		gen.SliceOf(gen.Float64Range(0, 10000)),
	))

	properties.TestingRun(t)
}

// CSV rows, table length and Total agree for any list size.
func TestRowCountInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)
	dir := t.TempDir()

	properties.Property("csv rows == records == total", prop.ForAll(
		func(n int) bool {
			items := make([]string, n)
			for i := range items {
				items[i] = fmt.Sprintf(`{"id":%d,"status":"passed","execution_time":%d,"executed_on":"2024-01-01T10:00:00Z"}`, i, i)
			}
			in := writeInput(t, dir, `{"test_cases":[`+strings.Join(items, ",")+`]}`)
			out := filepath.Join(dir, "results.csv")
			a, _ := newTestAnalyzer(t)

			_, table, err := a.ParseJSON(in, out)
			if err != nil {
				return false
			}
			rows := readCSV(t, out)
			dataRows := 0
			if len(rows) > 0 {
				dataRows = len(rows) - 1
			}
			return table.Len() == n && dataRows == n && CalculateMetrics(table).Total == n
		},
		gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}
