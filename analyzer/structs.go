package analyzer

import (
	"time"

	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"
)

const (
	testCasesKey = "test_cases"

	fieldStatus        = "status"
	fieldExecutionTime = "execution_time"
	fieldExecutedOn    = "executed_on"
)

// Recognized statuses. Matching is exact and case-sensitive.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusBlocked = "blocked"
)

// Record is one test case. Fields holds every input field, including the
// typed ones, so unknown columns pass through to the CSV.
type Record struct {
	Status        string
	ExecutionTime float64 // minutes
	ExecutedOn    time.Time
	Fields        map[string]gjson.Result

	keys []string
}

// Table is the ordered test case collection. Columns lists field names in
// order of first appearance across all records.
type Table struct {
	Columns []string
	Records []Record
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Summary holds the seven run metrics. Durations are invalid when there is
// no data to aggregate.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Blocked int
	Average null.Float
	Minimum null.Float
	Maximum null.Float
}
