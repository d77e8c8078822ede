package analyzer

import (
	"math"

	"github.com/guregu/null/v5"
)

// CalculateMetrics reduces the table to a Summary. Statuses outside the
// three recognized ones count toward Total only. Durations cover every row
// and stay invalid for an empty table.
func CalculateMetrics(table *Table) Summary {
	s := Summary{Total: table.Len()}
	if s.Total == 0 {
		return s
	}

	sum, lo, hi := 0.0, math.Inf(1), math.Inf(-1)
	for _, r := range table.Records {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusBlocked:
			s.Blocked++
		}
		sum += r.ExecutionTime
		lo = math.Min(lo, r.ExecutionTime)
		hi = math.Max(hi, r.ExecutionTime)
	}
	s.Average = null.FloatFrom(sum / float64(s.Total))
	s.Minimum = null.FloatFrom(lo)
	s.Maximum = null.FloatFrom(hi)
	return s
}
