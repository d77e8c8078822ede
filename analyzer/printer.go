package analyzer

import (
	"fmt"
	"strconv"

	"github.com/guregu/null/v5"
)

const noData = "n/a"

func (a *Analyzer) PrintMetrics(s Summary) {
	fmt.Fprintf(a.out, "Total tests: %d\n", s.Total)
	fmt.Fprintf(a.out, "Passed: %d out of %d tests\n", s.Passed, s.Total)
	fmt.Fprintf(a.out, "Failed: %d out of %d tests\n", s.Failed, s.Total)
	fmt.Fprintf(a.out, "Blocked: %d out of %d tests\n", s.Blocked, s.Total)
	fmt.Fprintf(a.out, "Average duration: %s minutes\n", formatMinutes(s.Average))
	fmt.Fprintf(a.out, "Minimum duration: %s minutes\n", formatMinutes(s.Minimum))
	fmt.Fprintf(a.out, "Maximum duration: %s minutes\n", formatMinutes(s.Maximum))
}

// formatMinutes rounds to two decimals for display only.
func formatMinutes(f null.Float) string {
	if !f.Valid {
		return noData
	}
	return strconv.FormatFloat(f.Float64, 'f', 2, 64)
}
