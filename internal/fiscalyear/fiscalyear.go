// Package fiscalyear maps calendar dates to Indian fiscal-year labels.
// The Indian fiscal year runs April 1 through March 31.
package fiscalyear

import (
	"fmt"
	"time"
)

// Label returns the fiscal-year label for the given date, e.g. "24-25" for
// any date between 2024-04-01 and 2025-03-31. The label uses the last two
// digits of the starting and ending calendar years.
func Label(t time.Time) string {
	start := t.Year()
	if t.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%02d-%02d", start%100, (start+1)%100)
}
