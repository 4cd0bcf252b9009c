package fiscalyear

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"february falls in previous fiscal year", date(2025, time.February, 15), "24-25"},
		{"april 1 starts the new fiscal year", date(2025, time.April, 1), "25-26"},
		{"march 31 is the last day of the old fiscal year", date(2025, time.March, 31), "24-25"},
		{"june mid-year", date(2025, time.June, 10), "25-26"},
		{"december", date(2024, time.December, 31), "24-25"},
		{"century wrap", date(2099, time.May, 1), "99-00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.in))
		})
	}
}

func TestLabelShape(t *testing.T) {
	re := regexp.MustCompile(`^\d{2}-\d{2}$`)

	// Every month of several years produces a well-formed label whose second
	// half is the first half plus one, mod 100.
	for year := 1999; year <= 2101; year += 17 {
		for m := time.January; m <= time.December; m++ {
			label := Label(date(year, m, 15))
			require.Regexp(t, re, label)

			first, err := strconv.Atoi(label[:2])
			require.NoError(t, err)
			second, err := strconv.Atoi(label[3:])
			require.NoError(t, err)
			assert.Equal(t, (first+1)%100, second, "label %s", label)
		}
	}
}
