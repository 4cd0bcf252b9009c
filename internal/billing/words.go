package billing

import (
	"math"
	"strings"
)

// TooLargeSentinel is returned by AmountInWords for amounts above
// 999,999,999 rupees. Callers render it as-is instead of handling an error.
const TooLargeSentinel = "NUMBER TOO LARGE"

var onesWords = [...]string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tensWords = [...]string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}

// AmountInWords renders a rupee amount as uppercase Indian-numbering-system
// English words, e.g. 236 -> "TWO HUNDRED AND THIRTY SIX RUPEES ONLY.".
// The amount is rounded to two decimals and the paise part is then discarded,
// per invoicing convention. Zero, negative, and NaN amounts yield
// "ZERO RUPEES ONLY."; amounts above 999,999,999 yield TooLargeSentinel.
// This function never panics: invoices with nonsense line items still render.
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) {
		return "ZERO RUPEES ONLY."
	}
	rupees := int64(math.Trunc(math.Round(amount*100) / 100))

	if rupees <= 0 {
		return "ZERO RUPEES ONLY."
	}
	if rupees > 999999999 {
		return TooLargeSentinel
	}

	var parts []string
	group := func(v int64, suffix string) {
		if v == 0 {
			return
		}
		if v > 19 {
			parts = append(parts, tensWords[v/10])
			if v%10 != 0 {
				parts = append(parts, onesWords[v%10])
			}
		} else {
			parts = append(parts, onesWords[v])
		}
		if suffix != "" {
			parts = append(parts, suffix)
		}
	}

	group(rupees/10000000, "CRORE")
	rupees %= 10000000
	group(rupees/100000, "LAKH")
	rupees %= 100000
	group(rupees/1000, "THOUSAND")
	rupees %= 1000
	group(rupees/100, "HUNDRED")
	rupees %= 100
	if rupees > 0 && len(parts) > 0 {
		parts = append(parts, "AND")
	}
	group(rupees, "")

	return strings.Join(parts, " ") + " RUPEES ONLY."
}
