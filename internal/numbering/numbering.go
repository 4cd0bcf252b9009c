// Package numbering allocates and validates sequential invoice numbers.
//
// An invoice number has the shape ACRONYM/FY/SEQ, e.g. "AGT/24-25/007": a
// short uppercase company code, the fiscal-year label, and a zero-padded
// three-digit sequence. Within one (acronym, fiscal year) namespace sequences
// are unique and strictly increasing; gaps are allowed. The prefix and the
// sequence are handled as separate values here, and only the assembled string
// crosses the API boundary.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gstbill/internal/fiscalyear"
)

// SequenceWidth is the fixed width of the numeric suffix.
const SequenceWidth = 3

// Result is the outcome of validating an operator-entered sequence. A failed
// validation carries a message suitable for inline display; it is never an
// error value because entry mistakes are expected and recoverable.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Acronym derives a company code from a company name: the first ASCII letter
// of every whitespace-separated word, uppercased. Words containing no letter
// contribute nothing. Returns "" for a blank name.
func Acronym(companyName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(companyName) {
		for _, r := range word {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r - 'a' + 'A')
				break
			}
			if r >= 'A' && r <= 'Z' {
				b.WriteRune(r)
				break
			}
		}
	}
	return b.String()
}

// Prefix assembles the numbering namespace for the given acronym and date,
// e.g. ("AGT", feb 2025) -> "AGT/24-25/".
func Prefix(acronym string, t time.Time) string {
	return acronym + "/" + fiscalyear.Label(t) + "/"
}

// HighestSequence returns the largest numeric suffix among existing numbers
// that share the given prefix (compared case-insensitively), or 0 if none do.
// Suffixes that do not parse as decimal integers are ignored.
func HighestSequence(existing []string, prefix string) int {
	highest := 0
	for _, number := range existing {
		if len(number) <= len(prefix) || !strings.EqualFold(number[:len(prefix)], prefix) {
			continue
		}
		seq, err := strconv.Atoi(number[len(prefix):])
		if err != nil {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return highest
}

// Next proposes the next free invoice number under the prefix: one more than
// the highest existing sequence, or 001 when the namespace is empty.
func Next(existing []string, prefix string) string {
	return Format(prefix, HighestSequence(existing, prefix)+1)
}

// Format assembles a full invoice number from its prefix and sequence.
func Format(prefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, SequenceWidth, seq)
}

// PadSequence left-pads entered digits to the fixed sequence width.
func PadSequence(entered string) string {
	if len(entered) >= SequenceWidth {
		return entered
	}
	return strings.Repeat("0", SequenceWidth-len(entered)) + entered
}

// Split separates a full invoice number into its prefix (through the final
// slash) and sequence. ok is false when the number has no slash.
func Split(number string) (prefix, seq string, ok bool) {
	idx := strings.LastIndex(number, "/")
	if idx < 0 {
		return "", "", false
	}
	return number[:idx+1], number[idx+1:], true
}

// Validate checks an operator-entered sequence against the existing numbers
// under the prefix. The duplicate check takes priority over the ordering
// check. An empty entry is not flagged for ordering (the field may still be
// mid-edit) but its zero-padded candidate is still checked for duplication.
func Validate(existing []string, prefix, entered string) Result {
	candidate := prefix + PadSequence(entered)
	for _, number := range existing {
		if strings.EqualFold(number, candidate) {
			return Result{Message: "Invoice number already exists."}
		}
	}

	if entered != "" {
		highest := HighestSequence(existing, prefix)
		if seq, err := strconv.Atoi(entered); err == nil && seq <= highest {
			return Result{Message: fmt.Sprintf("Invoice no. must be > %0*d.", SequenceWidth, highest)}
		}
	}
	return Result{Valid: true}
}
