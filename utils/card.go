package utils

import "strings"

// Card-number helpers for the booking→renting payment capture. These
// are display/validation transforms only; the raw number never leaves
// the process.

const (
	cardDigitCount = 16
	// 16 digits grouped by 4 plus 3 separators
	cardDisplayMax = 19
)

// CardDigits strips everything but digits.
func CardDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber renders the digit sequence in groups of four,
// capped at the 19-character display width. Formatting an already
// formatted string yields the same string.
func FormatCardNumber(value string) string {
	digits := CardDigits(value)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	s := b.String()
	if len(s) > cardDisplayMax {
		s = s[:cardDisplayMax]
	}
	return s
}

// ValidCardNumber requires exactly 16 digits after stripping formatting.
func ValidCardNumber(value string) bool {
	return len(CardDigits(value)) == cardDigitCount
}

// PaymentLabel derives the stored payment string from a valid card
// number: a fixed prefix plus the last four digits. The full number is
// never persisted or transmitted.
func PaymentLabel(value string) string {
	digits := CardDigits(value)
	if len(digits) < 4 {
		return ""
	}
	return "Credit Card " + digits[len(digits)-4:]
}
