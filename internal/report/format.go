package report

import "fmt"

// FormatTime renders a nanosecond value in the largest unit that keeps the
// number below 1000 (except the final rollover to seconds), always with two
// decimals. 999999 renders as "1000.00 µs", not "1.00 ms".
func FormatTime(nanoseconds float64) string {
	switch {
	case nanoseconds < 1_000:
		return fmt.Sprintf("%.2f ns", nanoseconds)
	case nanoseconds < 1_000_000:
		return fmt.Sprintf("%.2f µs", nanoseconds/1_000)
	case nanoseconds < 1_000_000_000:
		return fmt.Sprintf("%.2f ms", nanoseconds/1_000_000)
	default:
		return fmt.Sprintf("%.2f s", nanoseconds/1_000_000_000)
	}
}
