package format

import "github.com/dustin/go-humanize"

// FormatCount renders a count with thousands separators.
func FormatCount(n int64) string { return humanize.Comma(n) }

// FormatBytes renders a byte size with binary units, such as "1.5 MiB".
func FormatBytes(n uint64) string { return humanize.IBytes(n) }

// FormatBits renders a bit length along with its size in bytes, such as
// "1,024 bits (128 B)".
func FormatBits(bits int) string {
	if bits < 0 {
		return "-"
	}
	return humanize.Comma(int64(bits)) + " bits (" + humanize.IBytes(uint64((bits+7)/8)) + ")"
}

// Truncate shortens a long digit string to its first and last n digits,
// noting how many were elided. s is returned unchanged when the shortened
// form would not be shorter than s.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= 2*n {
		return s
	}
	out := s[:n] + "..." + s[len(s)-n:] + " (" + humanize.Comma(int64(len(s)-2*n)) + " digits elided)"
	if len(out) >= len(s) {
		return s
	}
	return out
}
