package util

import "unicode/utf16"

// The checking service runs on the JVM and reports offsets in UTF-16 code
// units. These helpers translate between those offsets and Go strings.

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}

// UTF16Slice returns the part of s between UTF-16 offsets start and end.
// ok is false when the range does not fit inside s or when either bound
// falls between the two halves of a surrogate pair.
func UTF16Slice(s string, start, end int) (sub string, ok bool) {
	if start < 0 || end < start {
		return "", false
	}
	units := utf16.Encode([]rune(s))
	if end > len(units) {
		return "", false
	}
	if splitsPair(units, start) || splitsPair(units, end) {
		return "", false
	}
	return string(utf16.Decode(units[start:end])), true
}

// splitsPair reports whether offset i lands on the low half of a pair.
func splitsPair(units []uint16, i int) bool {
	return i > 0 && i < len(units) && isLowSurrogate(units[i]) && isHighSurrogate(units[i-1])
}

func isHighSurrogate(u uint16) bool { return u >= 0xd800 && u < 0xdc00 }
func isLowSurrogate(u uint16) bool  { return u >= 0xdc00 && u < 0xe000 }

// Span is a replacement of the UTF-16 range [Start, End) by Text.
type Span struct {
	Start, End int
	Text       string
}

// ApplySpans replaces every span in s. Spans must be sorted by Start
// descending; a span overlapping the one applied before it, or falling
// outside s, is skipped.
func ApplySpans(s string, spans []Span) string {
	if len(spans) == 0 {
		return s
	}
	units := utf16.Encode([]rune(s))
	limit := len(units)
	for _, sp := range spans {
		if sp.Start < 0 || sp.End < sp.Start || sp.End > limit {
			continue
		}
		repl := utf16.Encode([]rune(sp.Text))
		out := make([]uint16, 0, len(units)-(sp.End-sp.Start)+len(repl))
		out = append(out, units[:sp.Start]...)
		out = append(out, repl...)
		out = append(out, units[sp.End:]...)
		units = out
		limit = sp.Start
	}
	return string(utf16.Decode(units))
}
