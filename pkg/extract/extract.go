// Package extract locates path-shaped substrings inside plain text.
package extract

// Segment is a half-open byte range [Start, End) of the text it was produced
// from. Candidate segments are path-shaped runs to be classified; everything
// else is literal and must be re-emitted untouched.
type Segment struct {
	Candidate bool
	Start     int
	End       int
}

// Bytes returns the segment's bytes from the text it was produced from.
func (s Segment) Bytes(text []byte) []byte {
	return text[s.Start:s.End]
}

// isPathByte reports whether b can appear inside a path candidate:
// alphanumerics, '/', '.', '_', '-' and '~'. Everything else, whitespace and
// delimiter punctuation included, bounds the candidate.
func isPathByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '/' || b == '.' || b == '_' || b == '-' || b == '~':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Segments splits text into an ordered, gap-free sequence of literal and
// candidate segments. A candidate is a maximal run of path bytes, with two
// exceptions:
//
//   - a run of digits directly after ':' is a line/column annotation
//     ("file.rs:42"), not a candidate
//   - a run with no alphanumeric and no '/' that does not start with '~'
//     (e.g. "---" or "...") is not a candidate
//
// Runs demoted by either rule are emitted as literal segments, so the output
// still covers text exactly.
func Segments(text []byte) []Segment {
	var segs []Segment
	litStart := 0

	flushLiteral := func(end int) {
		if end > litStart {
			segs = append(segs, Segment{Start: litStart, End: end})
		}
	}

	i := 0
	for i < len(text) {
		if !isPathByte(text[i]) {
			i++
			continue
		}

		start := i
		for i < len(text) && isPathByte(text[i]) {
			i++
		}

		if !plausible(text, start, i) {
			continue
		}

		flushLiteral(start)
		segs = append(segs, Segment{Candidate: true, Start: start, End: i})
		litStart = i
	}
	flushLiteral(len(text))

	return segs
}

// plausible applies the demotion rules to the run text[start:end].
func plausible(text []byte, start, end int) bool {
	allDigits := true
	anyWord := false
	for _, b := range text[start:end] {
		if !isDigit(b) {
			allDigits = false
		}
		if isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '/' {
			anyWord = true
		}
	}

	if allDigits && start > 0 && text[start-1] == ':' {
		return false
	}
	if !anyWord && text[start] != '~' {
		return false
	}
	return true
}
