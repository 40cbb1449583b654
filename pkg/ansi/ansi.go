// Package ansi splits raw terminal output into control-sequence and text
// spans without interpreting either. The filter needs to know where escape
// sequences are so it never rewrites their bytes; it does not care what they
// mean.
package ansi

// Control bytes used by the recognized escape grammars.
const (
	ESC = 0x1b
	BEL = 0x07
)

// SpanKind tags a span as plain text or as a terminal control sequence.
type SpanKind int

const (
	// SpanText is a run of bytes with no recognized escape sequence.
	SpanText SpanKind = iota
	// SpanControl is a complete CSI, OSC, or charset-designation sequence,
	// terminator included.
	SpanControl
)

// Span is a half-open byte range [Start, End) within the line it was split
// from.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
}

// Bytes returns the span's bytes from the line it was produced from.
func (s Span) Bytes(line []byte) []byte {
	return line[s.Start:s.End]
}

// Split partitions line into an ordered, gap-free sequence of spans.
// Concatenating every span's bytes reproduces line exactly.
//
// Recognized control forms:
//   - CSI:  ESC '[' ... terminated by the first byte in 0x40-0x7e
//   - OSC:  ESC ']' ... terminated by BEL or ESC '\'
//   - charset designation: ESC '(' or ESC ')' plus one byte
//
// An ESC that does not open a complete recognized sequence before the end of
// the line is left in the surrounding text span. Colors must survive even
// when the producer emits something this tokenizer does not know.
func Split(line []byte) []Span {
	var spans []Span
	textStart := 0

	flushText := func(end int) {
		if end > textStart {
			spans = append(spans, Span{Kind: SpanText, Start: textStart, End: end})
		}
	}

	i := 0
	for i < len(line) {
		if line[i] != ESC {
			i++
			continue
		}
		end, ok := controlEnd(line, i)
		if !ok {
			// Incomplete or unrecognized escape: degrade to text.
			i++
			continue
		}
		flushText(i)
		spans = append(spans, Span{Kind: SpanControl, Start: i, End: end})
		i = end
		textStart = end
	}
	flushText(len(line))

	return spans
}

// controlEnd reports the exclusive end of the control sequence opening at
// line[start], which must be ESC. ok is false when the bytes at start do not
// form a complete recognized sequence.
func controlEnd(line []byte, start int) (end int, ok bool) {
	if start+1 >= len(line) {
		return 0, false
	}

	switch line[start+1] {
	case '[':
		// CSI: anything up to and including the first final byte.
		for i := start + 2; i < len(line); i++ {
			if line[i] >= 0x40 && line[i] <= 0x7e {
				return i + 1, true
			}
		}
		return 0, false

	case ']':
		// OSC: runs to BEL or to the ESC '\' string terminator.
		for i := start + 2; i < len(line); i++ {
			if line[i] == BEL {
				return i + 1, true
			}
			if line[i] == ESC && i+1 < len(line) && line[i+1] == '\\' {
				return i + 2, true
			}
		}
		return 0, false

	case '(', ')':
		// Charset designation: a single byte follows.
		if start+2 < len(line) {
			return start + 3, true
		}
		return 0, false

	default:
		return 0, false
	}
}
