// Package hyperlink formats OSC 8 terminal hyperlink sequences.
//
// The BEL-terminated form is used rather than the ESC-backslash string
// terminator: both are valid per the OSC 8 convention, BEL is what the
// producers this tool is chained after emit, and single-byte terminators
// keep the added overhead per link as small as possible.
package hyperlink

// Fixed framing around a link: OSC "8;;" URL BEL text OSC "8;;" BEL.
const (
	open   = "\x1b]8;;"
	bel    = "\x07"
	scheme = "file://"
)

// Wrap appends to dst the hyperlink sequence for target on host, with text
// as the visible bytes, and returns the extended slice. text is emitted
// verbatim: the reader sees exactly what the upstream program printed, only
// the click target carries the resolved form.
func Wrap(dst []byte, hostname, target string, text []byte) []byte {
	dst = append(dst, open...)
	dst = append(dst, scheme...)
	dst = append(dst, hostname...)
	dst = append(dst, target...)
	dst = append(dst, bel...)
	dst = append(dst, text...)
	dst = append(dst, open...)
	dst = append(dst, bel...)
	return dst
}

// URL returns the file:// URL that Wrap would embed, for logging and
// diagnostics.
func URL(hostname, target string) string {
	return scheme + hostname + target
}
