// Package filter is the line driver: it reads the input stream line by
// line, rewrites path candidates into hyperlinks, and writes the result in
// the original order.
package filter

import (
	"bufio"
	"bytes"
	"io"

	"github.com/rs/zerolog"

	"github.com/konradko/linkify/pkg/ansi"
	"github.com/konradko/linkify/pkg/errors"
	"github.com/konradko/linkify/pkg/extract"
	"github.com/konradko/linkify/pkg/hyperlink"
	"github.com/konradko/linkify/pkg/logging"
	"github.com/konradko/linkify/pkg/paths"
)

// Filter rewrites a byte stream, wrapping resolvable path candidates in
// OSC 8 hyperlinks. One Filter processes one stream; it carries no state
// across lines beyond the immutable resolution context.
type Filter struct {
	ctx      *paths.Context
	resolver *paths.Resolver
	logger   zerolog.Logger

	// scratch is the per-line output buffer, reused across lines.
	scratch []byte
}

// New builds a Filter over ctx with the given recognized absolute-path
// prefixes.
func New(ctx *paths.Context, prefixes []string) *Filter {
	return &Filter{
		ctx:      ctx,
		resolver: paths.NewResolver(ctx, prefixes),
		logger:   logging.GetLogger("filter"),
	}
}

// Run streams r to w, one line at a time. Lines are delimited by '\n'; the
// delimiter and any '\r' before it pass through inside the line bytes, so
// the output preserves the input's separator convention exactly. A final
// line without a trailing separator is processed too.
//
// A read failure other than EOF is returned as a fatal error with nothing
// emitted for the partially read line. A write failure is returned as-is;
// the command layer treats a closed pipe as a normal termination.
func (f *Filter) Run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, errors.ErrInputRead, "failed to read input")
		}
		if len(line) > 0 {
			if _, werr := bw.Write(f.rewrite(line)); werr != nil {
				return werr
			}
			// Interactive pipes must not sit on buffered output.
			if werr := bw.Flush(); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return bw.Flush()
		}
	}
}

// rewrite returns the output bytes for one input line. When no candidate
// resolves the original slice is returned untouched, so the common
// no-paths-here line costs no allocation and is byte-identical by
// construction.
func (f *Filter) rewrite(line []byte) []byte {
	// Trailing separator stays out of the scan so candidates at end of
	// line are not glued to '\r' handling.
	body, sep := splitSeparator(line)

	out := f.scratch[:0]
	changed := false

	for _, span := range ansi.Split(body) {
		if span.Kind == ansi.SpanControl {
			out = append(out, span.Bytes(body)...)
			continue
		}
		text := span.Bytes(body)
		for _, seg := range extract.Segments(text) {
			raw := seg.Bytes(text)
			if !seg.Candidate {
				out = append(out, raw...)
				continue
			}
			resolved, ok := f.resolver.Resolve(string(raw))
			if !ok {
				out = append(out, raw...)
				continue
			}
			f.logger.Trace().
				Str("candidate", string(raw)).
				Str("kind", resolved.Kind.String()).
				Str("target", resolved.Target).
				Msg("Wrapped candidate")
			out = hyperlink.Wrap(out, f.ctx.Hostname, resolved.Target, raw)
			changed = true
		}
	}

	f.scratch = out
	if !changed {
		return line
	}
	return append(out, sep...)
}

// splitSeparator splits a line into its body and its trailing "\n" or
// "\r\n", either of which may be absent on the last line of a stream.
func splitSeparator(line []byte) (body, sep []byte) {
	if !bytes.HasSuffix(line, []byte("\n")) {
		return line, nil
	}
	if bytes.HasSuffix(line, []byte("\r\n")) {
		return line[:len(line)-2], line[len(line)-2:]
	}
	return line[:len(line)-1], line[len(line)-1:]
}
