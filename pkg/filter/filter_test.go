package filter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konradko/linkify/pkg/paths"
)

var testPrefixes = []string{"/tmp", "/usr", "/etc", "/home"}

func testFilter() *Filter {
	ctx := &paths.Context{
		Hostname: "host",
		Home:     "/home/user",
		WorkDir:  "/work",
		Entries: map[string]struct{}{
			"README.md": {},
			"src":       {},
		},
	}
	return New(ctx, testPrefixes)
}

func run(t *testing.T, f *Filter, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, f.Run(strings.NewReader(input), &out))
	return out.String()
}

func link(target, text string) string {
	return "\x1b]8;;file://host" + target + "\x07" + text + "\x1b]8;;\x07"
}

func TestRunWrapsRelativeEntry(t *testing.T) {
	got := run(t, testFilter(), "README.md\n")
	assert.Equal(t, link("/work/README.md", "README.md")+"\n", got)
}

func TestRunLeavesUnknownTokensAlone(t *testing.T) {
	input := "notapath here\n"
	assert.Equal(t, input, run(t, testFilter(), input))
}

func TestRunPreservesColorSequences(t *testing.T) {
	input := "\x1b[31m/usr/local/bin\x1b[0m\n"
	want := "\x1b[31m" + link("/usr/local/bin", "/usr/local/bin") + "\x1b[0m\n"
	assert.Equal(t, want, run(t, testFilter(), input))
}

func TestRunWrapsHomeWithoutExistenceCheck(t *testing.T) {
	got := run(t, testFilter(), "~/notes.txt\n")
	assert.Equal(t, link("/home/user/notes.txt", "~/notes.txt")+"\n", got)
}

func TestRunKeepsLineAnnotationOutOfCandidate(t *testing.T) {
	got := run(t, testFilter(), "src/main.go:42:\n")
	assert.Equal(t, link("/work/src/main.go", "src/main.go")+":42:\n", got)
}

func TestRunWrapsMultiplePathsPerLine(t *testing.T) {
	got := run(t, testFilter(), "comparing /tmp/a.txt and /tmp/b.txt\n")
	assert.Equal(t, 2, strings.Count(got, "\x1b]8;;file://"))
	assert.Contains(t, got, link("/tmp/a.txt", "/tmp/a.txt"))
	assert.Contains(t, got, link("/tmp/b.txt", "/tmp/b.txt"))
}

func TestRunGitStatusStyleLine(t *testing.T) {
	input := "\x1b[31mmodified: src/main.go\x1b[m\n"
	got := run(t, testFilter(), input)

	assert.Contains(t, got, "\x1b[31m")
	assert.Contains(t, got, "\x1b[m")
	assert.Contains(t, got, link("/work/src/main.go", "src/main.go"))
	// The color reset must not be swallowed into the link.
	assert.NotContains(t, got, "main.go\x1b[m\x07")
}

func TestRunByteExactWhenNothingResolves(t *testing.T) {
	inputs := []string{
		"just some text without paths\n",
		"\x1b[32mall green, no paths\x1b[0m\n",
		"bytes \xff\xfe that are not utf8\n",
		"broken escape \x1b[12 at end\n",
		"(parens) and 'quotes': still nothing\n",
		"\n",
	}
	f := testFilter()
	for _, input := range inputs {
		assert.Equal(t, input, run(t, f, input), "input %q must pass through unchanged", input)
	}
}

// "+" ends a candidate run, so a prefix containing it can never match and
// the surrounding text must pass through untouched.
func TestRunPrefixWithPlusNeverMatches(t *testing.T) {
	ctx := &paths.Context{Hostname: "host", WorkDir: "/work", Entries: map[string]struct{}{}}
	f := New(ctx, []string{"/lost+found"})

	input := "fsck moved it to /lost+found/core\n"
	assert.Equal(t, input, run(t, f, input))
}

func TestRunPreservesSeparators(t *testing.T) {
	got := run(t, testFilter(), "README.md\r\nnotapath\r\n")
	assert.Equal(t, link("/work/README.md", "README.md")+"\r\nnotapath\r\n", got)
}

func TestRunHandlesFinalLineWithoutNewline(t *testing.T) {
	got := run(t, testFilter(), "README.md")
	assert.Equal(t, link("/work/README.md", "README.md"), got)
}

func TestRunMultipleLinesKeepOrder(t *testing.T) {
	input := "one notapath\nREADME.md\nthree\n"
	got := run(t, testFilter(), input)

	lines := strings.SplitAfter(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "one notapath\n", lines[0])
	assert.Equal(t, link("/work/README.md", "README.md")+"\n", lines[1])
	assert.Equal(t, "three\n", lines[2])
	assert.Empty(t, lines[3])
}

func TestRunEmptyStream(t *testing.T) {
	assert.Empty(t, run(t, testFilter(), ""))
}

// Control spans from the input reappear in the output in the same order
// with the same bytes, regardless of what was linked around them.
func TestRunControlSequencePreservation(t *testing.T) {
	input := "\x1b[1;31m/etc/hosts\x1b[0m and \x1b]0;title\x07src\x1b(B\n"
	got := run(t, testFilter(), input)

	for _, ctl := range []string{"\x1b[1;31m", "\x1b[0m", "\x1b]0;title\x07", "\x1b(B"} {
		assert.Contains(t, got, ctl)
	}
	assert.Contains(t, got, link("/etc/hosts", "/etc/hosts"))
	assert.Contains(t, got, link("/work/src", "src"))
}
