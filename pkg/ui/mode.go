// Package ui decides whether hyperlinks should be emitted at all, and holds
// the styles for the tool's own (stderr) output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode controls when hyperlinks are emitted.
type Mode int

const (
	// ModeAuto emits hyperlinks only when the output looks like a capable
	// terminal.
	ModeAuto Mode = iota
	// ModeAlways emits hyperlinks unconditionally.
	ModeAlways
	// ModeNever passes the stream through untouched.
	ModeNever
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode: %s (expected auto, always or never)", s)
	}
}

// ShouldLink reports whether hyperlinks should be emitted on output.
// In auto mode the answer is yes only when the stream is a terminal that
// advertises at least ANSI capability and NO_COLOR is unset; a further pipe
// or a redirect gets the untouched bytes. Terminals that ignore OSC 8
// display just the visible text, so a false positive here is cosmetic,
// while wrapping output headed into a file would not be.
func ShouldLink(mode Mode, output *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
