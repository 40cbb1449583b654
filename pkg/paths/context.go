package paths

import (
	"os"

	"github.com/konradko/linkify/pkg/logging"
)

// FallbackHostname is used in hyperlink targets when the OS hostname lookup
// fails. file:// URLs with a wrong host still open locally in every terminal
// tested; an empty host renders as file:/// which some terminals mangle.
const FallbackHostname = "localhost"

// Context holds the host-environment facts consulted during classification.
// It is populated once per process and never mutated afterwards, so it is
// safe to share by pointer across every line-processing call without
// locking. The working-directory listing is not refreshed mid-run; files
// created after startup are not recognized, which is acceptable for a
// process whose lifetime is one stream.
type Context struct {
	Hostname string
	Home     string
	WorkDir  string

	// Entries is the set of names directly inside WorkDir.
	Entries map[string]struct{}
}

// NewContext populates a Context from the OS. Lookup failures are not fatal:
// a missing home directory simply disables home-relative matching for the
// run, and an unreadable working directory disables relative matching.
// Only the working-directory path itself is required, since relative targets
// cannot be formed without it.
func NewContext() (*Context, error) {
	logger := logging.GetLogger("paths")

	ctx := &Context{Entries: make(map[string]struct{})}

	hostname, err := os.Hostname()
	if err != nil {
		logger.Warn().Err(err).Msg("Hostname lookup failed, using fallback")
		hostname = FallbackHostname
	}
	ctx.Hostname = hostname

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn().Err(err).Msg("Home directory unknown, ~/ candidates will not match")
	} else {
		ctx.Home = home
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	ctx.WorkDir = wd

	entries, err := os.ReadDir(wd)
	if err != nil {
		logger.Warn().Err(err).Str("dir", wd).Msg("Cannot list working directory, relative candidates will not match")
	}
	for _, e := range entries {
		ctx.Entries[e.Name()] = struct{}{}
	}

	logger.Debug().
		Str("hostname", ctx.Hostname).
		Str("home", ctx.Home).
		Str("workDir", ctx.WorkDir).
		Int("entries", len(ctx.Entries)).
		Msg("Resolution context ready")

	return ctx, nil
}
