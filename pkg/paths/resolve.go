package paths

import "strings"

// Kind classifies how a candidate was matched, which also determines how its
// target was formed.
type Kind int

const (
	// Absolute candidates start with a recognized root-directory prefix.
	Absolute Kind = iota
	// Home candidates start with "~/".
	Home
	// Relative candidates name an entry of the working directory.
	Relative
)

func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case Home:
		return "home"
	case Relative:
		return "relative"
	default:
		return "unknown"
	}
}

// Resolved is a classified candidate together with the absolute path used as
// the hyperlink target. The candidate's own bytes stay untouched in the
// output; Target is only ever placed inside the escape sequence.
type Resolved struct {
	Kind   Kind
	Target string
}

// Resolver classifies candidates against a fixed Context and a configured
// set of recognized absolute-path prefixes.
type Resolver struct {
	ctx      *Context
	prefixes map[string]struct{}
}

// NewResolver builds a Resolver. prefixes are the recognized absolute
// roots, e.g. "/usr" or "/etc"; matching is against the candidate's first
// path segment only, so "/usr" covers "/usr/local/bin".
func NewResolver(ctx *Context, prefixes []string) *Resolver {
	set := make(map[string]struct{}, len(prefixes))
	for _, p := range prefixes {
		set[strings.TrimSuffix(p, "/")] = struct{}{}
	}
	return &Resolver{ctx: ctx, prefixes: set}
}

// Resolve classifies candidate. The rules apply in order, first match wins:
//
//  1. "~/..." resolves against the home directory, no existence check
//  2. "/..." whose first segment is a recognized prefix passes as-is,
//     no existence check
//  3. anything whose first component names a working-directory entry
//     resolves against the working directory
//
// Everything else is rejected and ok is false.
func (r *Resolver) Resolve(candidate string) (Resolved, bool) {
	if strings.HasPrefix(candidate, "~/") {
		if r.ctx.Home == "" {
			return Resolved{}, false
		}
		return Resolved{Kind: Home, Target: r.ctx.Home + candidate[1:]}, true
	}

	if strings.HasPrefix(candidate, "/") {
		if _, ok := r.prefixes[firstSegment(candidate)]; ok {
			return Resolved{Kind: Absolute, Target: candidate}, true
		}
		return Resolved{}, false
	}

	if _, ok := r.ctx.Entries[firstComponent(candidate)]; ok {
		// TrimSuffix keeps a root working directory from producing
		// a "//candidate" target.
		base := strings.TrimSuffix(r.ctx.WorkDir, "/")
		return Resolved{Kind: Relative, Target: base + "/" + candidate}, true
	}

	return Resolved{}, false
}

// firstSegment returns "/name" for a candidate like "/name/rest".
func firstSegment(candidate string) string {
	if i := strings.IndexByte(candidate[1:], '/'); i >= 0 {
		return candidate[:i+1]
	}
	return candidate
}

// firstComponent returns the text before the first '/', or the whole
// candidate when it has none.
func firstComponent(candidate string) string {
	if i := strings.IndexByte(candidate, '/'); i >= 0 {
		return candidate[:i]
	}
	return candidate
}
