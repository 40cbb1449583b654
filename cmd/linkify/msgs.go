package linkify

// Message constants
const (
	MsgRootShort = "Make file paths in piped output clickable"
	MsgRootLong  = `linkify reads a stream on stdin, wraps substrings that look like real
filesystem paths in OSC 8 terminal hyperlinks, and writes the result to
stdout. Every other byte, existing color escape sequences included, passes
through unchanged.

Absolute paths under recognized roots (/etc, /usr, ...) and ~/ paths are
linked by shape alone; bare relative candidates are linked only when their
first component names an entry of the current directory.`

	MsgRootExample = `  # Clickable paths in git status
  git status | linkify

  # Clickable matches from a recursive grep
  grep -rn TODO . | linkify

  # Force hyperlinks even when stdout is not a terminal
  ls --color | linkify --when always`

	MsgDoctorShort = "Show the resolution context linkify would use"
	MsgDoctorLong  = `The doctor command prints the host facts consulted when classifying
candidates: hostname, home directory, working directory and its entry
count, and the configured absolute-path prefixes. Use it to understand why
a given token did or did not become a link.`

	MsgDocsShort = "Show the usage guide"

	MsgGenConfigShort = "Print a commented default configuration"
	MsgGenConfigLong  = `gen-config renders the default configuration with every value commented
out. By default it prints to stdout; with --write it creates the user
config file if one does not already exist.`
)
