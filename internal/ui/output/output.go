// Package output builds termenv outputs for hostcache's log and graph
// writers, deciding per writer whether colour is wanted.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// fder is implemented by writers backed by a file descriptor.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ColorProfile returns the colour profile for w. NO_COLOR always wins.
// CLICOLOR_FORCE turns colour on for pipes and files, which otherwise stay
// plain so redirected graphs and logs carry no escape codes.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	probe := termenv.NewOutput(w, termenv.WithTTY(true))
	if forced := os.Getenv("CLICOLOR_FORCE"); forced != "" && forced != "0" {
		return probe.EnvColorProfile()
	}
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return probe.EnvColorProfile()
}

// New creates a termenv.Output for w, or stderr when w is nil, using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(true),
	)
	return termenv.NewOutput(w, opts...)
}
