// Package termcap decides whether the active terminal can show 24-bit color.
package termcap

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// EnvVar is the single environment signal the capability check reads.
const EnvVar = "COLORTERM"

// Capability is a per-call snapshot of terminal color support. It is a
// plain value so callers (and tests) can construct one directly instead of
// depending on process environment.
type Capability struct {
	TrueColor bool
}

// Detect reads COLORTERM and reports truecolor support. The variable is read
// fresh on every call: tests flip it between renders, and nothing here may
// cache across calls. Unset or unrecognized values mean monochrome.
func Detect() Capability {
	return FromEnv(os.Getenv(EnvVar))
}

// FromEnv classifies one COLORTERM value. Recognized truecolor tokens are
// "truecolor" and "24bit", matching what terminal emulators advertise.
func FromEnv(value string) Capability {
	v := strings.ToLower(value)
	return Capability{
		TrueColor: strings.Contains(v, "truecolor") || strings.Contains(v, "24bit"),
	}
}

// StdoutProfile is the CLI-side check: truecolor only counts when stdout is
// an actual terminal, and termenv's profile lets the CLI degrade its own
// chrome (not the core renderer) on dumber terminals.
func StdoutProfile() termenv.Profile {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
