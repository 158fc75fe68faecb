package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Enabled controls whether Start draws anything. It defaults to whether
// stderr is a terminal.
var Enabled = term.IsTerminal(int(os.Stderr.Fd()))

// Start shows a spinner with the given suffix on stderr while a long
// external command runs. The returned func stops it.
func Start(suffix string) func() {
	if !Enabled {
		return func() {}
	}
	loader := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " " + suffix
	loader.Start()
	return loader.Stop
}
