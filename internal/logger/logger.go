package logger

import (
	"io"
	"time"

	"github.com/fatih/color"
)

// Output is where every level writes. It defaults to the colorable stderr
// so that warnings never mix with command output on stdout.
var Output io.Writer = color.Error

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

var debugEnabled bool

// Info logs informational messages in green.
func Info(format string, a ...any) {
	infoColor.Fprintf(Output, format, a...)
}

// Warn logs advisories in bright magenta. Warnings never stop a command.
func Warn(format string, a ...any) {
	warnColor.Fprintf(Output, format, a...)
}

// Error logs error messages in red.
func Error(format string, a ...any) {
	errorColor.Fprintf(Output, format, a...)
}

// Debug logs in cyan when debug output was enabled with Init, otherwise it
// does nothing.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	debugColor.Fprintf(Output, format, a...)
}

// Init turns debug logging on or off.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
}

// Section announces the start of a named step and returns a func that
// reports how long the step took.
//
//	done := logger.Section("Running tectonic")
//	defer done()
func Section(name string) func() {
	Info("===> %s\n", name)
	start := time.Now()
	return func() {
		Info("     %s: %s\n", name, time.Since(start).Round(10*time.Millisecond))
	}
}
