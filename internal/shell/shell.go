// Package shell runs the external programs every subcommand delegates to.
package shell

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner is the process capability handed to every command. Run streams the
// child's stdio to the terminal, Output captures stdout.
type Runner interface {
	Run(dir, name string, args ...string) error
	Output(dir, name string, args ...string) (string, error)
}

// CommandError describes a failed external command.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exec is the os/exec backed Runner.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Exec wired to the process' own stdio.
func New() *Exec {
	return &Exec{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes name with args in dir, attached to the configured stdio.
// An empty dir means the current working directory.
func (e *Exec) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return &CommandError{Command: CommandLine(name, args...), Err: err}
	}
	return nil
}

// Output executes name with args in dir and returns its stdout with
// surrounding whitespace trimmed. Stderr is captured into the error.
func (e *Exec) Output(dir, name string, args ...string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return "", &CommandError{
			Command: CommandLine(name, args...),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return strings.TrimSpace(string(output)), nil
}

// CommandLine renders a command for messages, quoting arguments that
// contain whitespace.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n") {
			arg = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Require fails when any of the named programs is missing from PATH.
func Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required program(s) not found in PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}
