package testutil

import (
	"strings"
	"sync"

	"github.com/pders01/belt/internal/shell"
)

// Call is one command recorded by FakeRunner
type Call struct {
	Dir         string
	Name        string
	Args        []string
	Interactive bool
}

// String renders the call the same way shell.CommandLine does
func (c Call) String() string {
	return shell.CommandLine(c.Name, c.Args...)
}

type result struct {
	output string
	err    error
}

// FakeRunner is a scripted shell.Runner. Responses are keyed by the
// rendered command line; commands without a response succeed with empty
// output. It is safe for concurrent use.
type FakeRunner struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]result
	hooks     map[string]func(Call)
}

// NewFakeRunner returns an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		responses: make(map[string]result),
		hooks:     make(map[string]func(Call)),
	}
}

// On scripts the output and error for a command line
func (f *FakeRunner) On(cmdline, output string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = result{output: output, err: err}
	return f
}

// Do registers a side effect that runs when a command whose line starts
// with prefix is executed, e.g. to create the file a tool would write.
func (f *FakeRunner) Do(prefix string, fn func(Call)) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[prefix] = fn
	return f
}

func (f *FakeRunner) record(call Call) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	line := call.String()
	res := f.responses[line]
	var effects []func(Call)
	for prefix, fn := range f.hooks {
		if strings.HasPrefix(line, prefix) {
			effects = append(effects, fn)
		}
	}
	f.mu.Unlock()

	for _, fn := range effects {
		fn(call)
	}
	return res.output, res.err
}

// Run implements shell.Runner
func (f *FakeRunner) Run(dir, name string, args ...string) error {
	_, err := f.record(Call{Dir: dir, Name: name, Args: args, Interactive: true})
	return err
}

// Output implements shell.Runner
func (f *FakeRunner) Output(dir, name string, args ...string) (string, error) {
	return f.record(Call{Dir: dir, Name: name, Args: args})
}

// Calls returns every recorded call in order
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Commands returns every recorded command line in order
func (f *FakeRunner) Commands() []string {
	var lines []string
	for _, call := range f.Calls() {
		lines = append(lines, call.String())
	}
	return lines
}

// Ran reports whether a command line was executed
func (f *FakeRunner) Ran(cmdline string) bool {
	for _, line := range f.Commands() {
		if line == cmdline {
			return true
		}
	}
	return false
}

// RanPrefix reports whether any executed command line starts with prefix
func (f *FakeRunner) RanPrefix(prefix string) bool {
	for _, line := range f.Commands() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
