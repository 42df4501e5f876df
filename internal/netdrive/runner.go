package netdrive

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner shells out via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()

	return string(out), err
}

// CommandError wraps a failed external command together with its output,
// which on Windows usually carries the actual reason for the failure.
type CommandError struct {
	// Command is the full command line that failed.
	Command string
	// Output is the combined stdout/stderr of the command.
	Output string
	// Err is the underlying execution error.
	Err error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("running %q: %v", e.Command, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// commandError builds a *CommandError from the pieces of a failed run.
func commandError(name string, args []string, output string, err error) *CommandError {
	return &CommandError{
		Command: strings.Join(append([]string{name}, args...), " "),
		Output:  output,
		Err:     err,
	}
}
