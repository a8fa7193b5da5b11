// Where: internal/compose/runner.go
// What: External command execution abstraction.
// Why: Keep compose/git invocations testable without a docker binary.
package compose

import (
	"context"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
// The extra env entries are appended to the process environment.
type CommandRunner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) error
	RunOutput(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes a command with inherited stdin/stdout/stderr. Cancelling
// the context kills the child, which is how a followed log stream ends.
func (ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = mergedEnv(env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// RunOutput executes a command and returns its combined output.
func (ExecRunner) RunOutput(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = mergedEnv(env)
	return cmd.CombinedOutput()
}

func mergedEnv(extra []string) []string {
	if len(extra) == 0 {
		return nil // inherit as-is
	}
	return append(os.Environ(), extra...)
}
