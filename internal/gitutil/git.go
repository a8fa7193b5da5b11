// Where: internal/gitutil/git.go
// What: Git branch helpers.
// Why: Environment activation checks out the bound branch, best effort.
package gitutil

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes an external command and captures its combined output.
// The exec-backed compose runner satisfies it.
type Runner interface {
	RunOutput(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error)
}

// BranchCheckoutError is a warning-level failure: the working tree may
// carry local changes, so a switch proceeds on whatever branch is
// currently active.
type BranchCheckoutError struct {
	Branch string
	Output string
	Err    error
}

func (e *BranchCheckoutError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("checkout %s: %v: %s", e.Branch, e.Err, e.Output)
	}
	return fmt.Sprintf("checkout %s: %v", e.Branch, e.Err)
}

func (e *BranchCheckoutError) Unwrap() error {
	return e.Err
}

// Checkout switches the repository at dir to branch. Failures come back
// as *BranchCheckoutError carrying git's own diagnostic.
func Checkout(ctx context.Context, runner Runner, dir, branch string) error {
	out, err := runner.RunOutput(ctx, dir, nil, "git", "checkout", branch)
	if err != nil {
		return &BranchCheckoutError{
			Branch: branch,
			Output: strings.TrimSpace(string(out)),
			Err:    err,
		}
	}
	return nil
}

// CurrentBranch returns the checked-out branch name for the repository
// at dir.
func CurrentBranch(ctx context.Context, runner Runner, dir string) (string, error) {
	out, err := runner.RunOutput(ctx, dir, nil, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
