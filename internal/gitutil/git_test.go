// Where: internal/gitutil/git_test.go
// What: Tests for git branch helpers.
// Why: Checkout failures must surface as typed warnings with git's output.
package gitutil

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ucmctl/ucm/internal/compose"
)

// The production wiring hands the compose exec runner to this package.
var _ Runner = compose.ExecRunner{}

type fakeRunner struct {
	output []byte
	err    error

	dir  string
	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, dir string, _ []string, name string, args ...string) error {
	f.dir, f.name, f.args = dir, name, args
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir string, _ []string, name string, args ...string) ([]byte, error) {
	f.dir, f.name, f.args = dir, name, args
	return f.output, f.err
}

func TestCheckoutRunsGitInRepoDir(t *testing.T) {
	runner := &fakeRunner{}

	if err := Checkout(context.Background(), runner, "/repo", "develop"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if runner.name != "git" || runner.dir != "/repo" {
		t.Fatalf("unexpected invocation: %s in %s", runner.name, runner.dir)
	}
	if !reflect.DeepEqual(runner.args, []string{"checkout", "develop"}) {
		t.Fatalf("unexpected args: %v", runner.args)
	}
}

func TestCheckoutWrapsFailureWithGitOutput(t *testing.T) {
	runner := &fakeRunner{
		output: []byte("error: Your local changes would be overwritten\n"),
		err:    errors.New("exit status 1"),
	}

	err := Checkout(context.Background(), runner, "/repo", "main")
	if err == nil {
		t.Fatal("expected error")
	}

	var checkoutErr *BranchCheckoutError
	if !errors.As(err, &checkoutErr) {
		t.Fatalf("expected *BranchCheckoutError, got %T", err)
	}
	if checkoutErr.Branch != "main" {
		t.Fatalf("unexpected branch: %s", checkoutErr.Branch)
	}
	if checkoutErr.Output != "error: Your local changes would be overwritten" {
		t.Fatalf("unexpected output: %q", checkoutErr.Output)
	}
}

func TestCurrentBranchTrimsOutput(t *testing.T) {
	runner := &fakeRunner{output: []byte("develop\n")}

	branch, err := CurrentBranch(context.Background(), runner, "/repo")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if branch != "develop" {
		t.Fatalf("expected develop, got %q", branch)
	}
	if !reflect.DeepEqual(runner.args, []string{"rev-parse", "--abbrev-ref", "HEAD"}) {
		t.Fatalf("unexpected args: %v", runner.args)
	}
}
