// Where: internal/compose/fake_runner_test.go
// What: Shared fake command runner for compose tests.
// Why: Capture exec calls without touching the docker binary.
package compose

import (
	"context"
)

type runnerCall struct {
	dir  string
	env  []string
	name string
	args []string
}

type fakeRunner struct {
	calls []runnerCall
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir string, env []string, name string, args ...string) error {
	f.calls = append(f.calls, runnerCall{dir: dir, env: env, name: name, args: args})
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runnerCall{dir: dir, env: env, name: name, args: args})
	return []byte(""), f.err
}

func (f *fakeRunner) last() runnerCall {
	if len(f.calls) == 0 {
		return runnerCall{}
	}
	return f.calls[len(f.calls)-1]
}
