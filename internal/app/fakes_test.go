// Where: internal/app/fakes_test.go
// What: Shared fakes and fixtures for command handler tests.
// Why: Exercise handlers end to end without an engine or git binary.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/container"

	"github.com/ucmctl/ucm/internal/compose"
)

type runnerCall struct {
	dir  string
	env  []string
	name string
	args []string
}

// fakeRunner records exec calls; errFor injects failures per binary.
type fakeRunner struct {
	calls  []runnerCall
	errFor map[string]error
	output []byte
}

func (f *fakeRunner) Run(_ context.Context, dir string, env []string, name string, args ...string) error {
	f.calls = append(f.calls, runnerCall{dir: dir, env: env, name: name, args: args})
	return f.errFor[name]
}

func (f *fakeRunner) RunOutput(_ context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runnerCall{dir: dir, env: env, name: name, args: args})
	return f.output, f.errFor[name]
}

func (f *fakeRunner) callsFor(name string) []runnerCall {
	var matched []runnerCall
	for _, call := range f.calls {
		if call.name == name {
			matched = append(matched, call)
		}
	}
	return matched
}

// fakeDocker implements compose.DockerClient over an in-memory
// container list, honoring the project label filter.
type fakeDocker struct {
	containers []container.Summary
	stopped    []string
}

func (f *fakeDocker) ContainerList(_ context.Context, options container.ListOptions) ([]container.Summary, error) {
	labels := options.Filters.Get("label")
	if len(labels) == 0 {
		return f.containers, nil
	}
	project := strings.TrimPrefix(labels[0], compose.ComposeProjectLabel+"=")

	var result []container.Summary
	for _, ctr := range f.containers {
		if ctr.Labels[compose.ComposeProjectLabel] == project {
			result = append(result, ctr)
		}
	}
	return result, nil
}

func (f *fakeDocker) ContainerStop(_ context.Context, id string, _ container.StopOptions) error {
	f.stopped = append(f.stopped, id)
	for i := range f.containers {
		if f.containers[i].ID == id {
			f.containers[i].State = "exited"
		}
	}
	return nil
}

func (f *fakeDocker) ContainerStatsOneShot(_ context.Context, _ string) (container.StatsResponseReader, error) {
	return container.StatsResponseReader{Body: io.NopCloser(strings.NewReader("{}"))}, nil
}

func runningContainer(id, project, service string) container.Summary {
	return container.Summary{
		ID:    id,
		Names: []string{"/" + project + "-" + service + "-1"},
		State: "running",
		Labels: map[string]string{
			compose.ComposeProjectLabel: project,
			compose.ComposeServiceLabel: service,
		},
	}
}

// testRepo lays out a managed repo with all three compose files.
func testRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	content := `services:
  frontend:
    image: alpine
  backend:
    image: alpine
  cache:
    image: alpine
`
	for _, file := range []string{
		"docker-compose.prod.yml",
		"docker-compose.staging.yml",
		"docker-compose.local.yml",
	} {
		if err := os.WriteFile(filepath.Join(root, file), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func testDeps(t *testing.T, root string, runner *fakeRunner, docker *fakeDocker) Dependencies {
	t.Helper()
	return Dependencies{
		Ctx:          context.Background(),
		WorkDir:      root,
		Runner:       runner,
		Docker:       docker,
		RepoResolver: func(string) (string, error) { return root, nil },
	}
}
