// Where: internal/app/context.go
// What: Shared resolution helpers for command handlers.
// Why: Keep repo/environment/snapshot plumbing in one place.
package app

import (
	"path/filepath"

	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/state"
)

// detectSnapshot asks the engine what is running right now. The result
// is never cached across invocations.
func detectSnapshot(deps Dependencies) (state.Snapshot, error) {
	detector := state.Detector{
		ListContainers: func(project string) ([]state.ContainerInfo, error) {
			return compose.ListContainersByProject(deps.Ctx, deps.Docker, project)
		},
	}
	return detector.Detect()
}

// resolveEnvironment resolves an environment record with repo
// overrides applied, returning the repo root alongside it.
func resolveEnvironment(deps Dependencies, name string) (envspec.Environment, string, error) {
	root, err := deps.RepoResolver(deps.WorkDir)
	if err != nil {
		return envspec.Environment{}, "", err
	}
	env, err := envspec.ResolveFor(root, name)
	if err != nil {
		return envspec.Environment{}, "", err
	}
	return env, root, nil
}

// composeFilesFor returns the absolute compose file set for env,
// including the debug overlay when the snapshot says debug is active.
func composeFilesFor(env envspec.Environment, root string, overlays []string) []string {
	path := env.ComposeFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return append([]string{path}, overlays...)
}
