// Where: internal/config/repo.go
// What: Repository discovery logic.
// Why: Centralize how the managed repo root is found from env, cwd, or config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ucmctl/ucm/internal/constants"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/envutil"
)

// repoMarkers are files whose presence identifies a managed repo root.
func repoMarkers() []string {
	markers := []string{envspec.RepoConfigName}
	for _, env := range envspec.Defaults() {
		markers = append(markers, env.ComposeFile)
	}
	return markers
}

// ResolveRepoRoot determines the managed repository root path.
// Priority:
// 1. UCM_REPO environment variable (validated as root or searched upward)
// 2. Upward search from startDir
// 3. repo_path in global config (~/.ucm/config.yaml)
func ResolveRepoRoot(startDir string) (string, error) {
	if repo := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixRepo)); repo != "" {
		if root, ok := findRepoRoot(repo); ok {
			return root, nil
		}
	}

	if startDir != "" {
		if root, ok := findRepoRoot(startDir); ok {
			return root, nil
		}
	}

	if cfgPath, err := GlobalConfigPath(); err == nil {
		if cfg, err := LoadGlobalConfig(cfgPath); err == nil && cfg.RepoPath != "" {
			if root, ok := findRepoRoot(cfg.RepoPath); ok {
				return root, nil
			}
		}
	}

	return "", fmt.Errorf("repository root not found; run 'ucm config set-repo <path>' or set %s",
		envutil.HostEnvKey(constants.HostSuffixRepo))
}

// findRepoRoot walks upward from start looking for a repo marker file.
func findRepoRoot(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		for _, marker := range repoMarkers() {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
