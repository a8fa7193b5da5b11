// Where: internal/app/config_cmd.go
// What: Configuration commands.
// Why: Register the managed repository path in the global config.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/ucmctl/ucm/internal/config"
	"github.com/ucmctl/ucm/internal/ui"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	SetRepo ConfigSetRepoCmd `cmd:"" name:"set-repo" help:"Register the managed repository path"`
}

type ConfigSetRepoCmd struct {
	Path string `arg:"" help:"Path inside the managed repository"`
}

// runConfigSetRepo stores the repository root in ~/.ucm/config.yaml.
func runConfigSetRepo(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	abs, err := filepath.Abs(cli.Config.SetRepo.Path)
	if err != nil {
		return exitWithError(out, err)
	}
	root, err := config.ResolveRepoRoot(abs)
	if err != nil {
		return exitWithError(out, fmt.Errorf("no environment compose files found under %s", abs))
	}

	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		cfg = config.DefaultGlobalConfig()
	}
	cfg.RepoPath = root
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	console.Success(fmt.Sprintf("repository set to %s", root))
	return 0
}
