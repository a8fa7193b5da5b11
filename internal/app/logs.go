// Where: internal/app/logs.go
// What: Logs command.
// Why: Forward engine logs for the active environment with CLI flags.
package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/config"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/interaction"
	"github.com/ucmctl/ucm/internal/ui"
)

// runLogs executes the 'logs' command against whichever environment is
// currently active. Follow mode ends only on interrupt; non-follow
// reads re-consume the engine's retained buffer.
func runLogs(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	snapshot, err := detectSnapshot(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	if !snapshot.Active() {
		console.Info("no environment is active")
		return 0
	}

	env, root, err := resolveEnvironment(deps, snapshot.Name)
	if err != nil {
		return exitWithError(out, err)
	}

	var overlays []string
	if snapshot.Debug {
		if destDir, err := config.StateHomeDir(env.Name); err == nil {
			overlayPath := filepath.Join(destDir, envspec.DebugOverlayName)
			if _, err := os.Stat(overlayPath); err == nil {
				overlays = append(overlays, overlayPath)
			}
		}
	}

	req := compose.LogsOptions{
		RootDir:      root,
		Project:      env.ComposeProject(),
		File:         env.ComposeFile,
		OverlayFiles: overlays,
		PortEnv:      env.PortEnv(),
		Follow:       cli.Logs.Follow,
		Tail:         cli.Logs.Tail,
		Timestamps:   cli.Logs.Timestamps,
		Service:      strings.TrimSpace(cli.Logs.Service),
	}

	if req.Service == "" && deps.Prompter != nil && interaction.IsTerminal(os.Stdin) {
		selected, ok := pickService(deps, env, root, overlays)
		if ok {
			req.Service = selected
		}
	}

	if err := compose.LogsProject(deps.Ctx, deps.Runner, req); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

// pickService offers an interactive service choice on a TTY. Any
// failure just means "all services".
func pickService(deps Dependencies, env envspec.Environment, root string, overlays []string) (string, bool) {
	files := composeFilesFor(env, root, overlays)
	services, err := compose.DeclaredServices(deps.Ctx, env.ComposeProject(), files, compose.EnvSlice(env.PortEnv()))
	if err != nil || len(services) == 0 {
		return "", false
	}

	options := []interaction.SelectOption{{Label: "All services", Value: ""}}
	for _, svc := range services {
		options = append(options, interaction.SelectOption{Label: svc, Value: svc})
	}

	selected, err := deps.Prompter.SelectValue("Select service to view logs", options)
	if err != nil {
		return "", false
	}
	return selected, true
}
