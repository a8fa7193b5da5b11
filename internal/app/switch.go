// Where: internal/app/switch.go
// What: Switch command orchestration.
// Why: Checkout, stop the outgoing environment, and bring up the target.
package app

import (
	"fmt"
	"io"

	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/config"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/gitutil"
	"github.com/ucmctl/ucm/internal/overlay"
	"github.com/ucmctl/ucm/internal/ui"
)

// runSwitch executes the 'switch' command. After a successful call
// exactly one environment's container set is running, bound to that
// environment's fixed port block.
func runSwitch(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	// Invalid names fail immediately, before any side effect.
	env, root, err := resolveEnvironment(deps, cli.Switch.Target)
	if err != nil {
		return exitWithError(out, err)
	}

	// Best effort: the working tree may carry local changes, so a
	// failed checkout downgrades to a warning and the switch proceeds
	// on whatever branch is active.
	if env.Branch != "" {
		if err := gitutil.Checkout(deps.Ctx, deps.Runner, root, env.Branch); err != nil {
			console.Warn(fmt.Sprintf("staying on current branch: %v", err))
		}
	}

	// All environments share one relative port scheme, so whatever else
	// is running must stop first. Stopping goes through the engine by
	// project label; the outgoing environment's compose file is not
	// needed and may not even exist anymore.
	for _, other := range envspec.Defaults() {
		if other.Name == env.Name {
			continue
		}
		if _, err := compose.StopProjectContainers(deps.Ctx, deps.Docker, other.ComposeProject()); err != nil {
			return exitWithError(out, err)
		}
	}

	opts := compose.UpOptions{
		RootDir: root,
		Project: env.ComposeProject(),
		File:    env.ComposeFile,
		PortEnv: env.PortEnv(),
		Detach:  true,
	}

	if cli.Switch.Debug {
		destDir, err := config.StateHomeDir(env.Name)
		if err != nil {
			return exitWithError(out, err)
		}
		overlayPath, err := overlay.Render(env, root, destDir)
		if err != nil {
			return exitWithError(out, err)
		}
		opts.OverlayFiles = []string{overlayPath}
	}

	if err := compose.UpProject(deps.Ctx, deps.Runner, opts); err != nil {
		return exitWithError(out, err)
	}

	console.Success(fmt.Sprintf("%s is active", env.Name))
	if env.Branch != "" {
		console.Item("branch", env.Branch)
	}
	console.Item("compose file", env.ComposeFile)
	console.Item("debug", cli.Switch.Debug)
	for _, svc := range envspec.Services {
		console.Item(svc.Name, env.ServicePort(svc))
	}
	return 0
}
