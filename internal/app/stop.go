// Where: internal/app/stop.go
// What: Stop command.
// Why: Stop one environment's containers, or every managed one.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/ui"
)

// runStop executes the 'stop' command. Stopping an already-stopped
// environment is a no-op, not an error.
func runStop(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	target := strings.ToLower(strings.TrimSpace(cli.Stop.Target))

	if target == "" || target == "all" {
		total := 0
		for _, env := range envspec.Defaults() {
			stopped, err := compose.StopProjectContainers(deps.Ctx, deps.Docker, env.ComposeProject())
			if err != nil {
				return exitWithError(out, err)
			}
			total += stopped
		}
		console.Success(fmt.Sprintf("stopped %d container(s)", total))
		return 0
	}

	env, err := envspec.Resolve(target)
	if err != nil {
		return exitWithError(out, err)
	}

	stopped, err := compose.StopProjectContainers(deps.Ctx, deps.Docker, env.ComposeProject())
	if err != nil {
		return exitWithError(out, err)
	}
	if stopped == 0 {
		console.Info(fmt.Sprintf("nothing running for %s", env.Name))
		return 0
	}
	console.Success(fmt.Sprintf("stopped %d container(s) for %s", stopped, env.Name))
	return 0
}
