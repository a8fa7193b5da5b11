// Where: internal/app/status.go
// What: Status command and watch loop.
// Why: Report the active environment as the engine sees it right now.
package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/constants"
	"github.com/ucmctl/ucm/internal/envutil"
	"github.com/ucmctl/ucm/internal/ui"
)

const defaultWatchInterval = 5 * time.Second

// runStatus executes the 'status' command. With --watch it polls at
// the UCM_WATCH_INTERVAL until interrupted.
func runStatus(cli CLI, deps Dependencies, out io.Writer) int {
	if !cli.Status.Watch {
		return renderStatus(deps, out)
	}

	interval := watchInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if code := renderStatus(deps, out); code != 0 {
			return code
		}
		select {
		case <-deps.Ctx.Done():
			return 0
		case <-ticker.C:
		}
	}
}

func renderStatus(deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	snapshot, err := detectSnapshot(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if !snapshot.Active() {
		console.Info("no environment is active")
		return 0
	}

	// Stats are sampled per running container; a failed sample leaves
	// the columns blank rather than failing the command.
	for i, ctr := range snapshot.Containers {
		if !ctr.Running() {
			continue
		}
		cpu, mem, err := compose.ContainerStats(deps.Ctx, deps.Docker, ctr.ID)
		if err != nil {
			continue
		}
		snapshot.Containers[i].CPUPerc = cpu
		snapshot.Containers[i].MemUsage = mem
	}

	console.Header("📦", fmt.Sprintf("%s environment", snapshot.Name))
	console.Item("debug", snapshot.Debug)
	for _, ctr := range snapshot.Containers {
		line := fmt.Sprintf("%-28s %-10s %-10s", ctr.Name, ctr.Service, ctr.State)
		if ctr.CPUPerc != "" {
			line += fmt.Sprintf("  cpu %-7s mem %s", ctr.CPUPerc, ctr.MemUsage)
		}
		console.ItemPlain(strings.TrimRight(line, " "))
	}
	return 0
}

// watchInterval reads UCM_WATCH_INTERVAL as a Go duration, defaulting
// to 5s with a 1s floor.
func watchInterval() time.Duration {
	raw := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixWatchInterval))
	if raw == "" {
		return defaultWatchInterval
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval < time.Second {
		return defaultWatchInterval
	}
	return interval
}
