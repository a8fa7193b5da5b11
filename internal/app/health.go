// Where: internal/app/health.go
// What: Health command.
// Why: Render per-service status without ever raising on a probe failure.
package app

import (
	"fmt"
	"io"

	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/health"
	"github.com/ucmctl/ucm/internal/ui"
)

// runHealth executes the 'health' command. When no environment is
// active every known service reports not-running and the command still
// succeeds.
func runHealth(_ CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	snapshot, err := detectSnapshot(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if !snapshot.Active() {
		console.Header("🩺", "service health (no active environment)")
		renderHealth(console, health.NotRunningAll(envspec.Services))
		return 0
	}

	env, services := probePlan(deps, snapshot.Name)

	prober := deps.Prober
	if prober == nil {
		prober = health.NewProber()
	}
	results := prober.Check(deps.Ctx, env, services, snapshot.Containers)

	console.Header("🩺", fmt.Sprintf("service health (%s)", snapshot.Name))
	renderHealth(console, results)
	return 0
}

// probePlan decides which services to probe for the active environment.
// Services declared in the compose file are matched against the fixed
// table; declared services without a table entry are judged on
// container state alone. Any resolution failure falls back to the
// static table so health keeps working.
func probePlan(deps Dependencies, name string) (envspec.Environment, []envspec.Service) {
	env, root, err := resolveEnvironment(deps, name)
	if err != nil {
		fallback, _ := envspec.Resolve(name)
		return fallback, envspec.Services
	}

	files := composeFilesFor(env, root, nil)
	declared, err := compose.DeclaredServices(deps.Ctx, env.ComposeProject(), files, compose.EnvSlice(env.PortEnv()))
	if err != nil || len(declared) == 0 {
		return env, envspec.Services
	}

	services := make([]envspec.Service, 0, len(declared))
	for _, svcName := range declared {
		if svc, ok := envspec.ServiceByName(svcName); ok {
			services = append(services, svc)
			continue
		}
		services = append(services, envspec.Service{Name: svcName})
	}
	return env, services
}

func renderHealth(console *ui.Console, results []health.Result) {
	for _, result := range results {
		console.ItemPlain(fmt.Sprintf("%-12s %-22s %s", result.Service, ui.RenderHealth(result.Status), result.Detail))
	}
}
