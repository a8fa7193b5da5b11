// Where: internal/app/env.go
// What: Environment inspection commands.
// Why: Show the table the switcher operates on, with repo overrides applied.
package app

import (
	"fmt"
	"io"

	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/ui"
)

// EnvCmd groups environment inspection subcommands.
type EnvCmd struct {
	List EnvListCmd `cmd:"" default:"1" help:"List environments"`
	Show EnvShowCmd `cmd:"" help:"Show one environment in detail"`
}

type (
	EnvListCmd struct{}
	EnvShowCmd struct {
		Name string `arg:"" help:"Environment name"`
	}
)

// runEnvList displays the environment table, marking the active one.
func runEnvList(_ CLI, deps Dependencies, out io.Writer) int {
	environments := environmentTable(deps)

	active := ""
	if deps.Docker != nil {
		if snapshot, err := detectSnapshot(deps); err == nil {
			active = snapshot.Name
		}
	}

	for _, env := range environments {
		marker := " "
		if env.Name == active {
			marker = "*"
		}
		branch := env.Branch
		if branch == "" {
			branch = "-"
		}
		fmt.Fprintf(out, "%s %-8s branch %-10s %-28s ports %d-%d\n",
			marker, env.Name, branch, env.ComposeFile, env.BasePort, env.BasePort+99)
	}
	return 0
}

// runEnvShow displays one environment record in detail.
func runEnvShow(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	env, _, err := resolveEnvironment(deps, cli.Env.Show.Name)
	if err != nil {
		// Fall back to the built-in table when no repo is resolvable.
		env, err = envspec.Resolve(cli.Env.Show.Name)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	console.Header("🌐", env.Name)
	if env.Branch != "" {
		console.Item("branch", env.Branch)
	}
	console.Item("compose file", env.ComposeFile)
	console.Item("project", env.ComposeProject())
	console.Item("base port", env.BasePort)
	for _, svc := range envspec.Services {
		detail := fmt.Sprintf("%d", env.ServicePort(svc))
		if svc.HealthPath != "" {
			detail += "  " + svc.HealthPath
		}
		console.Item(svc.Name, detail)
	}
	return 0
}

// environmentTable returns the table with overrides when a repo root
// is resolvable, the built-in defaults otherwise.
func environmentTable(deps Dependencies) []envspec.Environment {
	if root, err := deps.RepoResolver(deps.WorkDir); err == nil {
		if environments, err := envspec.AllFor(root); err == nil {
			return environments
		}
	}
	return envspec.Defaults()
}
