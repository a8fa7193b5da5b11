// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/config"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/health"
	"github.com/ucmctl/ucm/internal/interaction"
	"github.com/ucmctl/ucm/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. The structure enables swapping the engine client and the
// command runner in tests.
type Dependencies struct {
	Ctx          context.Context
	WorkDir      string
	Out          io.Writer
	Runner       compose.CommandRunner
	Docker       compose.DockerClient
	Prompter     interaction.Prompter
	Prober       *health.Prober
	RepoResolver func(string) (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Switch     SwitchCmd     `cmd:"" help:"Activate an environment"`
	Status     StatusCmd     `cmd:"" help:"Show the active environment"`
	Health     HealthCmd     `cmd:"" help:"Probe service health"`
	Logs       LogsCmd       `cmd:"" help:"View logs"`
	Stop       StopCmd       `cmd:"" help:"Stop environment containers"`
	Env        EnvCmd        `cmd:"" name:"env" help:"Inspect known environments"`
	Config     ConfigCmd     `cmd:"" name:"config" help:"Manage configuration"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	SwitchCmd struct {
		Target string `arg:"" help:"Environment name (prod, staging, or local)"`
		Debug  bool   `help:"Bind-mount source directories instead of using built images"`
	}
	StatusCmd struct {
		Watch bool `short:"w" help:"Poll the snapshot continuously"`
	}
	HealthCmd struct{}
	LogsCmd   struct {
		Service    string `arg:"" optional:"" help:"Service name (default: all)"`
		Follow     bool   `short:"f" help:"Follow logs"`
		Tail       int    `help:"Tail the latest N lines"`
		Timestamps bool   `help:"Show timestamps"`
	}
	StopCmd struct {
		Target string `arg:"" optional:"" help:"Environment name or 'all' (default: all)"`
	}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution. It parses the
// arguments and dispatches to the matching handler. Returns 0 on
// success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.RepoResolver == nil {
		deps.RepoResolver = config.ResolveRepoRoot
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// No arguments: show the current snapshot.
	if len(args) == 0 {
		return runStatus(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, out)
	}

	loadEnvFile(cli.EnvFile, out)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"status":          runStatus,
		"health":          runHealth,
		"logs":            runLogs,
		"stop":            runStop,
		"env":             runEnvList,
		"env list":        runEnvList,
		"completion bash": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "switch", handler: runSwitch},
		{prefix: "logs", handler: runLogs},
		{prefix: "stop", handler: runStop},
		{prefix: "env show", handler: runEnvShow},
		{prefix: "config set-repo", handler: runConfigSetRepo},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// loadEnvFile loads a .env file if given, or the default .env in the
// working directory when present. Failures are warnings only.
func loadEnvFile(envFile string, out io.Writer) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", envFile, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// commandName extracts the first non-flag argument from the command line.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			if arg == "--env-file" {
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

// handleParseError provides user-friendly messages for parse failures.
func handleParseError(args []string, err error, out io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "expected") {
		switch commandName(args) {
		case "switch":
			fmt.Fprintf(out, "Environment name required: one of %s\n", strings.Join(envspec.Known(), ", "))
			return 1
		case "env":
			fmt.Fprintln(out, "Usage: ucm env [list|show <name>]")
			return 1
		}
	}

	return exitWithError(out, err)
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
