// Where: cmd/ucm/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"io"
	"os"

	"github.com/ucmctl/ucm/internal/app"
	"github.com/ucmctl/ucm/internal/compose"
	"github.com/ucmctl/ucm/internal/config"
	"github.com/ucmctl/ucm/internal/health"
	"github.com/ucmctl/ucm/internal/interaction"
)

var (
	getwd           = os.Getwd
	newDockerClient = compose.NewDockerClient
)

// buildDependencies constructs all runtime dependencies required by the
// CLI. Returns the dependencies, a closer for cleanup, and any
// initialization error.
func buildDependencies(ctx context.Context) (app.Dependencies, io.Closer, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	client, err := newDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	deps := app.Dependencies{
		Ctx:          ctx,
		WorkDir:      workDir,
		Out:          os.Stdout,
		Runner:       compose.ExecRunner{},
		Docker:       client,
		Prompter:     interaction.HuhPrompter{},
		Prober:       health.NewProber(),
		RepoResolver: config.ResolveRepoRoot,
	}

	return deps, asCloser(client), nil
}

// asCloser attempts to cast the Docker client to an io.Closer.
func asCloser(client compose.DockerClient) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
