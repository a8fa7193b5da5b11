// Where: internal/compose/logs.go
// What: Docker compose log access.
// Why: Forward the engine's retained log buffer, optionally following.
package compose

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// LogsOptions contains configuration for viewing compose logs.
type LogsOptions struct {
	RootDir      string
	Project      string
	File         string
	OverlayFiles []string
	PortEnv      map[string]string
	Follow       bool
	Tail         int
	Timestamps   bool
	Service      string
}

// LogsProject runs docker compose logs. In follow mode the stream is
// infinite and ends only when the context is cancelled; cancellation is
// a clean stop, not an error.
func LogsProject(ctx context.Context, runner CommandRunner, opts LogsOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if opts.RootDir == "" {
		return fmt.Errorf("root dir is required")
	}

	path := opts.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(opts.RootDir, path)
	}

	args := []string{"compose", "-p", opts.Project, "-f", path}
	for _, file := range opts.OverlayFiles {
		if strings.TrimSpace(file) == "" {
			continue
		}
		args = append(args, "-f", file)
	}

	args = append(args, "logs")
	if opts.Follow {
		args = append(args, "--follow")
	}
	if opts.Tail > 0 {
		args = append(args, "--tail", fmt.Sprintf("%d", opts.Tail))
	}
	if opts.Timestamps {
		args = append(args, "--timestamps")
	}
	if service := strings.TrimSpace(opts.Service); service != "" {
		args = append(args, service)
	}

	err := runner.Run(ctx, opts.RootDir, EnvSlice(opts.PortEnv), "docker", args...)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return &ComposeError{Op: "logs", Project: opts.Project, Err: err}
	}
	return nil
}
