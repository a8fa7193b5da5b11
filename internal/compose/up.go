// Where: internal/compose/up.go
// What: Docker compose command helpers for bringing an environment up.
// Why: Provide a minimal, testable interface for starting services.
package compose

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// UpOptions contains configuration for starting a compose project.
// PortEnv carries the environment's port block; compose files reference
// these variables so every environment uses the same relative scheme.
type UpOptions struct {
	RootDir      string
	Project      string
	File         string
	OverlayFiles []string
	PortEnv      map[string]string
	Detach       bool
}

// UpProject runs docker compose up for the environment's file set.
// A missing compose file is detected before any engine call.
func UpProject(ctx context.Context, runner CommandRunner, opts UpOptions) error {
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
	if _, err := os.Stat(path); err != nil {
		return &ComposeError{Op: "up", Project: opts.Project,
			Err: fmt.Errorf("compose file not found: %s", path)}
	}

	args := []string{"compose", "-p", opts.Project, "-f", path}
	for _, file := range opts.OverlayFiles {
		if strings.TrimSpace(file) == "" {
			continue
		}
		args = append(args, "-f", file)
	}

	args = append(args, "up")
	if opts.Detach {
		args = append(args, "-d")
	}

	if err := runner.Run(ctx, opts.RootDir, EnvSlice(opts.PortEnv), "docker", args...); err != nil {
		return &ComposeError{Op: "up", Project: opts.Project, Err: err}
	}
	return nil
}

// EnvSlice flattens an env map into sorted KEY=VALUE form.
func EnvSlice(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	entries := make([]string, 0, len(env))
	for key, value := range env {
		entries = append(entries, key+"="+value)
	}
	sort.Strings(entries)
	return entries
}
