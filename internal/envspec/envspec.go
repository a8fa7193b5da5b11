// Where: internal/envspec/envspec.go
// What: Static environment table and port derivation.
// Why: One table maps environment names to branch, compose file, and port block.
package envspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ucmctl/ucm/internal/meta"
)

// DebugOverlayName is the filename of the generated debug overlay
// compose file. Its presence in a container's config_files label marks
// the environment as running in debug mode.
const DebugOverlayName = "docker-compose.debug.yml"

// ErrUnknownEnvironment is returned when a name outside the environment
// table is requested. Resolution has no side effects on this path.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Service describes one managed service of an environment: its fixed
// port offset within the environment's port block, the HTTP path probed
// by health checks (empty means container state only), and the source
// directory bind-mounted in debug mode.
type Service struct {
	Name       string
	PortOffset int
	HealthPath string
	SourceDir  string
	DevCommand string
}

// Services is the fixed service set shared by all environments.
// Offsets are relative to the environment's base port.
var Services = []Service{
	{Name: "frontend", PortOffset: 0, HealthPath: "/health", SourceDir: "frontend", DevCommand: "npm run dev"},
	{Name: "backend", PortOffset: 10, HealthPath: "/health", SourceDir: "backend", DevCommand: "npm run dev"},
	{Name: "cache", PortOffset: 30},
}

// Environment is a named deployment target. Records are derived fresh
// from the table on every invocation and never persisted.
type Environment struct {
	Name        string
	Branch      string
	ComposeFile string
	BasePort    int
}

// Defaults returns the built-in environment table in display order.
func Defaults() []Environment {
	return []Environment{
		{Name: "prod", Branch: "main", ComposeFile: "docker-compose.prod.yml", BasePort: 7500},
		{Name: "staging", Branch: "develop", ComposeFile: "docker-compose.staging.yml", BasePort: 7600},
		{Name: "local", ComposeFile: "docker-compose.local.yml", BasePort: 7700},
	}
}

// Known returns the environment names in table order.
func Known() []string {
	defaults := Defaults()
	names := make([]string, 0, len(defaults))
	for _, env := range defaults {
		names = append(names, env.Name)
	}
	return names
}

// Resolve returns the environment record for name from the built-in
// table. The name is case-insensitive.
func Resolve(name string) (Environment, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, env := range Defaults() {
		if env.Name == normalized {
			return env, nil
		}
	}
	return Environment{}, fmt.Errorf("%w: %q (expected one of %s)",
		ErrUnknownEnvironment, name, strings.Join(Known(), ", "))
}

// ServiceByName returns the service table entry for name.
func ServiceByName(name string) (Service, bool) {
	for _, svc := range Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}

// ComposeProject returns the Docker Compose project name for the
// environment (e.g. ucm-staging).
func (e Environment) ComposeProject() string {
	return meta.ComposeProjectPrefix + "-" + e.Name
}

// ServicePort returns the host port for a service within this
// environment's port block.
func (e Environment) ServicePort(svc Service) int {
	return e.BasePort + svc.PortOffset
}

// PortEnv returns the per-service port variables exported to docker
// compose (e.g. UCM_FRONTEND_PORT=7500). Compose files reference these
// so all three environments share one relative port scheme.
func (e Environment) PortEnv() map[string]string {
	env := make(map[string]string, len(Services))
	for _, svc := range Services {
		key := fmt.Sprintf("%s_%s_PORT", meta.EnvPrefix, strings.ToUpper(svc.Name))
		env[key] = strconv.Itoa(e.ServicePort(svc))
	}
	return env
}
