// Package envutil provides helper functions for host environment variable handling.
package envutil

import (
	"os"

	"github.com/ucmctl/ucm/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the UCM prefix with the given suffix.
// Example: HostEnvKey("REPO") returns "UCM_REPO".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("REPO") returns the value of UCM_REPO.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}
