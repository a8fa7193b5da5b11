// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize host environment variable suffixes to avoid typos.
package constants

const (
	// Configuration
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"
	HostSuffixHome       = "HOME"
	HostSuffixRepo       = "REPO"

	// Behavior
	HostSuffixWatchInterval = "WATCH_INTERVAL"
	HostSuffixHealthHost    = "HEALTH_HOST"
)
