// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep identity strings in one place.
package meta

const (
	// Project Identity
	AppName   = "ucm"
	EnvPrefix = "UCM"

	// Directory Layout
	HomeDir = ".ucm"

	// ComposeProjectPrefix is prepended to environment names to form
	// the Docker Compose project name (e.g. ucm-prod).
	ComposeProjectPrefix = "ucm"
)
