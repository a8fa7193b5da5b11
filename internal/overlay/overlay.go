// Where: internal/overlay/overlay.go
// What: Debug overlay compose file generation.
// Why: Debug mode bind-mounts sources over built images via an extra -f file.
package overlay

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/meta"
)

// The overlay only touches services that have a source directory; the
// cache keeps running its built image even in debug mode.
const overlayTemplate = `# Generated by {{ .AppName }} for the {{ .Environment }} environment.
# Source directories are mounted over the built images; do not edit.
services:
{{- range .Services }}
{{- if .SourceDir }}
  {{ .Name }}:
{{- if .DevCommand }}
    command: {{ .DevCommand | quote }}
{{- end }}
    volumes:
      - {{ printf "%s/%s:/app" $.RepoRoot .SourceDir | quote }}
    environment:
      {{ printf "%s_DEBUG" $.EnvPrefix }}: "1"
{{- end }}
{{- end }}
`

type params struct {
	AppName     string
	EnvPrefix   string
	Environment string
	RepoRoot    string
	Services    []envspec.Service
}

// Render writes the debug overlay for env into destDir and returns its
// path. The file is regenerated on every debug switch, so mount state
// is never sticky across intermediate switches.
func Render(env envspec.Environment, repoRoot, destDir string) (string, error) {
	tmpl, err := template.New("overlay").Funcs(sprig.FuncMap()).Parse(overlayTemplate)
	if err != nil {
		return "", fmt.Errorf("parse overlay template: %w", err)
	}

	var buf bytes.Buffer
	data := params{
		AppName:     meta.AppName,
		EnvPrefix:   meta.EnvPrefix,
		Environment: env.Name,
		RepoRoot:    repoRoot,
		Services:    envspec.Services,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render overlay: %w", err)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(destDir, envspec.DebugOverlayName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
