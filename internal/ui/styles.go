// Where: internal/ui/styles.go
// What: Color styling for status output.
// Why: Make health states scannable in the terminal.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ucmctl/ucm/internal/health"
)

var (
	styleHealthy     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleUnhealthy   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleUnreachable = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleNotRunning  = lipgloss.NewStyle().Faint(true)
)

// RenderHealth returns the status word colored by severity.
func RenderHealth(status health.Status) string {
	switch status {
	case health.StatusHealthy:
		return styleHealthy.Render(string(status))
	case health.StatusUnhealthy:
		return styleUnhealthy.Render(string(status))
	case health.StatusUnreachable:
		return styleUnreachable.Render(string(status))
	default:
		return styleNotRunning.Render(string(status))
	}
}
