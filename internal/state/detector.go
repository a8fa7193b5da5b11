// Where: internal/state/detector.go
// What: Active-environment detection.
// Why: Compose engine container listings into a single snapshot.
package state

import (
	"fmt"
	"strings"

	"github.com/ucmctl/ucm/internal/envspec"
)

// Detector derives the active environment by listing containers for
// each managed compose project. The first environment (in table order)
// with at least one running container wins; by the mutual-exclusion
// invariant there is at most one.
type Detector struct {
	Environments   []envspec.Environment
	ListContainers func(composeProject string) ([]ContainerInfo, error)
}

// Detect inspects the engine and returns the current snapshot.
// A partially-started or interrupted previous switch is just whatever
// happens to be running; nothing else is consulted.
func (d Detector) Detect() (Snapshot, error) {
	if d.ListContainers == nil {
		return Snapshot{}, fmt.Errorf("container lister not configured")
	}

	environments := d.Environments
	if len(environments) == 0 {
		environments = envspec.Defaults()
	}

	for _, env := range environments {
		containers, err := d.ListContainers(env.ComposeProject())
		if err != nil {
			return Snapshot{}, err
		}

		running := false
		for _, ctr := range containers {
			if ctr.Running() {
				running = true
				break
			}
		}
		if !running {
			continue
		}

		return Snapshot{
			Name:       env.Name,
			Debug:      debugFrom(containers),
			Containers: containers,
		}, nil
	}

	return Snapshot{}, nil
}

// debugFrom reports whether the containers were started with the debug
// overlay, based on the engine's config_files label.
func debugFrom(containers []ContainerInfo) bool {
	for _, ctr := range containers {
		if strings.Contains(ctr.ConfigFiles, envspec.DebugOverlayName) {
			return true
		}
	}
	return false
}
