// Where: internal/state/state.go
// What: Active-environment snapshot types.
// Why: Represent what the container engine reports, never cached beliefs.
package state

// ContainerInfo is one container row as reported by the engine.
// CPUPerc and MemUsage are filled lazily for running containers.
type ContainerInfo struct {
	ID          string
	Name        string
	Service     string
	State       string
	ConfigFiles string
	CPUPerc     string
	MemUsage    string
}

// Running reports whether the engine considers the container running.
func (c ContainerInfo) Running() bool {
	return c.State == "running"
}

// Snapshot describes the environment that is active right now, derived
// by inspecting the container engine at call time. A zero Snapshot
// means none-active.
type Snapshot struct {
	Name       string
	Debug      bool
	Containers []ContainerInfo
}

// Active reports whether any managed environment has running containers.
func (s Snapshot) Active() bool {
	return s.Name != ""
}
