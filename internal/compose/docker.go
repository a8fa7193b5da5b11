// Where: internal/compose/docker.go
// What: Docker SDK helpers for label-scoped container queries.
// Why: Detection and stop work from engine labels, not cached state.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/ucmctl/ucm/internal/state"
)

const (
	// ComposeProjectLabel identifies the compose project a container belongs to.
	ComposeProjectLabel = "com.docker.compose.project"
	// ComposeServiceLabel identifies the compose service of a container.
	ComposeServiceLabel = "com.docker.compose.service"
	// ComposeConfigFilesLabel lists the compose files the project was started with.
	ComposeConfigFilesLabel = "com.docker.compose.project.config_files"
)

// DockerClient defines the subset of Docker SDK methods used by this
// package. It enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerStatsOneShot(ctx context.Context, containerID string) (container.StatsResponseReader, error)
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// ListContainersByProject returns container information for all
// containers (running or not) belonging to the compose project.
func ListContainersByProject(ctx context.Context, dockerClient DockerClient, project string) ([]state.ContainerInfo, error) {
	labelFilter := filters.NewArgs()
	labelFilter.Add("label", fmt.Sprintf("%s=%s", ComposeProjectLabel, project))

	containers, err := dockerClient.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: labelFilter,
	})
	if err != nil {
		return nil, err
	}

	result := make([]state.ContainerInfo, 0, len(containers))
	for _, ctr := range containers {
		if ctr.Labels == nil || ctr.Labels[ComposeProjectLabel] != project {
			continue
		}

		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}

		result = append(result, state.ContainerInfo{
			ID:          ctr.ID,
			Name:        name,
			Service:     ctr.Labels[ComposeServiceLabel],
			State:       ctr.State,
			ConfigFiles: ctr.Labels[ComposeConfigFilesLabel],
		})
	}
	return result, nil
}

// StopProjectContainers stops every running container of the compose
// project and returns the number stopped. Stopping a project with
// nothing running is a no-op, not an error.
func StopProjectContainers(ctx context.Context, dockerClient DockerClient, project string) (int, error) {
	containers, err := ListContainersByProject(ctx, dockerClient, project)
	if err != nil {
		return 0, &ComposeError{Op: "stop", Project: project, Err: err}
	}

	stopped := 0
	for _, ctr := range containers {
		if !ctr.Running() {
			continue
		}
		if err := dockerClient.ContainerStop(ctx, ctr.ID, container.StopOptions{}); err != nil {
			return stopped, &ComposeError{Op: "stop", Project: project, Err: err}
		}
		stopped++
	}
	return stopped, nil
}
