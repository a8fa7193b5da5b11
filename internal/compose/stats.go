// Where: internal/compose/stats.go
// What: Container resource usage sampling.
// Why: Status reports CPU%/memory per container as the engine sees it.
package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-units"
)

// statsSampleInterval separates the two usage samples a CPU percentage
// is computed from.
const statsSampleInterval = 150 * time.Millisecond

// ContainerStats samples container usage twice and returns formatted
// CPU percentage and memory usage. One-shot stats carry no precpu
// frame, so the instantaneous percentage comes from the delta between
// our own two samples.
func ContainerStats(ctx context.Context, dockerClient DockerClient, containerID string) (cpu, mem string, err error) {
	first, err := sampleStats(ctx, dockerClient, containerID)
	if err != nil {
		return "", "", err
	}

	select {
	case <-ctx.Done():
		return "", "", ctx.Err()
	case <-time.After(statsSampleInterval):
	}

	second, err := sampleStats(ctx, dockerClient, containerID)
	if err != nil {
		return "", "", err
	}

	return formatCPUPerc(first, second), formatMemUsage(second), nil
}

func sampleStats(ctx context.Context, dockerClient DockerClient, containerID string) (container.StatsResponse, error) {
	reader, err := dockerClient.ContainerStatsOneShot(ctx, containerID)
	if err != nil {
		return container.StatsResponse{}, err
	}
	defer reader.Body.Close()

	var stats container.StatsResponse
	if err := json.NewDecoder(reader.Body).Decode(&stats); err != nil {
		return container.StatsResponse{}, err
	}
	return stats, nil
}

// formatCPUPerc mirrors the docker CLI calculation: the container's CPU
// delta over the system delta between two samples, scaled by online CPUs.
func formatCPUPerc(prev, cur container.StatsResponse) string {
	cpuDelta := float64(cur.CPUStats.CPUUsage.TotalUsage) - float64(prev.CPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(cur.CPUStats.SystemUsage) - float64(prev.CPUStats.SystemUsage)

	online := float64(cur.CPUStats.OnlineCPUs)
	if online == 0 {
		online = float64(len(cur.CPUStats.CPUUsage.PercpuUsage))
	}

	percent := 0.0
	if systemDelta > 0 && cpuDelta >= 0 {
		percent = cpuDelta / systemDelta * online * 100.0
	}
	return fmt.Sprintf("%.1f%%", percent)
}

func formatMemUsage(stats container.StatsResponse) string {
	usage := units.BytesSize(float64(stats.MemoryStats.Usage))
	if stats.MemoryStats.Limit == 0 {
		return usage
	}
	return fmt.Sprintf("%s / %s", usage, units.BytesSize(float64(stats.MemoryStats.Limit)))
}
