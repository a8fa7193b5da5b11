// Where: internal/health/health.go
// What: Per-service health probing.
// Why: Answer health queries as values; a failed probe is a result, not an error.
package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ucmctl/ucm/internal/constants"
	"github.com/ucmctl/ucm/internal/envspec"
	"github.com/ucmctl/ucm/internal/envutil"
	"github.com/ucmctl/ucm/internal/state"
)

// Status is the per-service health outcome.
type Status string

const (
	StatusHealthy     Status = "healthy"
	StatusUnhealthy   Status = "unhealthy"
	StatusUnreachable Status = "unreachable"
	StatusNotRunning  Status = "not-running"
)

// ProbeTimeout bounds each HTTP health probe. Probes are never retried.
const ProbeTimeout = 2 * time.Second

// DefaultHost is where service ports are published.
const DefaultHost = "127.0.0.1"

// Result is one service's probed status with a short detail line.
type Result struct {
	Service string
	Status  Status
	Detail  string
}

// Prober issues HTTP health probes against an environment's port block.
type Prober struct {
	Client *http.Client
	Host   string
}

// NewProber returns a Prober with the fixed probe timeout. The probe
// host can be overridden via UCM_HEALTH_HOST.
func NewProber() *Prober {
	host := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixHealthHost))
	if host == "" {
		host = DefaultHost
	}
	return &Prober{
		Client: &http.Client{Timeout: ProbeTimeout},
		Host:   host,
	}
}

// Check probes every service against a single container-list snapshot.
// HTTP probes run concurrently but all report against the same instant;
// services without a health path take the engine's word for it.
func (p *Prober) Check(ctx context.Context, env envspec.Environment, services []envspec.Service, containers []state.ContainerInfo) []Result {
	running := make(map[string]bool, len(containers))
	for _, ctr := range containers {
		if ctr.Running() {
			running[ctr.Service] = true
		}
	}

	results := make([]Result, len(services))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, svc := range services {
		switch {
		case !running[svc.Name]:
			results[i] = Result{Service: svc.Name, Status: StatusNotRunning, Detail: "no running container"}
		case svc.HealthPath == "":
			results[i] = Result{Service: svc.Name, Status: StatusHealthy, Detail: "container running"}
		default:
			url := fmt.Sprintf("http://%s:%d%s", p.Host, env.ServicePort(svc), svc.HealthPath)
			group.Go(func() error {
				results[i] = p.probe(groupCtx, svc.Name, url)
				return nil
			})
		}
	}

	// Probe closures never return errors; Wait only orders completion.
	_ = group.Wait()
	return results
}

func (p *Prober) probe(ctx context.Context, service, url string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Service: service, Status: StatusUnreachable, Detail: err.Error()}
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return Result{Service: service, Status: StatusUnreachable, Detail: probeDetail(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Service: service, Status: StatusHealthy, Detail: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	return Result{Service: service, Status: StatusUnhealthy, Detail: fmt.Sprintf("HTTP %d", resp.StatusCode)}
}

// NotRunningAll returns the report for the none-active case: every
// known service is not-running and nothing is probed.
func NotRunningAll(services []envspec.Service) []Result {
	results := make([]Result, len(services))
	for i, svc := range services {
		results[i] = Result{Service: svc.Name, Status: StatusNotRunning, Detail: "no active environment"}
	}
	return results
}

func probeDetail(err error) string {
	msg := err.Error()
	// url.Error repeats the method and URL; keep the terse cause.
	if idx := strings.LastIndex(msg, ": "); idx >= 0 && idx+2 < len(msg) {
		return msg[idx+2:]
	}
	return msg
}
