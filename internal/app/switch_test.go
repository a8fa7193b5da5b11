// Where: internal/app/switch_test.go
// What: Tests for the switch command.
// Why: Mutual exclusion, checkout ordering, and failure exits.
package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ucmctl/ucm/internal/envspec"
)

func TestSwitchStopsOtherEnvironmentsAndStartsTarget(t *testing.T) {
	root := testRepo(t)
	runner := &fakeRunner{}
	docker := &fakeDocker{}
	docker.containers = append(docker.containers, runningContainer("p1", "ucm-prod", "backend"))

	out := &bytes.Buffer{}
	cli := CLI{Switch: SwitchCmd{Target: "staging"}}

	code := runSwitch(cli, testDeps(t, root, runner, docker), out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}

	if !reflect.DeepEqual(docker.stopped, []string{"p1"}) {
		t.Fatalf("expected prod container stopped, got %v", docker.stopped)
	}

	upCalls := runner.callsFor("docker")
	if len(upCalls) != 1 {
		t.Fatalf("expected one engine call, got %d", len(upCalls))
	}
	wantArgs := []string{
		"compose", "-p", "ucm-staging",
		"-f", filepath.Join(root, "docker-compose.staging.yml"),
		"up", "-d",
	}
	if !reflect.DeepEqual(upCalls[0].args, wantArgs) {
		t.Fatalf("unexpected up args: %v", upCalls[0].args)
	}
	wantEnv := []string{
		"UCM_BACKEND_PORT=7610",
		"UCM_CACHE_PORT=7630",
		"UCM_FRONTEND_PORT=7600",
	}
	if !reflect.DeepEqual(upCalls[0].env, wantEnv) {
		t.Fatalf("unexpected port env: %v", upCalls[0].env)
	}
}

func TestSwitchChecksOutBranchBeforeStarting(t *testing.T) {
	root := testRepo(t)
	runner := &fakeRunner{}
	docker := &fakeDocker{}
	out := &bytes.Buffer{}

	code := runSwitch(CLI{Switch: SwitchCmd{Target: "prod"}}, testDeps(t, root, runner, docker), out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}

	if len(runner.calls) < 2 {
		t.Fatalf("expected checkout then up, got %d calls", len(runner.calls))
	}
	first := runner.calls[0]
	if first.name != "git" || !reflect.DeepEqual(first.args, []string{"checkout", "main"}) {
		t.Fatalf("expected git checkout main first, got %s %v", first.name, first.args)
	}
	if runner.calls[len(runner.calls)-1].name != "docker" {
		t.Fatal("expected engine call after checkout")
	}
}

func TestSwitchLocalSkipsCheckout(t *testing.T) {
	root := testRepo(t)
	runner := &fakeRunner{}
	out := &bytes.Buffer{}

	code := runSwitch(CLI{Switch: SwitchCmd{Target: "local"}}, testDeps(t, root, runner, &fakeDocker{}), out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if calls := runner.callsFor("git"); len(calls) != 0 {
		t.Fatalf("expected no git calls for local, got %v", calls)
	}
}

func TestSwitchProceedsWhenCheckoutFails(t *testing.T) {
	root := testRepo(t)
	runner := &fakeRunner{
		errFor: map[string]error{"git": errors.New("exit status 1")},
		output: []byte("error: local changes\n"),
	}
	out := &bytes.Buffer{}

	code := runSwitch(CLI{Switch: SwitchCmd{Target: "staging"}}, testDeps(t, root, runner, &fakeDocker{}), out)
	if code != 0 {
		t.Fatalf("checkout failure must not fail the switch, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "staying on current branch") {
		t.Fatalf("expected checkout warning, got: %s", out.String())
	}
	if len(runner.callsFor("docker")) != 1 {
		t.Fatal("expected the environment to start anyway")
	}
}

func TestSwitchRejectsUnknownEnvironmentBeforeSideEffects(t *testing.T) {
	root := testRepo(t)
	runner := &fakeRunner{}
	docker := &fakeDocker{}
	docker.containers = append(docker.containers, runningContainer("p1", "ucm-prod", "backend"))
	out := &bytes.Buffer{}

	code := runSwitch(CLI{Switch: SwitchCmd{Target: "qa"}}, testDeps(t, root, runner, docker), out)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no exec calls, got %v", runner.calls)
	}
	if len(docker.stopped) != 0 {
		t.Fatalf("expected nothing stopped, got %v", docker.stopped)
	}
}

func TestSwitchFailsWhenComposeFileMissing(t *testing.T) {
	root := testRepo(t)
	if err := os.Remove(filepath.Join(root, "docker-compose.local.yml")); err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{}
	out := &bytes.Buffer{}

	code := runSwitch(CLI{Switch: SwitchCmd{Target: "local"}}, testDeps(t, root, runner, &fakeDocker{}), out)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d: %s", code, out.String())
	}
	if len(runner.callsFor("docker")) != 0 {
		t.Fatal("expected no engine call for a missing compose file")
	}
}

func TestSwitchDebugRoundTrip(t *testing.T) {
	root := testRepo(t)
	home := t.TempDir()
	t.Setenv("UCM_HOME", home)
	overlayPath := filepath.Join(home, "local", envspec.DebugOverlayName)

	runner := &fakeRunner{}
	deps := testDeps(t, root, runner, &fakeDocker{})

	for i, debug := range []bool{true, false, true} {
		cli := CLI{Switch: SwitchCmd{Target: "local", Debug: debug}}
		if code := runSwitch(cli, deps, &bytes.Buffer{}); code != 0 {
			t.Fatalf("switch %d failed with %d", i, code)
		}
	}

	upCalls := runner.callsFor("docker")
	if len(upCalls) != 3 {
		t.Fatalf("expected three engine calls, got %d", len(upCalls))
	}

	withOverlay := func(call runnerCall) bool {
		return strings.Contains(strings.Join(call.args, " "), "-f "+overlayPath)
	}
	if !withOverlay(upCalls[0]) {
		t.Fatalf("first debug switch missing overlay: %v", upCalls[0].args)
	}
	if withOverlay(upCalls[1]) {
		t.Fatalf("plain switch must not mount sources: %v", upCalls[1].args)
	}
	if !withOverlay(upCalls[2]) {
		t.Fatalf("returning to debug must mount sources again: %v", upCalls[2].args)
	}
	if _, err := os.Stat(overlayPath); err != nil {
		t.Fatalf("overlay missing after round trip: %v", err)
	}
}

func TestStatusReportsNoneActiveAfterFailedSwitch(t *testing.T) {
	root := testRepo(t)
	docker := &fakeDocker{}
	docker.containers = append(docker.containers, runningContainer("p1", "ucm-prod", "backend"))
	runner := &fakeRunner{errFor: map[string]error{"docker": errors.New("port is already allocated")}}
	deps := testDeps(t, root, runner, docker)

	if code := runSwitch(CLI{Switch: SwitchCmd{Target: "staging"}}, deps, &bytes.Buffer{}); code != 1 {
		t.Fatal("expected the switch to fail")
	}

	out := &bytes.Buffer{}
	if code := runStatus(CLI{}, deps, out); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "no environment is active") {
		t.Fatalf("expected none-active after failed switch, got: %s", out.String())
	}
}

func TestSwitchDebugAddsOverlayFile(t *testing.T) {
	root := testRepo(t)
	home := t.TempDir()
	t.Setenv("UCM_HOME", home)

	runner := &fakeRunner{}
	out := &bytes.Buffer{}
	cli := CLI{Switch: SwitchCmd{Target: "staging", Debug: true}}

	code := runSwitch(cli, testDeps(t, root, runner, &fakeDocker{}), out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}

	overlayPath := filepath.Join(home, "staging", envspec.DebugOverlayName)
	if _, err := os.Stat(overlayPath); err != nil {
		t.Fatalf("overlay not generated: %v", err)
	}

	upCalls := runner.callsFor("docker")
	if len(upCalls) != 1 {
		t.Fatalf("expected one engine call, got %d", len(upCalls))
	}
	joined := strings.Join(upCalls[0].args, " ")
	if !strings.Contains(joined, "-f "+overlayPath) {
		t.Fatalf("expected overlay in compose file set: %s", joined)
	}
}
