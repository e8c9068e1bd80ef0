package runner

import (
	"context"
	"strings"
	"testing"

	"github.com/aam-007/syswiz/internal/catalog"
	"github.com/aam-007/syswiz/internal/command"
)

func intentFor(t *testing.T, argv []string, known map[int]string) *command.Intent {
	t.Helper()
	action := catalog.Action{
		ID:             "test-action",
		Title:          "Test",
		Description:    "test",
		Argv:           argv,
		KnownExitCodes: known,
	}
	in, err := command.Resolve(action, "", command.ResolveOptions{AsRoot: true})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return in
}

func TestRunSuccess(t *testing.T) {
	in := intentFor(t, []string{"/bin/sh", "-c", "echo hello; echo world"}, nil)

	var sink strings.Builder
	res, err := New().Run(context.Background(), in, &sink)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Outcome != OutcomeSuccess || res.ExitCode != 0 {
		t.Errorf("outcome = %v code = %d, want success/0", res.Outcome, res.ExitCode)
	}
	if !strings.Contains(res.Output, "hello") || !strings.Contains(res.Output, "world") {
		t.Errorf("captured output missing lines: %q", res.Output)
	}
	if sink.String() != res.Output {
		t.Errorf("streamed output %q differs from captured %q", sink.String(), res.Output)
	}
}

func TestRunKnownNonzero(t *testing.T) {
	in := intentFor(t, []string{"/bin/sh", "-c", "exit 100"}, map[int]string{
		100: "updates are available",
	})

	res, err := New().Run(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Outcome != OutcomeKnownNonzero {
		t.Errorf("outcome = %v, want known_nonzero", res.Outcome)
	}
	if res.ExitCode != 100 {
		t.Errorf("exit code = %d, want 100", res.ExitCode)
	}
	if res.Message != "updates are available" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestRunUnmappedNonzeroIsFailure(t *testing.T) {
	in := intentFor(t, []string{"/bin/sh", "-c", "exit 1"}, nil)

	res, err := New().Run(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Outcome != OutcomeFailure {
		t.Errorf("outcome = %v, want failure", res.Outcome)
	}
	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
}

func TestRunMergesStderr(t *testing.T) {
	in := intentFor(t, []string{"/bin/sh", "-c", "echo out; echo err 1>&2"}, nil)

	res, err := New().Run(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(res.Output, "out") || !strings.Contains(res.Output, "err") {
		t.Errorf("stderr not merged into output: %q", res.Output)
	}
}

func TestRunCapturesFullOutputOfFastExit(t *testing.T) {
	// A command that writes a large burst and exits immediately must have
	// every line captured; the pipe is read to EOF before Wait closes it.
	in := intentFor(t, []string{"/bin/sh", "-c", "seq 1 200000"}, nil)

	res, err := New().Run(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("Run returned error on a successful command: %v", err)
	}
	if res.Outcome != OutcomeSuccess || res.ExitCode != 0 {
		t.Fatalf("outcome = %v code = %d, want success/0", res.Outcome, res.ExitCode)
	}
	lines := strings.Split(strings.TrimRight(res.Output, "\n"), "\n")
	if len(lines) != 200000 {
		t.Fatalf("captured %d lines, want 200000", len(lines))
	}
	if lines[len(lines)-1] != "200000" {
		t.Errorf("last line = %q, want 200000", lines[len(lines)-1])
	}
}

func TestRunMissingBinary(t *testing.T) {
	in := intentFor(t, []string{"/no/such/binary-xyz"}, nil)

	_, err := New().Run(context.Background(), in, nil)
	if err == nil {
		t.Fatal("expected an error for a missing binary")
	}
}

func TestRunNoShellReinterpretation(t *testing.T) {
	// The metacharacter-laden argument must reach the process as a single
	// literal token, not be split or expanded by a shell.
	in := intentFor(t, []string{"/bin/echo", "a;b|c$d"}, nil)

	res, err := New().Run(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.TrimSpace(res.Output) != "a;b|c$d" {
		t.Errorf("argument was reinterpreted: %q", res.Output)
	}
}
