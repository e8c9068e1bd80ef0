// Package runner executes confirmed intents and classifies their exit status.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/aam-007/syswiz/internal/command"
)

// Outcome classifies how an execution ended.
type Outcome string

const (
	// OutcomeSuccess means the command exited zero.
	OutcomeSuccess Outcome = "success"
	// OutcomeKnownNonzero means the command exited with an action-specific
	// code that signals a condition, not a failure (e.g. "updates available").
	OutcomeKnownNonzero Outcome = "known_nonzero"
	// OutcomeFailure means the command exited with an unrecognized
	// nonzero code.
	OutcomeFailure Outcome = "failure"
)

// Result reports a completed execution. It is only ever produced from an
// intent that passed validation and was explicitly confirmed.
type Result struct {
	ExitCode int
	Outcome  Outcome
	// Message is the human explanation for known nonzero codes.
	Message string
	// Output is the captured combined stdout/stderr.
	Output string
	// Duration is the wall-clock execution time.
	Duration time.Duration
}

// Runner executes resolved argument vectors. At most one execution is in
// flight at a time; the Run call blocks until the process exits.
type Runner struct {
	// Env is the environment for spawned processes. Nil inherits the
	// caller's environment.
	Env []string
}

// New returns a Runner.
func New() *Runner {
	return &Runner{}
}

// Run executes the intent's argument vector directly, with no shell in
// between, streaming combined stdout/stderr line by line to sink as the
// process produces it. sink may be nil. There is no cancellation of a
// started process beyond ctx applying to process start; an interrupted
// package transaction is worse than a slow one.
func (r *Runner) Run(ctx context.Context, in *command.Intent, sink io.Writer) (*Result, error) {
	argv := in.ExecArgv()
	if len(argv) == 0 {
		return nil, fmt.Errorf("intent has empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = r.Env
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	// The goroutine streams lines to the sink while the process runs.
	// Wait closes the pipe, so the read must hit EOF before Wait is
	// called or tail output is lost.
	var captured strings.Builder
	done := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			captured.WriteString(line)
			captured.WriteByte('\n')
			if sink != nil {
				fmt.Fprintln(sink, line)
			}
		}
		done <- scanner.Err()
	}()

	readErr := <-done
	waitErr := cmd.Wait()
	if readErr != nil && waitErr == nil {
		waitErr = fmt.Errorf("reading output: %w", readErr)
	}

	res := &Result{
		Output:   captured.String(),
		Duration: time.Since(start),
	}

	if waitErr == nil {
		res.ExitCode = 0
		res.Outcome = OutcomeSuccess
		return res, nil
	}

	exitErr, ok := waitErr.(*exec.ExitError)
	if !ok {
		return res, waitErr
	}

	res.ExitCode = exitErr.ExitCode()
	if msg, known := in.Action.KnownExitCodes[res.ExitCode]; known {
		res.Outcome = OutcomeKnownNonzero
		res.Message = msg
	} else {
		res.Outcome = OutcomeFailure
	}
	return res, nil
}
