//go:build !windows

package lineproc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/ajoly/enginehost"
)

// signalProcess sends sig to a process, returning nil if the process
// has already exited (os.ErrProcessDone).
func signalProcess(proc *os.Process, sig os.Signal) error {
	err := proc.Signal(sig)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// Runner owns one engine subprocess and its pipes. The command is
// write-once: an engine lives for the whole game, so there is no
// respawn path.
type Runner struct {
	opts Options
	cmd  *exec.Cmd

	mu    sync.Mutex
	stdin io.WriteCloser

	lines chan string

	cancelRead context.CancelFunc
	cmdDone    chan struct{} // buffered(1), signaled by the readLoop defer
	done       chan struct{} // closed exactly once by finish()
	termErr    error         // set by finish(), read after done closes

	stopping   atomic.Bool
	stopOnce   sync.Once
	finishOnce sync.Once
}

// Start launches cmd with stdin and stdout pipes attached and begins
// pumping stdout into the line channel. The command must not have its
// stdin or stdout already claimed.
func Start(cmd *exec.Cmd, opts ...Option) (*Runner, error) {
	o := resolveOptions(opts...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("lineproc: stdout pipe: %w", err)
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("lineproc: stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", enginehost.ErrUnavailable, cmd.Path, err)
	}

	readCtx, cancelRead := context.WithCancel(context.Background())
	r := &Runner{
		opts:       o,
		cmd:        cmd,
		stdin:      stdin,
		lines:      make(chan string, o.LineBuffer),
		cancelRead: cancelRead,
		cmdDone:    make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	go r.readLoop(readCtx, stdout)
	return r, nil
}

// Lines returns the channel of engine stdout lines. It closes when the
// subprocess exits.
func (r *Runner) Lines() <-chan string {
	return r.lines
}

// Send writes one command line to the engine's stdin.
func (r *Runner) Send(line string) error {
	if r.stopping.Load() {
		return enginehost.ErrTerminated
	}
	select {
	case <-r.done:
		return enginehost.ErrTerminated
	default:
	}

	r.mu.Lock()
	stdin := r.stdin
	r.mu.Unlock()
	if stdin == nil {
		return enginehost.ErrTerminated
	}
	if _, err := io.WriteString(stdin, line+"\n"); err != nil {
		return fmt.Errorf("lineproc: write stdin: %w", err)
	}
	return nil
}

// Stop terminates the subprocess: it closes stdin (most engines exit on
// EOF), sends SIGTERM, and escalates to SIGKILL after the grace period.
// Safe to call multiple times. Blocks until the line channel has closed
// and returns the terminal error, ErrTerminated for an intentional stop.
func (r *Runner) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		r.stopping.Store(true)

		r.mu.Lock()
		if r.stdin != nil {
			_ = r.stdin.Close() // Best-effort: pipe may already be closed.
		}
		r.mu.Unlock()

		// Unblock readLoop if stuck on channel send.
		r.cancelRead()

		_ = signalProcess(r.cmd.Process, syscall.SIGTERM)

		select {
		case <-r.cmdDone:
		case <-time.After(r.opts.GracePeriod):
			_ = signalProcess(r.cmd.Process, os.Kill)
			<-r.cmdDone
		case <-ctx.Done():
			_ = signalProcess(r.cmd.Process, os.Kill)
			<-r.cmdDone
		}
	})

	<-r.done
	return r.termErr
}

// Wait blocks until the subprocess exits and returns the terminal error:
// nil for a clean exit, an ExitError for a non-zero one, ErrTerminated
// after an intentional Stop.
func (r *Runner) Wait() error {
	<-r.done
	return r.termErr
}

// Err returns the terminal error, or nil while the engine is running.
func (r *Runner) Err() error {
	select {
	case <-r.done:
		return r.termErr
	default:
		return nil
	}
}

// finish sets the terminal error and closes the lines+done channels.
// Called exactly once via sync.Once.
func (r *Runner) finish(err error) {
	r.finishOnce.Do(func() {
		r.termErr = err
		close(r.lines)
		close(r.done)
	})
}

// readLoop pumps subprocess stdout until EOF, then reaps the process
// and publishes the terminal error.
func (r *Runner) readLoop(ctx context.Context, stdout io.ReadCloser) {
	scanErr := r.scanLines(ctx, stdout)
	if scanErr != nil {
		// The pump is broken but the engine may keep running; kill it
		// so the Wait below cannot block forever.
		_ = signalProcess(r.cmd.Process, os.Kill)
	}

	waitErr := r.cmd.Wait()
	switch {
	case scanErr != nil:
		waitErr = fmt.Errorf("lineproc: scanner: %w", scanErr)
	default:
		waitErr = wrapExitError(waitErr)
	}
	if r.stopping.Load() {
		waitErr = enginehost.ErrTerminated
	}

	r.finish(waitErr)

	// Always signal cmdDone so Stop can proceed.
	r.cmdDone <- struct{}{}
}

// scanLines reads stdout line by line into the line channel.
func (r *Runner) scanLines(ctx context.Context, stdout io.Reader) error {
	scanner := bufio.NewScanner(stdout)
	initCap := min(4096, r.opts.ScannerBuffer)
	scanner.Buffer(make([]byte, 0, initCap), r.opts.ScannerBuffer)

	for scanner.Scan() {
		select {
		case r.lines <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}
	return scanner.Err()
}

// wrapExitError converts a non-zero *exec.ExitError to *enginehost.ExitError.
// nil → nil, non-ExitError → passthrough, code 0 → nil (clean exit).
// Preserves the error chain via ExitError.Unwrap.
func wrapExitError(err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return err
	}
	code := ee.ExitCode()
	if code == 0 {
		return nil
	}
	return &enginehost.ExitError{Code: code, Err: err}
}
