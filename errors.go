package enginehost

import (
	"errors"
	"strconv"
)

// Sentinel errors for engine operations.
var (
	// ErrUnavailable indicates the engine cannot start
	// (binary not found, handshake rejected, resource exhaustion).
	// New retries this class of failure before giving up.
	ErrUnavailable = errors.New("enginehost: engine unavailable")

	// ErrTerminated indicates the engine process died mid-session
	// (process killed, pipe closed). The session is over; callers
	// reconnect or abort.
	ErrTerminated = errors.New("enginehost: engine terminated")

	// ErrNoMove indicates a search finished without producing a move.
	// Unlike ErrTerminated this is a game-level condition: the process
	// is still alive, it just has nothing to play.
	ErrNoMove = errors.New("enginehost: engine returned no move")
)

// ExitError represents an engine process that exited with a non-zero
// status. Wraps the underlying error to preserve the error chain —
// consumers can errors.As to *exec.ExitError for OS-level detail
// (signal info, etc.).
//
// Code semantics: positive = exit status, negative (-1) = signal-killed.
//
// Engine processes produce ExitError only for natural exits. Intentional
// shutdown produces ErrTerminated instead.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "enginehost: exit status " + strconv.Itoa(e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode extracts the exit code from an error chain containing *ExitError.
// Returns (0, false) if the error does not contain an ExitError.
// Convenience wrapper around errors.As — equivalent to:
//
//	var exitErr *ExitError
//	if errors.As(err, &exitErr) { return exitErr.Code, true }
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
