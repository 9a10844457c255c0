package enginetest

import (
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/ajoly/enginehost"
)

// DialCall records one Dial invocation.
type DialCall struct {
	Protocol enginehost.Protocol
	Path     string
	Args     []string
}

// Dialer is a scripted enginehost.Dialer. The first FailTimes dials fail;
// the rest hand out Proc.
type Dialer struct {
	// Proc is returned by every successful Dial. When nil, the first
	// success installs a fresh zero Proc and reuses it.
	Proc *Proc

	// FailTimes makes that many leading dials return Err.
	FailTimes int

	// Err is the scripted failure. Nil falls back to a generic
	// unavailable error.
	Err error

	mu    sync.Mutex
	dials []DialCall
}

var _ enginehost.Dialer = (*Dialer)(nil)

// Dial records the call and follows the script.
func (d *Dialer) Dial(ctx context.Context, protocol enginehost.Protocol, cmd *exec.Cmd) (enginehost.Proc, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials = append(d.dials, DialCall{
		Protocol: protocol,
		Path:     cmd.Path,
		Args:     append([]string(nil), cmd.Args...),
	})
	if d.FailTimes > 0 {
		d.FailTimes--
		if d.Err != nil {
			return nil, d.Err
		}
		return nil, fmt.Errorf("%w: scripted dial failure", enginehost.ErrUnavailable)
	}
	if d.Proc == nil {
		d.Proc = &Proc{}
	}
	return d.Proc, nil
}

// Dials returns the recorded Dial calls in order.
func (d *Dialer) Dials() []DialCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]DialCall(nil), d.dials...)
}
