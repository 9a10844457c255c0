package enginehost

import (
	"context"
	"fmt"
	"sync"

	"github.com/ajoly/enginehost/filter"
	"github.com/ajoly/enginehost/retry"
)

// AdapterFunc builds a protocol adapter around a connected engine
// process. options is the protocol options block with engine-managed
// names already stripped.
type AdapterFunc func(proc Proc, options map[string]any) (Engine, error)

var (
	adaptersMu sync.RWMutex
	adapters   = make(map[Protocol]AdapterFunc)
)

// RegisterAdapter makes an adapter constructor available to New under
// the given protocol. Adapter packages register themselves from init,
// so a blank import is enough to enable a protocol:
//
//	import _ "github.com/ajoly/enginehost/engine/uci"
//
// Registering nil or the same protocol twice panics.
func RegisterAdapter(p Protocol, fn AdapterFunc) {
	adaptersMu.Lock()
	defer adaptersMu.Unlock()
	if fn == nil {
		panic("enginehost: RegisterAdapter with nil AdapterFunc")
	}
	if _, dup := adapters[p]; dup {
		panic("enginehost: RegisterAdapter called twice for protocol " + string(p))
	}
	adapters[p] = fn
}

func adapterFor(p Protocol) (AdapterFunc, bool) {
	adaptersMu.RLock()
	defer adaptersMu.RUnlock()
	fn, ok := adapters[p]
	return fn, ok
}

// New builds the adapter the configuration asks for: it resolves the
// protocol, strips engine-managed options, assembles the launch command,
// dials the engine, and hands the connected process to the registered
// adapter constructor.
//
// The whole construction sequence is retried with exponential backoff
// under CreateOptions.Retry (retry.DefaultPolicy unless WithRetryPolicy
// overrides it). Retries apply to construction only; once New returns an
// Engine, individual searches are never retried.
func New(ctx context.Context, dialer Dialer, cfg Config, opts ...Option) (Engine, error) {
	if dialer == nil {
		return nil, fmt.Errorf("enginehost: nil dialer")
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	protocol := ParseProtocol(cfg.Engine.Protocol)
	build, ok := adapterFor(protocol)
	if !ok {
		return nil, fmt.Errorf("enginehost: no adapter registered for protocol %q", protocol)
	}

	co := ResolveOptions(opts...)
	var eng Engine
	err := retry.Do(ctx, co.Retry, func() error {
		options := filter.RemoveManaged(cfg.Engine.ProtocolOptions())
		cmd, err := BuildCommand(cfg.Engine)
		if err != nil {
			return err
		}
		proc, err := dialer.Dial(ctx, protocol, cmd)
		if err != nil {
			return err
		}
		built, err := build(proc, options)
		if err != nil {
			// The process came up but the adapter rejected it;
			// release it before the next attempt spawns another.
			_ = proc.Quit()
			return err
		}
		eng = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eng, nil
}
