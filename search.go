package enginehost

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunSearch runs a blocking search with a stop watcher attached: if ctx
// ends before the search returns, Stop is sent so the engine yields its
// best-so-far move instead of thinking to the end of its limit.
//
// search is the closure issuing the blocking call (FirstSearch or
// SearchWithPonder) and capturing its results. Give that call a context
// with a broader lifetime than ctx: canceling the blocking call itself
// aborts the search outright and forfeits the interim move. RunSearch
// returns the search's own error; a stop triggered by ctx is not an
// error.
//
// This is the clock-expiry pattern: the game loop derives ctx from the
// remaining clock and calls Stop through the watcher rather than killing
// the process.
func RunSearch(ctx context.Context, eng Engine, search func() error) error {
	done := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		defer close(done)
		return search()
	})
	g.Go(func() error {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return eng.Stop()
		}
	})
	return g.Wait()
}
