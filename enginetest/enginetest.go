package enginetest

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/notnil/chess"

	"github.com/ajoly/enginehost"
)

// Factory builds the adapter under test around proc. It is called once
// per subtest so every case starts from fresh state.
type Factory func(t *testing.T, proc *Proc) enginehost.Engine

// RunEngineTests exercises the behavior every protocol adapter must
// share: identity passthrough, stats extraction over present keys only,
// the no-move condition, stop during an in-flight search, and process
// release on quit.
func RunEngineTests(t *testing.T, factory Factory) {
	t.Helper()

	t.Run("Name", func(t *testing.T) {
		proc := &Proc{Identity: map[string]string{"name": "Fakefish 1"}}
		eng := factory(t, proc)

		if got := eng.Name(); got != "Fakefish 1" {
			t.Errorf("Name() = %q, want %q", got, "Fakefish 1")
		}
	})

	t.Run("NameAbsent", func(t *testing.T) {
		proc := &Proc{}
		eng := factory(t, proc)

		if got := eng.Name(); got != "" {
			t.Errorf("Name() = %q, want empty", got)
		}
	})

	t.Run("StatsOmitAbsentKeys", func(t *testing.T) {
		proc := &Proc{
			Moves: []string{"e2e4"},
			Info:  enginehost.Info{"depth": 7, "score": "cp 12"},
		}
		eng := factory(t, proc)

		if _, err := eng.FirstSearch(context.Background(), chess.StartingPosition(), 1000); err != nil {
			t.Fatalf("FirstSearch() error = %v", err)
		}

		want := []string{"depth: 7", "score: cp 12"}
		if got := eng.Stats(); !reflect.DeepEqual(got, want) {
			t.Errorf("Stats() = %v, want %v", got, want)
		}

		var buf bytes.Buffer
		eng.WriteStats(&buf)
		wantOut := "    depth: 7\n    score: cp 12\n"
		if buf.String() != wantOut {
			t.Errorf("WriteStats() = %q, want %q", buf.String(), wantOut)
		}
	})

	t.Run("StatsBeforeAnySearch", func(t *testing.T) {
		proc := &Proc{}
		eng := factory(t, proc)

		if got := eng.Stats(); len(got) != 0 {
			t.Errorf("Stats() = %v, want empty", got)
		}
	})

	t.Run("NoMove", func(t *testing.T) {
		proc := &Proc{}
		eng := factory(t, proc)

		_, err := eng.FirstSearch(context.Background(), chess.StartingPosition(), 1000)
		if !errors.Is(err, enginehost.ErrNoMove) {
			t.Fatalf("FirstSearch() error = %v, want ErrNoMove", err)
		}
	})

	t.Run("StopInterruptsSearch", func(t *testing.T) {
		proc := &Proc{Block: true, Moves: []string{"e2e4"}}
		eng := factory(t, proc)

		type searchOut struct {
			move *chess.Move
			err  error
		}
		outc := make(chan searchOut, 1)
		go func() {
			mv, err := eng.FirstSearch(context.Background(), chess.StartingPosition(), 60_000)
			outc <- searchOut{mv, err}
		}()

		waitBlocked(t, proc)
		if err := eng.Stop(); err != nil {
			t.Fatalf("Stop() error = %v", err)
		}

		select {
		case out := <-outc:
			if out.err != nil {
				t.Fatalf("FirstSearch() error = %v", out.err)
			}
			if got := out.move.String(); got != "e2e4" {
				t.Errorf("interim move = %q, want %q", got, "e2e4")
			}
		case <-time.After(5 * time.Second):
			t.Fatal("search did not return after stop")
		}
	})

	t.Run("QuitReleasesProcess", func(t *testing.T) {
		proc := &Proc{}
		eng := factory(t, proc)

		if err := eng.Quit(); err != nil {
			t.Fatalf("Quit() error = %v", err)
		}
		if got := proc.QuitCalls(); got != 1 {
			t.Errorf("process quit %d times, want 1", got)
		}
	})
}

// waitBlocked spins until proc has a Play parked on its stop channel.
func waitBlocked(t *testing.T, proc *Proc) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !proc.Blocked() {
		if time.Now().After(deadline) {
			t.Fatal("search never reached the engine")
		}
		time.Sleep(time.Millisecond)
	}
}
