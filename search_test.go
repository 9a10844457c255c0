package enginehost_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notnil/chess"

	"github.com/ajoly/enginehost"
	"github.com/ajoly/enginehost/engine/uci"
	"github.com/ajoly/enginehost/enginetest"
)

func blockedEngine(t *testing.T) (*enginetest.Proc, *uci.Engine) {
	t.Helper()
	proc := &enginetest.Proc{Block: true, Moves: []string{"e2e4"}}
	eng, err := uci.New(proc, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return proc, eng
}

// awaitBlocked polls until the scripted search is parked, then runs fn.
func awaitBlocked(proc *enginetest.Proc, fn func()) {
	go func() {
		deadline := time.Now().Add(5 * time.Second)
		for !proc.Blocked() && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		fn()
	}()
}

func TestRunSearch_ClockExpiryStopsEngine(t *testing.T) {
	proc, eng := blockedEngine(t)

	clock, expire := context.WithCancel(context.Background())
	defer expire()
	awaitBlocked(proc, expire)

	var move *chess.Move
	err := enginehost.RunSearch(clock, eng, func() error {
		mv, err := eng.FirstSearch(context.Background(), chess.StartingPosition(), 60_000)
		move = mv
		return err
	})
	if err != nil {
		t.Fatalf("RunSearch() error = %v", err)
	}
	if move == nil || move.String() != "e2e4" {
		t.Errorf("interim move = %v, want e2e4", move)
	}

	lines := proc.Lines()
	if len(lines) != 1 || lines[0] != "stop" {
		t.Errorf("lines = %v, want [stop]", lines)
	}
}

func TestRunSearch_CompletedSearchSendsNoStop(t *testing.T) {
	proc := &enginetest.Proc{Moves: []string{"e2e4"}}
	eng, err := uci.New(proc, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = enginehost.RunSearch(context.Background(), eng, func() error {
		_, err := eng.FirstSearch(context.Background(), chess.StartingPosition(), 100)
		return err
	})
	if err != nil {
		t.Fatalf("RunSearch() error = %v", err)
	}
	if lines := proc.Lines(); len(lines) != 0 {
		t.Errorf("lines = %v, want none", lines)
	}
}

func TestRunSearch_SearchErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	proc := &enginetest.Proc{PlayErr: boom}
	eng, err := uci.New(proc, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = enginehost.RunSearch(context.Background(), eng, func() error {
		_, err := eng.FirstSearch(context.Background(), chess.StartingPosition(), 100)
		return err
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunSearch() error = %v, want %v", err, boom)
	}
}

func TestRunSearch_HardAbortForfeitsMove(t *testing.T) {
	proc, eng := blockedEngine(t)

	search, abort := context.WithCancel(context.Background())
	defer abort()
	awaitBlocked(proc, abort)

	err := enginehost.RunSearch(context.Background(), eng, func() error {
		_, err := eng.FirstSearch(search, chess.StartingPosition(), 60_000)
		return err
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunSearch() error = %v, want context.Canceled", err)
	}
	if lines := proc.Lines(); len(lines) != 0 {
		t.Errorf("lines = %v, want none", lines)
	}
}
