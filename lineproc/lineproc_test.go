//go:build !windows

package lineproc_test

import (
	"bufio"
	"context"
	"errors"
	"os/exec"
	"reflect"
	"testing"
	"time"

	"github.com/ajoly/enginehost"
	"github.com/ajoly/enginehost/lineproc"
)

// collect drains the line channel until it closes.
func collect(t *testing.T, r *lineproc.Runner) []string {
	t.Helper()
	var got []string
	timeout := time.After(10 * time.Second)
	for {
		select {
		case line, ok := <-r.Lines():
			if !ok {
				return got
			}
			got = append(got, line)
		case <-timeout:
			t.Fatalf("lines channel never closed; got %v", got)
		}
	}
}

// waitWithin bounds Wait so a lifecycle bug fails the test instead of
// hanging it.
func waitWithin(t *testing.T, r *lineproc.Runner) error {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- r.Wait() }()
	select {
	case err := <-errc:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("runner never exited")
		return nil
	}
}

func TestStart_PumpsLines(t *testing.T) {
	r, err := lineproc.Start(exec.Command("sh", "-c", `printf 'id name Scriptfish\nuciok\n'`))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	want := []string{"id name Scriptfish", "uciok"}
	if got := collect(t, r); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
	if err := waitWithin(t, r); err != nil {
		t.Errorf("Wait() error = %v, want nil", err)
	}
}

func TestSend_ReachesStdin(t *testing.T) {
	r, err := lineproc.Start(exec.Command("cat"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := r.Send("hello"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	select {
	case line, ok := <-r.Lines():
		if !ok {
			t.Fatal("lines channel closed before the echo arrived")
		}
		if line != "hello" {
			t.Errorf("line = %q, want hello", line)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("echo line never arrived")
	}

	if err := r.Stop(context.Background()); !errors.Is(err, enginehost.ErrTerminated) {
		t.Errorf("Stop() error = %v, want ErrTerminated", err)
	}
}

func TestWait_CleanExit(t *testing.T) {
	r, err := lineproc.Start(exec.Command("true"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := waitWithin(t, r); err != nil {
		t.Errorf("Wait() error = %v, want nil", err)
	}
}

func TestWait_NonZeroExit(t *testing.T) {
	r, err := lineproc.Start(exec.Command("sh", "-c", "exit 3"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	werr := waitWithin(t, r)
	if code, ok := enginehost.ExitCode(werr); !ok || code != 3 {
		t.Errorf("ExitCode(%v) = (%d, %v), want (3, true)", werr, code, ok)
	}
}

func TestStop_Idempotent(t *testing.T) {
	r, err := lineproc.Start(exec.Command("cat"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := r.Stop(context.Background()); !errors.Is(err, enginehost.ErrTerminated) {
			t.Errorf("Stop() #%d error = %v, want ErrTerminated", i+1, err)
		}
	}
}

func TestSend_AfterStop(t *testing.T) {
	r, err := lineproc.Start(exec.Command("cat"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := r.Stop(context.Background()); !errors.Is(err, enginehost.ErrTerminated) {
		t.Fatalf("Stop() error = %v", err)
	}

	if err := r.Send("go"); !errors.Is(err, enginehost.ErrTerminated) {
		t.Errorf("Send() error = %v, want ErrTerminated", err)
	}
}

func TestErr_TracksLifecycle(t *testing.T) {
	r, err := lineproc.Start(exec.Command("cat"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if got := r.Err(); got != nil {
		t.Errorf("Err() while running = %v, want nil", got)
	}
	if err := r.Stop(context.Background()); !errors.Is(err, enginehost.ErrTerminated) {
		t.Fatalf("Stop() error = %v", err)
	}
	if got := r.Err(); !errors.Is(got, enginehost.ErrTerminated) {
		t.Errorf("Err() after stop = %v, want ErrTerminated", got)
	}
}

func TestScannerBufferCap(t *testing.T) {
	cmd := exec.Command("sh", "-c", `head -c 4096 /dev/zero | tr '\0' 'A'`)
	r, err := lineproc.Start(cmd, lineproc.WithScannerBuffer(512))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	werr := waitWithin(t, r)
	if !errors.Is(werr, bufio.ErrTooLong) {
		t.Errorf("Wait() error = %v, want bufio.ErrTooLong", werr)
	}
}
