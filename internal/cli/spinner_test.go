package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "working")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	// Stop must be idempotent-safe for the happy path: the channel is
	// closed exactly once, and the goroutine has exited.
	select {
	case <-s.stopped:
	default:
		t.Error("spinner goroutine still running after Stop")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "working")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop on context cancellation")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "first message")
	s.Start()
	s.SetMessage("second")
	s.SetMessage("a much longer third message")
	s.Stop()
}
