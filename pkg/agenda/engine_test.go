package agenda

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewValidatesInput(t *testing.T) {
	noop := func(ctx context.Context) error { return nil }

	if _, err := New("", noop); err == nil {
		t.Fatal("expected an empty expression to be rejected")
	}

	if _, err := New("@daily", nil); err == nil {
		t.Fatal("expected a nil job to be rejected")
	}

	if _, err := New("not a cron expression", noop); err == nil {
		t.Fatal("expected an invalid expression to be rejected")
	}

	if _, err := New("@every 1h", noop); err != nil {
		t.Fatalf("expected a descriptor expression to be accepted, got %v", err)
	}

	if _, err := New("*/5 * * * *", noop); err != nil {
		t.Fatalf("expected a standard expression to be accepted, got %v", err)
	}
}

func TestEngineRunExecutesJob(t *testing.T) {
	var ran bool

	engine, err := New("@daily", func(ctx context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := engine.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !ran {
		t.Fatal("expected the job to run")
	}
}

func TestEngineRunAppliesTimeout(t *testing.T) {
	engine, err := New("@daily", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return errors.New("job outlived its timeout")
		}
	}, WithEngineJobTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := engine.Run(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected a deadline error, got %v", err)
	}
}

func TestEngineStartRejectsDoubleStart(t *testing.T) {
	engine, err := New("@every 1h", func(ctx context.Context) error { return nil })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer engine.Stop()

	if err := engine.Start(context.Background()); err == nil {
		t.Fatal("expected a second Start to fail")
	}
}

func TestEngineStopIsIdempotent(t *testing.T) {
	engine, err := New("@every 1h", func(ctx context.Context) error { return nil })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	engine.Stop()
	engine.Stop()
}
