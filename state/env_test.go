package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestEnvFromContext(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}

	// same instance on repeated lookups
	if EnvFromContext(ctx) != env {
		t.Error("EnvFromContext() returned different instances for the same context")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnvFromContext() on plain context should panic")
		}
	}()
	EnvFromContext(context.Background())
}

func TestUptime(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	time.Sleep(10 * time.Millisecond)
	if env.Uptime() <= 0 {
		t.Error("Uptime() should be positive")
	}
}

func TestRedirectStdLog(t *testing.T) {
	env := newLocalEnv()

	// no logger - must not panic
	env.RedirectStdLog()
	env.RestoreStdLog()

	env.Log = zap.NewNop()
	env.RedirectStdLog()
	env.RestoreStdLog()
}
