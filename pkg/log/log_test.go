package log_test

import (
	"context"
	"testing"

	"event-approval/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "console debug", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "json production", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "loud", Mode: "production", Encoding: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatalf("Init() returned nil logger")
			}
			ctx := log.WithFields(context.Background(), "request_id", "r-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Infof(ctx, "info %s", "x")
			l.Warn(ctx, "warn")
		})
	}
}

func TestWithFieldsAccumulates(t *testing.T) {
	ctx := log.WithFields(context.Background(), "a", 1)
	ctx = log.WithFields(ctx, "b", 2)

	got := log.Fields(ctx)
	if len(got) != 4 || got[0] != "a" || got[2] != "b" {
		t.Fatalf("Fields() = %v, want [a 1 b 2]", got)
	}

	// Nop logger must accept enriched contexts without panicking.
	log.NewNop().Infof(ctx, "hello")
}

func TestFieldsEmpty(t *testing.T) {
	if got := log.Fields(context.Background()); got != nil {
		t.Errorf("Fields() = %v, want nil", got)
	}
}
