package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf))

	l.Info("sieved",
		String("mode", "range"),
		Int("args", 2),
		Uint64("start", 18446744073709551615),
		Bool("ok", true),
		Duration("elapsed", time.Second),
		Err(errors.New("boom")),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if got["message"] != "sieved" || got["level"] != "info" {
		t.Fatalf("unexpected envelope: %v", got)
	}
	if got["mode"] != "range" || got["ok"] != true || got["error"] != "boom" {
		t.Fatalf("unexpected fields: %v", got)
	}
	if _, ok := got["start"]; !ok {
		t.Fatalf("missing start field: %v", got)
	}
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	l.Warn("shown")
	if buf.Len() == 0 {
		t.Fatalf("expected warn output")
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x", Err(errors.New("ignored")))
}
