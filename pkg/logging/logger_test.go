// Copyright 2025 Certen Protocol

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := &Config{Level: slog.LevelDebug, Format: "json"}
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: cfg.Level})
	return &Logger{Logger: slog.New(handler), config: cfg}, &buf
}

func TestWithFieldsAttachesAttributes(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.WithComponent("signer").Info("signing", Field{Key: "leaf_index", Value: 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["component"] != "signer" {
		t.Fatalf("missing component field: %v", entry)
	}
	if entry["leaf_index"].(float64) != 3 {
		t.Fatalf("missing leaf_index field: %v", entry)
	}
}

func TestLogSignOperationMarksFailure(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.LogSignOperation(5, false, time.Millisecond)

	if !strings.Contains(buf.String(), `"success":false`) {
		t.Fatalf("expected success:false in log output, got %s", buf.String())
	}
}

func TestLogVerifyOperationIncludesFailureKind(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.LogVerifyOperation(false, "InvalidProof", time.Millisecond)

	if !strings.Contains(buf.String(), `"failure_kind":"InvalidProof"`) {
		t.Fatalf("expected failure_kind in log output, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q): got %v, want %v", name, got, want)
		}
	}

	if _, err := ParseLevel("bogus"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
