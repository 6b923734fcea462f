package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil))), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	return m
}

func TestSlogLogger_InfoWritesMessageAndAttrs(t *testing.T) {
	log, buf := newBufferLogger()

	log.Info(context.Background(), "server started", "addr", ":5000")

	m := decodeLine(t, buf)
	if m["msg"] != "server started" {
		t.Errorf("unexpected msg: %v", m["msg"])
	}
	if m["addr"] != ":5000" {
		t.Errorf("unexpected addr attr: %v", m["addr"])
	}
}

func TestSlogLogger_WithAddsPersistentAttrs(t *testing.T) {
	log, buf := newBufferLogger()

	child := log.With("module", "http_server")
	child.Error(context.Background(), "boom")

	m := decodeLine(t, buf)
	if m["module"] != "http_server" {
		t.Errorf("child logger lost With attr: %v", m["module"])
	}
	if m["level"] != "ERROR" {
		t.Errorf("unexpected level: %v", m["level"])
	}
}
