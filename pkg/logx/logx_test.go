package logx

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf, FormatJSON)
	t.Cleanup(func() {
		SetOutput(os.Stderr, FormatText)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestWithFieldsWritesAttributes(t *testing.T) {
	buf := captureJSON(t)

	WithFields(Fields{"entity": "job", "job_id": 42}).Errorf("failed to %s", "update")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode record %q: %v", buf.String(), err)
	}
	if rec["msg"] != "failed to update" {
		t.Fatalf("msg = %v", rec["msg"])
	}
	if rec["level"] != "ERROR" {
		t.Fatalf("level = %v", rec["level"])
	}
	if rec["entity"] != "job" || rec["job_id"] != float64(42) {
		t.Fatalf("fields missing: %v", rec)
	}
}

func TestSetLevelFilters(t *testing.T) {
	buf := captureJSON(t)

	SetLevel(LevelWarn)
	Info("hidden")
	Warnf("shown %d", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown 1") {
		t.Fatalf("warn record missing: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFatalfExits(t *testing.T) {
	captureJSON(t)

	var code int
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	Fatalf("boom %s", "now")
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
}
