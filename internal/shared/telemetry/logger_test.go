package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Info("resume.saved", map[string]any{"user_id": int64(7), "children": 3})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log json: %v (%s)", err, buf.String())
	}
	for _, key := range []string{"ts", "level", "msg", "user_id", "children"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["msg"] != "resume.saved" || payload["level"] != "info" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if !strings.HasSuffix(payload["ts"].(string), "Z") {
		t.Fatalf("expected UTC timestamp, got %v", payload["ts"])
	}
}

func TestConfigureFiltersLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure("error")
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		Configure("info")
	})

	Info("dropped", nil)
	Warn("dropped too", nil)
	Error("kept", map[string]any{"code": "internal_error"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"msg":"kept"`) {
		t.Fatalf("unexpected line: %s", lines[0])
	}
}
