package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutputTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "debug", FormatText)
	logger.WithField("path", "/profile").Debug("request")

	line := buf.String()
	for _, marker := range []string{"level=debug", "msg=request", "path=/profile"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing %q: %q", marker, line)
		}
	}
}

func TestNewWithOutputJSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "info", FormatJSON)
	logger.WithField("user_id", 7).Info("saved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "saved" {
		t.Fatalf("msg = %v, want saved", entry["msg"])
	}
}

func TestNewWithOutputUnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	logger := NewWithOutput(&bytes.Buffer{}, "loud", "")
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s, want info", logger.GetLevel())
	}
}

func TestOrDiscardNil(t *testing.T) {
	t.Parallel()

	if OrDiscard(nil) == nil {
		t.Fatal("expected discarding logger")
	}
}
