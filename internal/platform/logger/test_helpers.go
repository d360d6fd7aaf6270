package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogEntry is one decoded JSON log line.
type LogEntry map[string]any

// Message returns the entry's msg field.
func (e LogEntry) Message() string {
	s, _ := e[slog.MessageKey].(string)
	return s
}

// TestLogBuffer collects JSON log output from concurrent writers.
type TestLogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Reset drops everything logged so far.
func (b *TestLogBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// Entries decodes every non-blank line as a JSON log entry.
func (b *TestLogBuffer) Entries() ([]LogEntry, error) {
	var entries []LogEntry
	sc := bufio.NewScanner(strings.NewReader(b.String()))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e LogEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("decode log line %q: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

// Find returns the first entry logged with msg.
func (b *TestLogBuffer) Find(msg string) (LogEntry, bool) {
	entries, err := b.Entries()
	if err != nil {
		return nil, false
	}
	for _, e := range entries {
		if e.Message() == msg {
			return e, true
		}
	}
	return nil, false
}

// GetTestLogger returns a debug-level JSON logger and the buffer it writes to.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()
	buf := &TestLogBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// AssertLogContains fails t unless the captured output contains content.
func AssertLogContains(t *testing.T, buf *TestLogBuffer, content string) {
	t.Helper()
	assertLog(t, buf, content, true)
}

// AssertLogNotContains fails t if the captured output contains content.
// Used to check that secrets never reach the logs.
func AssertLogNotContains(t *testing.T, buf *TestLogBuffer, content string) {
	t.Helper()
	assertLog(t, buf, content, false)
}

func assertLog(t *testing.T, buf *TestLogBuffer, content string, want bool) {
	t.Helper()
	logs := buf.String()
	if strings.Contains(logs, content) == want {
		return
	}
	if want {
		t.Errorf("log output missing %q\n%s", content, logs)
	} else {
		t.Errorf("log output unexpectedly contains %q\n%s", content, logs)
	}
}
