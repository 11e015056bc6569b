// Package journal provides the append-only session log that user-visible
// progress and failure messages flow through. Entries are appended in
// chronological order; consumers that want newest-first display reverse via
// Recent.
package journal

import (
	"log/slog"
	"sync"
	"time"
)

// Level classifies a journal entry for display.
type Level string

// Possible entry levels
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Entry is one appended log line.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// Journal is a concurrency-safe, append-only list of entries. Multiple
// in-flight tasks append to it; each append only adds its own entry, so
// interleaving is safe.
type Journal struct {
	mu      sync.RWMutex
	entries []Entry
	logger  *slog.Logger
}

// New creates an empty journal. Appends are mirrored to the structured
// logger at a matching level.
func New(logger *slog.Logger) *Journal {
	return &Journal{
		entries: make([]Entry, 0),
		logger:  logger.With("component", "journal"),
	}
}

// Append adds an entry with the current timestamp.
func (j *Journal) Append(message string, level Level) {
	entry := Entry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	}

	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()

	switch level {
	case LevelError:
		j.logger.Error(message)
	case LevelWarning:
		j.logger.Warn(message)
	default:
		j.logger.Info(message, "level", string(level))
	}
}

// Entries returns a copy of all entries in chronological append order.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Recent returns up to n entries, newest first. n <= 0 returns everything.
func (j *Journal) Recent(n int) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if n <= 0 || n > len(j.entries) {
		n = len(j.entries)
	}

	out := make([]Entry, 0, n)
	for i := len(j.entries) - 1; i >= len(j.entries)-n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

// Len returns the number of appended entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}
