package diag

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the in-memory log so a long match cannot grow it
// without limit.
const DefaultCapacity = 500

// Level classifies a diagnostic entry.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is one diagnostic record kept for offline bug reports.
type Entry struct {
	ID          string         `json:"id"`
	Level       Level          `json:"level"`
	Message     string         `json:"message"`
	Context     map[string]any `json:"context,omitempty"`
	TimestampMs int64          `json:"timestampMs"`
}

// Ring is a fixed-capacity buffer of recent diagnostic entries. Once full,
// the oldest entry is dropped for each new one.
type Ring struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	cap     int
	now     func() time.Time
}

// NewRing creates a ring holding up to capacity entries. A capacity of zero
// or less falls back to DefaultCapacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		entries: make([]Entry, capacity),
		cap:     capacity,
		now:     time.Now,
	}
}

// Info records an informational entry.
func (r *Ring) Info(message string, context map[string]any) {
	r.append(LevelInfo, message, context)
}

// Warn records a warning entry.
func (r *Ring) Warn(message string, context map[string]any) {
	r.append(LevelWarn, message, context)
}

// Error records an error entry.
func (r *Ring) Error(message string, context map[string]any) {
	r.append(LevelError, message, context)
}

func (r *Ring) append(level Level, message string, context map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.next] = Entry{
		ID:          uuid.NewString(),
		Level:       level,
		Message:     message,
		Context:     context,
		TimestampMs: r.now().UnixMilli(),
	}
	r.next++
	if r.next == r.cap {
		r.next = 0
		r.full = true
	}
}

// Entries returns the buffered entries oldest-first.
func (r *Ring) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		out := make([]Entry, r.next)
		copy(out, r.entries[:r.next])
		return out
	}
	out := make([]Entry, 0, r.cap)
	out = append(out, r.entries[r.next:]...)
	out = append(out, r.entries[:r.next]...)
	return out
}

// Len returns the number of buffered entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return r.cap
	}
	return r.next
}
