package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	AccountID     string    `json:"account_id,omitempty"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events as JSON lines
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewDeadLetterWriter opens path for appending, creating its directory if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), DeadLetterDirPermissions); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenDeadLetter, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenDeadLetter, err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write appends one entry. The account is lifted from the event metadata so
// the file can be grepped per account.
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         evt,
		Attempts:      attempts,
	}
	if id, ok := evt.GetMetadataValue(MetadataKeyAccountID).(string); ok {
		entry.AccountID = id
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"account_id", entry.AccountID,
		"attempts", attempts,
		"error", entry.LastError)

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(entry)
}

// Close closes the dead-letter file
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadDeadLetters parses a dead-letter stream. Malformed lines are skipped and
// counted so one torn write does not hide the rest of the file.
func ReadDeadLetters(r io.Reader) (entries []DeadLetterEntry, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), DeadLetterMaxLineBytes)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e DeadLetterEntry
		if json.Unmarshal(line, &e) != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return entries, skipped, fmt.Errorf("%s: %w", ErrMsgReadDeadLetter, err)
	}
	return entries, skipped, nil
}
