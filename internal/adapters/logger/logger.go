// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/hostcache/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// messager describes an error that can report its own message without the chain.
type messager interface {
	Message() string
}

// metadataer describes an error that carries key/value annotations.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain as rendered in pretty mode.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	root     string
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination, keeping the JSON mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetRoot sets the project root. Path attributes and error metadata inside
// root are logged relative to it.
func (l *Logger) SetRoot(root string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.root = root
	l.rebuild()
}

func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if l.jsonMode {
		root := l.root
		opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindString {
				a.Value = slog.StringValue(displayPath(root, a.Key, a.Value.String()))
			}
			return a
		}
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts).WithRoot(l.root)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. In pretty mode the zerr chain is rendered as a
// "Caused by:" list with each link's metadata.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	entries := collectErrorEntries(err)
	if l.jsonMode {
		l.logger.Error("operation failed", append([]any{"error", err}, metadataAttrs(entries)...)...)
		return
	}

	l.logger.Error(formatErrorEntries(l.root, entries))
}

// metadataAttrs flattens the chain's metadata into attributes. A key set on an
// outer link wins over the same key further down the chain.
func metadataAttrs(entries []ErrorEntry) []any {
	seen := map[string]struct{}{"error": {}}
	var attrs []any
	for _, entry := range entries {
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			attrs = append(attrs, slog.Any(key, entry.Metadata[key]))
		}
	}
	return attrs
}

// collectErrorEntries walks err's chain. zerr links contribute their own
// message and metadata; the first standard error ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message(), Metadata: map[string]any{}}
		if md, ok := current.(metadataer); ok {
			maps.Copy(entry.Metadata, md.Metadata())
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(root string, entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			value := entry.Metadata[key]
			if s, ok := value.(string); ok {
				value = displayPath(root, key, s)
			}
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, value))
		}
	}

	return strings.Join(lines, "\n")
}
