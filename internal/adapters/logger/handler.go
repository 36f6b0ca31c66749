package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/hostcache/internal/ui/output"
	"go.trai.ch/hostcache/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminal output. Path attributes are
// shown relative to the project root once one is set.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
	root  string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// WithRoot returns a copy of h that renders path attributes relative to root.
func (h *PrettyHandler) WithRoot(root string) *PrettyHandler {
	c := *h
	c.root = root
	return &c
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one line per record: an icon for warnings and errors, the
// message, then key=value attributes.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	color := termenv.RGBColor(string(style.Slate))

	switch {
	case r.Level >= slog.LevelError:
		b.WriteString(style.Cross + " ")
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		b.WriteString(style.Warning + " ")
		color = termenv.RGBColor(string(style.Yellow))
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.appendAttr(&b, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, attr)
		return true
	})

	line := h.out.String(b.String()).Foreground(color).String()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)
	return &c
}

// WithGroup returns a new Handler whose attribute keys are prefixed with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = name
	return &c
}

func (h *PrettyHandler) appendAttr(b *strings.Builder, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	value := attr.Value.String()
	if attr.Value.Kind() == slog.KindString {
		value = displayPath(h.root, attr.Key, value)
	}
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}

	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
}
