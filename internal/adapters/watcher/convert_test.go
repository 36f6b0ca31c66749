package watcher_test

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/hostcache/internal/adapters/watcher"
	"go.trai.ch/hostcache/internal/core/ports"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name string
		op   fsnotify.Op
		want ports.WatchOp
		ok   bool
	}{
		{"write", fsnotify.Write, ports.OpWrite, true},
		{"create", fsnotify.Create, ports.OpCreate, true},
		{"remove", fsnotify.Remove, ports.OpRemove, true},
		{"rename", fsnotify.Rename, ports.OpRename, true},
		{"write wins over create", fsnotify.Create | fsnotify.Write, ports.OpWrite, true},
		{"chmod ignored", fsnotify.Chmod, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := watcher.ConvertEventExported(fsnotify.Event{Name: "/lib/a.ts", Op: tt.op})
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, ev.Operation)
				assert.Equal(t, "/lib/a.ts", ev.Path)
			}
		})
	}
}
