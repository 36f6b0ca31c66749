package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hostcache/internal/app"
	"go.trai.ch/hostcache/internal/core/domain"
)

func TestApp_WatchFilter(t *testing.T) {
	project := &domain.Project{
		Root:    "/repo",
		Options: domain.CompilerOptions{OutDir: "/repo/out"},
		Ignore:  []string{"*.log", "tmp"},
	}
	a := app.New(nil, nil, nil, nil, nil, nil, nil, nil, nil)

	tests := []struct {
		path string
		want bool
	}{
		{"/repo/src/index.ts", true},
		{"/repo/src/a.css", true},
		{"/repo/src/index.d.ts", false},
		{"/repo/src/index.metadata.json", false},
		{"/repo/out/src/index.js", false},
		{"/repo/.hostcache/graph.db", false},
		{"/repo/debug.log", false},
		{"/repo/tmp/scratch.ts", false},
		{"/repo/outside.ts", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, a.RelevantExported(project, tt.path))
		})
	}
}
