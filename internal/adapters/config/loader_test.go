package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hostcache/internal/adapters/config"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const projectYAML = `version: "1"
tsconfig: tsconfig.lib.json
entryPoints:
  - src/public_api.ts
  - src/*/index.ts
ignore:
  - "*.spec.ts"
processors:
  template:
    cmd: ["pug", "--client"]
  stylesheet:
    cmd: ["sass", "--stdin"]
`

const libTSConfig = `{
  // library build
  "extends": "./tsconfig.base",
  "compilerOptions": {
    "declaration": true,
    "outDir": "./dist",
  },
}`

const baseTSConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "baseUrl": ".",
    "paths": {
      "@lib/*": ["src/*"], /* local sources */
      "@ui": ["src/ui/index.ts"]
    },
    "outDir": "./out"
  }
}`

func newLoader(t *testing.T, files fstest.MapFS, environ map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	if environ == nil {
		environ = map[string]string{}
	}
	return &config.Loader{
		Logger:  log,
		FS:      config.NewMapFSAdapter("/work", files),
		Environ: environ,
	}
}

func projectFS() fstest.MapFS {
	return fstest.MapFS{
		"hostcache.yaml":      {Data: []byte(projectYAML)},
		"tsconfig.lib.json":   {Data: []byte(libTSConfig)},
		"tsconfig.base.json":  {Data: []byte(baseTSConfig)},
		"src/public_api.ts":   {Data: []byte("export * from './ui';")},
		"src/ui/index.ts":     {Data: []byte("")},
		"src/forms/index.ts":  {Data: []byte("")},
		"src/forms/helper.ts": {Data: []byte("")},
	}
}

func TestLoader_Load(t *testing.T) {
	loader := newLoader(t, projectFS(), nil)

	project, err := loader.Load("/work/src/ui")
	require.NoError(t, err)

	assert.Equal(t, "/work", project.Root)
	assert.Equal(t, "/work/hostcache.yaml", project.ConfigPath)
	assert.Equal(t, []string{
		"/work/src/forms/index.ts",
		"/work/src/public_api.ts",
		"/work/src/ui/index.ts",
	}, project.EntryPoints)
	assert.Equal(t, []string{"pug", "--client"}, project.TemplateCmd)
	assert.Equal(t, []string{"sass", "--stdin"}, project.StylesheetCmd)
	assert.Equal(t, []string{"*.spec.ts"}, project.Ignore)
	assert.False(t, project.LogJSON)

	opts := project.Options
	assert.Equal(t, domain.TargetES2020, opts.Target)
	assert.Equal(t, "/work", opts.BaseURL)
	assert.Equal(t, "/work/dist", opts.OutDir, "the extending config wins")
	assert.True(t, opts.Declaration)
	assert.Equal(t, map[string][]string{
		"@lib/*": {"src/*"},
		"@ui":    {"src/ui/index.ts"},
	}, opts.Paths)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	loader := newLoader(t, projectFS(), map[string]string{
		"HOSTCACHE_OUT_DIR":  "build",
		"HOSTCACHE_LOG_JSON": "true",
		"HOSTCACHE_TARGET":   "esnext",
	})

	project, err := loader.Load("/work")
	require.NoError(t, err)

	assert.Equal(t, "/work/build", project.Options.OutDir)
	assert.True(t, project.LogJSON)
	assert.Equal(t, domain.TargetESNext, project.Options.Target)
}

func TestLoader_Load_InvalidEnvTarget(t *testing.T) {
	loader := newLoader(t, projectFS(), map[string]string{"HOSTCACHE_TARGET": "es1999"})

	_, err := loader.Load("/work")
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid script target")
}

func TestLoader_Load_InvalidEnvBool(t *testing.T) {
	loader := newLoader(t, projectFS(), map[string]string{"HOSTCACHE_LOG_JSON": "maybe"})

	_, err := loader.Load("/work")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse environment overrides")
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{"src/a.ts": {}}, nil)

	_, err := loader.Load("/work/src")
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not find hostcache.yaml")
}

func TestLoader_Load_MissingEntryPoint(t *testing.T) {
	files := fstest.MapFS{
		"hostcache.yaml": {Data: []byte("entryPoints: [src/missing.ts]\n")},
	}
	loader := newLoader(t, files, nil)

	_, err := loader.Load("/work")
	require.Error(t, err)
	assert.ErrorContains(t, err, "entry point not found")
}

func TestLoader_Load_DefaultTSConfigOptional(t *testing.T) {
	files := fstest.MapFS{
		"hostcache.yaml": {Data: []byte("outDir: out\nentryPoints: [index.ts]\nlog:\n  json: true\n")},
		"index.ts":       {Data: []byte("")},
	}
	loader := newLoader(t, files, nil)

	project, err := loader.Load("/work")
	require.NoError(t, err)
	assert.Equal(t, domain.TargetES5, project.Options.Target)
	assert.Equal(t, "/work/out", project.Options.OutDir)
	assert.Equal(t, []string{"/work/index.ts"}, project.EntryPoints)
	assert.True(t, project.LogJSON)
}

func TestLoader_Load_ExplicitTSConfigMissing(t *testing.T) {
	files := fstest.MapFS{
		"hostcache.yaml": {Data: []byte("tsconfig: tsconfig.app.json\n")},
	}
	loader := newLoader(t, files, nil)

	_, err := loader.Load("/work")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read tsconfig")
}

func TestLoader_Load_BadYAML(t *testing.T) {
	files := fstest.MapFS{
		"hostcache.yaml": {Data: []byte("entryPoints: [unterminated\n")},
	}
	loader := newLoader(t, files, nil)

	_, err := loader.Load("/work")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoader_Load_RootOverride(t *testing.T) {
	files := fstest.MapFS{
		"config/hostcache.yaml": {Data: []byte("root: ..\nentryPoints: [lib/index.ts]\n")},
		"lib/index.ts":          {Data: []byte("")},
	}
	loader := newLoader(t, files, nil)

	project, err := loader.Load("/work/config")
	require.NoError(t, err)
	assert.Equal(t, "/work", project.Root)
	assert.Equal(t, []string{"/work/lib/index.ts"}, project.EntryPoints)
}

func TestLoader_Load_RelativeWorkDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hostcache.yaml"), []byte("entryPoints: [src/index.ts]\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "app"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "index.ts"), nil, 0o600))
	t.Chdir(filepath.Join(root, "src", "app"))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	project, err := config.NewLoader(log).Load(".")
	require.NoError(t, err)

	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(project.Root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
	assert.True(t, filepath.IsAbs(project.Root))
	require.Len(t, project.EntryPoints, 1)
	assert.True(t, filepath.IsAbs(project.EntryPoints[0]))
}
