// Package config provides the configuration loader for hostcache.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using hostcache.yaml, the referenced
// tsconfig.json and environment overrides.
type Loader struct {
	Logger  ports.Logger
	FS      FileSystem
	Environ map[string]string
}

// NewLoader creates a new Loader reading from the OS filesystem and environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load finds hostcache.yaml in cwd or a parent directory and resolves it into a Project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file File
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Root:          resolveRoot(configPath, file.Root),
		ConfigPath:    configPath,
		TemplateCmd:   file.Processors.Template.Cmd,
		StylesheetCmd: file.Processors.Stylesheet.Cmd,
		Ignore:        file.Ignore,
		LogJSON:       file.Log.JSON,
	}

	opts, err := l.loadCompilerOptions(project.Root, file.TSConfig)
	if err != nil {
		return nil, err
	}
	project.Options = opts
	if file.OutDir != "" {
		project.Options.OutDir = absFrom(project.Root, file.OutDir)
	}

	entries, err := l.resolveEntryPoints(project.Root, file.EntryPoints)
	if err != nil {
		return nil, err
	}
	project.EntryPoints = entries

	overrides, err := ParseOverrides(l.Environ)
	if err != nil {
		return nil, err
	}
	if err := overrides.Apply(project); err != nil {
		return nil, err
	}

	return project, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := l.FS.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// loadCompilerOptions reads the configured tsconfig. A missing default
// tsconfig.json yields zero options; a missing explicit one is an error.
func (l *Loader) loadCompilerOptions(root, configured string) (domain.CompilerOptions, error) {
	name := configured
	if name == "" {
		name = domain.DefaultTSConfigName
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	if configured == "" {
		if _, err := l.FS.Stat(path); errors.Is(err, fs.ErrNotExist) {
			l.Logger.Warn(fmt.Sprintf("no %s in %s, using default compiler options", domain.DefaultTSConfigName, root))
			return domain.CompilerOptions{}, nil
		}
	}

	return ReadCompilerOptions(l.FS, path)
}

// resolveEntryPoints makes entries absolute, expands glob patterns and checks
// that every literal entry exists. The result is normalized, sorted and unique.
func (l *Loader) resolveEntryPoints(root string, entries []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		if !strings.ContainsAny(entry, "*?[") {
			if _, err := l.FS.Stat(path); err != nil {
				return nil, zerr.With(domain.ErrEntryPointNotFound, "path", path)
			}
			seen[domain.NormalizePath(path)] = struct{}{}
			continue
		}

		matches, err := l.FS.Glob(path)
		if err != nil {
			return nil, zerr.Wrap(err, "glob pattern failed: "+entry)
		}
		if len(matches) == 0 {
			l.Logger.Warn(fmt.Sprintf("entry point pattern %q matched no files", entry))
		}
		for _, match := range matches {
			seen[domain.NormalizePath(match)] = struct{}{}
		}
	}

	resolved := make([]string, 0, len(seen))
	for p := range seen {
		resolved = append(resolved, p)
	}
	slices.Sort(resolved)
	return resolved, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *File) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return nil
}
