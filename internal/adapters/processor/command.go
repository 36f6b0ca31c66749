// Package processor provides ResourceProcessor implementations that run
// external template and stylesheet tools.
package processor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileEnvVar names the environment variable carrying the resource path.
const FileEnvVar = "HOSTCACHE_FILE"

// DefaultTimeout bounds a single processor invocation.
const DefaultTimeout = 30 * time.Second

var _ ports.ResourceProcessor = (*Command)(nil)

// allowListedEnvVars are the system environment variables inherited by
// processor commands.
var allowListedEnvVars = map[string]struct{}{
	"HOME": {},
	"TERM": {},
	"USER": {},
	"PATH": {},
	"LANG": {},
}

// Command pipes resource content through an external command: the raw
// content is written to stdin and stdout becomes the transformed content.
type Command struct {
	argv    []string
	dir     string
	timeout time.Duration
	logger  ports.Logger
}

// NewCommand creates a Command running argv in dir.
func NewCommand(argv []string, dir string, logger ports.Logger) *Command {
	return &Command{
		argv:    slices.Clone(argv),
		dir:     dir,
		timeout: DefaultTimeout,
		logger:  logger,
	}
}

// WithTimeout returns a copy of c with a different invocation timeout.
func (c *Command) WithTimeout(d time.Duration) *Command {
	cp := *c
	cp.timeout = d
	return &cp
}

// Process runs the command for fileName. A non-zero exit yields
// domain.ErrProcessorFailed carrying the command's stderr.
func (c *Command) Process(fileName, content string) (string, error) {
	if len(c.argv) == 0 {
		return content, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = c.dir
	cmd.Env = resolveEnvironment(os.Environ(), fileName)
	cmd.Stdin = strings.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrProcessorFailed.Error()), "file", fileName)
		wrapped = zerr.With(wrapped, "command", strings.Join(c.argv, " "))
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return "", wrapped
	}

	c.logStderr(stderr.Bytes())
	return stdout.String(), nil
}

// logStderr reports diagnostics a successful command printed, one line each.
func (c *Command) logStderr(data []byte) {
	if c.logger == nil || len(data) == 0 {
		return
	}
	for line := range strings.Lines(string(data)) {
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			c.logger.Warn(line)
		}
	}
}

// resolveEnvironment keeps the allow-listed system variables and adds the
// resource path.
func resolveEnvironment(sysEnv []string, fileName string) []string {
	env := make([]string, 0, len(allowListedEnvVars)+1)
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			env = append(env, entry)
		}
	}
	return append(env, FileEnvVar+"="+fileName)
}

// Identity returns content unchanged.
type Identity struct{}

var _ ports.ResourceProcessor = Identity{}

// Process returns content unchanged.
func (Identity) Process(_, content string) (string, error) {
	return content, nil
}

// Factory builds processors for a project.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory whose commands report diagnostics to logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New returns a Command for argv, or Identity when argv is empty.
func (f *Factory) New(argv []string, dir string) ports.ResourceProcessor {
	if len(argv) == 0 {
		return Identity{}
	}
	return NewCommand(argv, dir, f.logger)
}
