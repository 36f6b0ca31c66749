package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hostcache/internal/app"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	a := app.New(loader, nil, nil, nil, nil, nil, nil, nil, log)
	return &app.Components{App: a, Logger: log}, loader, log
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newComponents(ctrl)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer),
		func(context.Context) (*app.Components, func(), error) {
			return components, func() {}, nil
		})

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "hostcache version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr,
		func(context.Context) (*app.Components, func(), error) {
			return nil, nil, errors.New("init failed")
		})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command failures are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, loader, log := newComponents(ctrl)

	loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "failed to load configuration")
	})

	cleaned := false
	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), new(bytes.Buffer),
		func(context.Context) (*app.Components, func(), error) {
			return components, func() { cleaned = true }, nil
		})

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}
