package app

import "go.trai.ch/hostcache/internal/core/domain"

// RelevantExported exposes the watch event filter for tests.
func (a *App) RelevantExported(project *domain.Project, p string) bool {
	return a.relevant(project, p)
}
