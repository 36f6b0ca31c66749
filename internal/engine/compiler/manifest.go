package compiler

import (
	"time"

	"go.trai.ch/hostcache/internal/core/domain"
)

// Manifest summarizes res for persistence, reading digests and declaration
// paths from the session's record store.
func (s *Session) Manifest(res *Result, now time.Time) domain.Manifest {
	m := domain.Manifest{
		EntryPoint: res.EntryPoint,
		Unresolved: res.Unresolved,
		Timestamp:  now.UTC(),
	}

	for _, p := range res.Sources {
		entry := domain.ManifestEntry{Path: p}
		if rec, ok := s.files.Lookup(p); ok {
			if unit := rec.Source(); unit != nil {
				entry.Digest = FormatDigest(unit.Digest)
			}
			if decl, ok := rec.DeclarationPath(); ok {
				entry.DeclarationPath = decl
			}
		}
		m.Files = append(m.Files, entry)
	}
	for _, p := range res.Resources {
		m.Files = append(m.Files, domain.ManifestEntry{Path: p, Resource: true})
	}
	return m
}
