package domain

import "time"

// Manifest is the persisted summary of one compilation pass.
// The orchestrator compares manifests across runs to decide what changed.
type Manifest struct {
	EntryPoint string          `json:"entry_point"`
	Files      []ManifestEntry `json:"files,omitzero"`
	Unresolved []string        `json:"unresolved,omitzero"`
	Timestamp  time.Time       `json:"timestamp,omitzero"`
}

// ManifestEntry describes one file touched during a pass.
type ManifestEntry struct {
	Path            string `json:"path"`
	Digest          string `json:"digest,omitzero"`
	DeclarationPath string `json:"declaration_path,omitzero"`
	Resource        bool   `json:"resource,omitzero"`
}
