// Package cas implements the per-entry-point manifest store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using a file-per-entry-point strategy
// under <root>/.hostcache/store.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the manifest for entryPoint. It returns nil, nil when none was stored.
func (s *Store) Get(root, entryPoint string) (*domain.Manifest, error) {
	filename := s.getFilename(root, entryPoint)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "entry_point", entryPoint)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "entry_point", entryPoint)
	}

	return &manifest, nil
}

// Put stores the manifest, replacing any previous one for the same entry point.
func (s *Store) Put(root string, manifest domain.Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, manifest.EntryPoint)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "entry_point", manifest.EntryPoint)
	}

	return nil
}

func (s *Store) getFilename(root, entryPoint string) string {
	hash := sha256.Sum256([]byte(domain.NormalizePath(entryPoint)))
	storeDir := filepath.Join(root, domain.DefaultStorePath())
	return filepath.Join(storeDir, hex.EncodeToString(hash[:])+".json")
}
