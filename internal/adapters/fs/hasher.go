package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content digests for files on disk.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content. A leading UTF-8 BOM
// is skipped so the digest matches the one recorded on loaded source units.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	head := make([]byte, len(utf8BOM))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	hasher := xxhash.New()
	if n < len(utf8BOM) || string(head) != string(utf8BOM) {
		_, _ = hasher.Write(head[:n])
	}
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
