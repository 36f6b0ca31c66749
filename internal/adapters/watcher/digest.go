package watcher

import (
	"sync"
	"unique"
)

// FileDigester computes a content digest for a file.
type FileDigester interface {
	ComputeFileHash(path string) (uint64, error)
}

// DigestCache remembers the last seen content digest per path so that
// events which leave a file's bytes unchanged (touch, editor save without
// edits) do not trigger a rebuild.
type DigestCache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
	hasher  FileDigester
}

// NewDigestCache creates an empty DigestCache.
func NewDigestCache(hasher FileDigester) *DigestCache {
	return &DigestCache{
		digests: make(map[unique.Handle[string]]uint64),
		hasher:  hasher,
	}
}

// Seed records the current digest of each path without reporting changes.
func (c *DigestCache) Seed(paths []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range paths {
		if sum, err := c.hasher.ComputeFileHash(p); err == nil {
			c.digests[unique.Make(p)] = sum
		}
	}
}

// Changed filters paths down to those whose content differs from the last
// recorded digest. Paths that can no longer be read count as changed and
// are forgotten.
func (c *DigestCache) Changed(paths []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var changed []string
	for _, p := range paths {
		key := unique.Make(p)
		prev, known := c.digests[key]

		sum, err := c.hasher.ComputeFileHash(p)
		if err != nil {
			delete(c.digests, key)
			changed = append(changed, p)
			continue
		}
		c.digests[key] = sum
		if !known || prev != sum {
			changed = append(changed, p)
		}
	}
	return changed
}

// Len returns the number of tracked paths.
func (c *DigestCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.digests)
}
