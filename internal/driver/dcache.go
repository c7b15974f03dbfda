package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"hipify/internal/diag"
	"hipify/internal/source"
	"hipify/internal/stats"
)

// Current schema version - increment when DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [32]byte

// DiskCache stores converted outputs keyed by input content, rule set
// and translation mode. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached conversion result. Only clean conversions
// are cached, so diagnostics never need to round-trip through it.
type DiskPayload struct {
	Schema  uint16
	Output  []byte
	Changed bool
	Names   []stats.NameCount
	Report  cachedReport
}

type cachedReport struct {
	Supported    uint32
	Unsupported  uint32
	LinesTouched uint32
	BytesChanged uint64
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// A subdirectory keeps the cache root listable and easy to clear.
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	name := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	// Atomic replacement.
	return os.Rename(name, p)
}

// Get reads and deserializes a payload from the disk cache. A missing
// entry or a schema mismatch is a clean miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after rule-table changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey derives the lookup key for one file under the given
// options. Any input byte, rule row or mode switch changing flips it.
func cacheKey(file *source.File, opts Options) Digest {
	h := sha256.New()
	h.Write(file.Hash[:])
	h.Write([]byte(opts.ruleSet().Fingerprint()))
	mode := byte(0)
	if opts.ToRoc {
		mode |= 1
	}
	if opts.ExtTypes {
		mode |= 2
	}
	h.Write([]byte{mode})
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func cacheLookup(file *source.File, opts Options) (*FileResult, bool) {
	if opts.Cache == nil || opts.NoCache {
		return nil, false
	}
	var payload DiskPayload
	ok, err := opts.Cache.Get(cacheKey(file, opts), &payload)
	if err != nil || !ok {
		return nil, false
	}
	return &FileResult{
		Output:  payload.Output,
		Changed: payload.Changed,
		Report: stats.Report{
			Names:        payload.Names,
			Supported:    payload.Report.Supported,
			Unsupported:  payload.Report.Unsupported,
			LinesTouched: payload.Report.LinesTouched,
			BytesChanged: payload.Report.BytesChanged,
		},
		Bag:       diag.NewBag(opts.maxDiagnostics()),
		FromCache: true,
	}, true
}

// cacheStore caches a clean conversion. Results with diagnostics are
// skipped: warnings must be reproduced on the next run.
func cacheStore(file *source.File, res *FileResult, opts Options) {
	if opts.Cache == nil || opts.NoCache {
		return
	}
	if res.Bag != nil && res.Bag.Len() > 0 {
		return
	}
	payload := &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Output:  res.Output,
		Changed: res.Changed,
		Names:   res.Report.Names,
		Report: cachedReport{
			Supported:    res.Report.Supported,
			Unsupported:  res.Report.Unsupported,
			LinesTouched: res.Report.LinesTouched,
			BytesChanged: res.Report.BytesChanged,
		},
	}
	// Cache errors are not fatal; the next run just re-converts.
	_ = opts.Cache.Put(cacheKey(file, opts), payload)
}
