package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"hipify/internal/driver"
)

func openTestCache(t *testing.T) *driver.DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("hipify")
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache := openTestCache(t)
	key := driver.Digest{1, 2, 3}
	payload := &driver.DiskPayload{
		Schema:  1,
		Output:  []byte("converted"),
		Changed: true,
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatal(err)
	}

	var got driver.DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if string(got.Output) != "converted" || !got.Changed {
		t.Errorf("payload = %+v", got)
	}

	// Unknown keys miss cleanly.
	ok, err = cache.Get(driver.Digest{9}, &got)
	if err != nil || ok {
		t.Errorf("miss = %v, %v", ok, err)
	}
}

func TestDiskCache_SchemaMismatchIsMiss(t *testing.T) {
	cache := openTestCache(t)
	key := driver.Digest{7}
	if err := cache.Put(key, &driver.DiskPayload{Schema: 999, Output: []byte("x")}); err != nil {
		t.Fatal(err)
	}
	var got driver.DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil || ok {
		t.Errorf("Get = %v, %v, want clean miss", ok, err)
	}
}

func TestDiskCache_DropAll(t *testing.T) {
	cache := openTestCache(t)
	key := driver.Digest{4}
	if err := cache.Put(key, &driver.DiskPayload{Schema: 1}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	var got driver.DiskPayload
	if ok, _ := cache.Get(key, &got); ok {
		t.Error("entry survived DropAll")
	}
}

func TestConvert_CacheHit(t *testing.T) {
	cache := openTestCache(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "alloc.cu")
	writeFile(t, path, "cudaMalloc(&p, n);\n")

	opts := driver.Options{Cache: cache}
	first, err := driver.ConvertFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.FromCache {
		t.Error("first conversion served from cache")
	}
	if err := os.Remove(first.OutPath); err != nil {
		t.Fatal(err)
	}

	second, err := driver.ConvertFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache {
		t.Error("second conversion not served from cache")
	}
	if string(second.Output) != string(first.Output) {
		t.Error("cached output differs")
	}
	// A cache hit still writes the output file.
	if _, err := os.Stat(second.OutPath); err != nil {
		t.Errorf("output not written on cache hit: %v", err)
	}
}

func TestConvert_CacheKeyedByMode(t *testing.T) {
	cache := openTestCache(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "blas.cu")
	writeFile(t, path, "cublasCreate(&h);\n")

	if _, err := driver.ConvertFile(path, driver.Options{Cache: cache, DryRun: true}); err != nil {
		t.Fatal(err)
	}
	res, err := driver.ConvertFile(path, driver.Options{Cache: cache, DryRun: true, ToRoc: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Error("ROC run served from the HIP run's cache entry")
	}
	if string(res.Output) != "#include <hip/hip_runtime.h>\nrocblas_create_handle(&h);\n" {
		t.Errorf("ROC output = %q", res.Output)
	}
}

func TestConvert_DiagnosticsNotCached(t *testing.T) {
	cache := openTestCache(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.cu")
	writeFile(t, path, "cudaGraph_t g;\n")

	first, err := driver.ConvertFile(path, driver.Options{Cache: cache, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if first.Bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", first.Bag.Len())
	}

	// The warning must be reproduced, not swallowed by a cache hit.
	second, err := driver.ConvertFile(path, driver.Options{Cache: cache, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if second.FromCache {
		t.Error("warned conversion served from cache")
	}
	if second.Bag.Len() != 1 {
		t.Errorf("second run diagnostics = %d, want 1", second.Bag.Len())
	}
}
