package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"hipify/internal/diag"
	"hipify/internal/source"
)

// cudaExtensions are the file suffixes picked up by directory
// conversion.
var cudaExtensions = []string{".cu", ".cuh", ".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp"}

func isCudaSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range cudaExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ListSources returns a sorted list of convertible files under dir.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isCudaSource(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sorted for a deterministic processing and output order.
	sort.Strings(files)
	return files, nil
}

// DirResult is the outcome of one directory conversion.
type DirResult struct {
	// FileSet holds every loaded file; it resolves the merged bag.
	FileSet *source.FileSet
	// Files holds one result per discovered file, in path order.
	Files []*FileResult
	// Bag merges every file's diagnostics, sorted.
	Bag *diag.Bag
}

// ConvertDir converts every CUDA source under dir in parallel. Files
// are preloaded sequentially into one shared FileSet so their spans
// stay resolvable together; the conversions themselves are
// independent, so goroutines write into their own result slot and
// only the stats totals are shared.
func ConvertDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	if opts.OutDir != "" && opts.BaseDir == "" {
		opts.BaseDir = dir
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = &FileResult{Path: path, Bag: bag, FileSet: fileSet}
				emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}
			// An unwritable file is reported through its diagnostics;
			// it does not abort the other conversions.
			res, _ := convertLoaded(fileSet, fileSet.Get(fileIDs[path]), path, opts)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := diag.NewBag(opts.maxDiagnostics())
	for _, res := range results {
		if res != nil && res.Bag != nil {
			merged.Merge(res.Bag)
		}
	}
	merged.Sort()
	return &DirResult{FileSet: fileSet, Files: results, Bag: merged}, nil
}

func dirOf(path string) string {
	return filepath.Dir(path)
}

// mirrorPath places path under outDir, preserving its location
// relative to the conversion root.
func mirrorPath(outDir, base, path string) string {
	if base != "" {
		if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.Join(outDir, rel)
		}
	}
	return filepath.Join(outDir, filepath.Base(path))
}
