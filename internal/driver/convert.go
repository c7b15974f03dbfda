package driver

import (
	"os"
	"time"

	"hipify/internal/diag"
	"hipify/internal/lexer"
	"hipify/internal/match"
	"hipify/internal/preproc"
	"hipify/internal/rewrite"
	"hipify/internal/rules"
	"hipify/internal/source"
	"hipify/internal/stats"
	"hipify/internal/token"
)

// Options configures a conversion run.
type Options struct {
	// Rules overrides the built-in rule set; nil means default.
	Rules *rules.Set
	// ToRoc selects ROC output names where available.
	ToRoc bool
	// ExtTypes allows extension builtin type names in shared-memory
	// rewrites.
	ExtTypes bool
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int

	// OutDir mirrors converted files under this directory. Empty with
	// InPlace unset means writing alongside the input with a ".hip"
	// suffix.
	OutDir string
	// BaseDir is the conversion root OutDir mirroring is computed
	// against; ConvertDir fills it in when unset.
	BaseDir string
	// InPlace overwrites the input file.
	InPlace bool
	// DryRun converts without writing anything.
	DryRun bool
	// NoCache disables the disk cache.
	NoCache bool

	// Jobs caps directory-conversion parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Sink receives progress events; may be nil.
	Sink ProgressSink
	// Totals, when set, accumulates per-file reports across a run.
	Totals *stats.Totals
	// Cache, when set and NoCache is unset, short-circuits conversion
	// of unchanged files.
	Cache *DiskCache
}

func (o Options) ruleSet() *rules.Set {
	if o.Rules != nil {
		return o.Rules
	}
	return rules.Default()
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// FileResult is the outcome of converting one file.
type FileResult struct {
	Path    string
	OutPath string
	Output  []byte
	Changed bool
	Report  stats.Report
	Bag     *diag.Bag
	// FileSet resolves the bag's spans.
	FileSet *source.FileSet
	// FromCache marks a result served from the disk cache.
	FromCache bool
	// Elapsed is the wall time of the conversion, zero for cache hits.
	Elapsed time.Duration
}

// bagReporter adapts the lexer's reporter callback to the diagnostic
// bag. Lexical problems do not stop the conversion, so they land as
// warnings.
type bagReporter struct {
	bag *diag.Bag
}

func (r bagReporter) Report(kind string, sp source.Span, msg string) {
	code := diag.LexInfo
	switch kind {
	case lexer.ReportUnterminatedString:
		code = diag.LexUnterminatedString
	case lexer.ReportUnterminatedChar:
		code = diag.LexUnterminatedChar
	case lexer.ReportUnterminatedComment:
		code = diag.LexUnterminatedComment
	}
	r.bag.Add(diag.NewWarning(code, sp, msg))
}

// ConvertSource runs the full pipeline over one already-loaded file:
// preprocessor scan, structural matches, raw tokens, finalization.
// Matches go in first so a structural replacement beats identifier
// rules on the text it covers.
func ConvertSource(fs *source.FileSet, file *source.File, opts Options, bag *diag.Bag) rewrite.Result {
	events := preproc.Scan(file)
	engine := rewrite.NewEngine(fs, file, events, rewrite.Options{
		Rules:    opts.ruleSet(),
		ToRoc:    opts.ToRoc,
		ExtTypes: opts.ExtTypes,
	}, bag)

	lx := lexer.New(file, lexer.Options{Reporter: bagReporter{bag: bag}})
	toks := lx.Tokens()

	matches := match.Scan(file, toks, match.Options{
		ExtTypes:        opts.ExtTypes,
		IsBuiltinDevice: opts.ruleSet().IsDeviceFunc,
	})
	for _, m := range matches {
		engine.Match(m)
	}

	for _, t := range toks {
		if t.Kind == token.EOF {
			break
		}
		engine.Token(t)
	}

	return engine.Finalize()
}

// ConvertFile loads, converts and (unless DryRun) writes one file.
func ConvertFile(path string, opts Options) (*FileResult, error) {
	sink := opts.Sink
	emit(sink, Event{File: path, Stage: StageLoad, Status: StatusWorking})

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		emit(sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		bag := diag.NewBag(opts.maxDiagnostics())
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
		return &FileResult{Path: path, Bag: bag, FileSet: fs}, err
	}
	return convertLoaded(fs, fs.Get(fileID), path, opts)
}

// convertLoaded converts one already-loaded file: cache lookup first,
// then the pipeline, then output and cache write-back. Errors are
// reported through the result's bag as well as returned.
func convertLoaded(fs *source.FileSet, file *source.File, path string, opts Options) (*FileResult, error) {
	sink := opts.Sink
	outPath := outputPath(path, opts)

	if res, ok := cacheLookup(file, opts); ok {
		res.Path = path
		res.OutPath = outPath
		res.FileSet = fs
		if err := writeOutput(res, file, opts); err != nil {
			res.Bag.Add(diag.NewError(diag.IOWriteError, source.Span{}, "failed to write output: "+err.Error()))
			emit(sink, Event{File: path, Stage: StageApply, Status: StatusError, Err: err})
			return res, err
		}
		emit(sink, Event{File: path, Stage: StageApply, Status: StatusDone})
		mergeTotals(opts, res.Report)
		return res, nil
	}

	start := time.Now()
	emit(sink, Event{File: path, Stage: StageRewrite, Status: StatusWorking})
	bag := diag.NewBag(opts.maxDiagnostics())
	rr := ConvertSource(fs, file, opts, bag)
	elapsed := time.Since(start)

	res := &FileResult{
		Path:    path,
		OutPath: outPath,
		Output:  rr.Output,
		Changed: rr.Changed,
		Report:  rr.Report,
		Bag:     bag,
		FileSet: fs,
		Elapsed: elapsed,
	}

	emit(sink, Event{File: path, Stage: StageApply, Status: StatusWorking, Elapsed: elapsed})
	if err := writeOutput(res, file, opts); err != nil {
		bag.Add(diag.NewError(diag.IOWriteError, source.Span{}, "failed to write output: "+err.Error()))
		emit(sink, Event{File: path, Stage: StageApply, Status: StatusError, Err: err})
		return res, err
	}
	cacheStore(file, res, opts)
	emit(sink, Event{File: path, Stage: StageApply, Status: StatusDone, Elapsed: elapsed})
	mergeTotals(opts, res.Report)
	return res, nil
}

func mergeTotals(opts Options, rep stats.Report) {
	if opts.Totals != nil {
		opts.Totals.Merge(rep)
	}
}

// outputPath decides where the converted content goes.
func outputPath(path string, opts Options) string {
	switch {
	case opts.InPlace:
		return path
	case opts.OutDir != "":
		return mirrorPath(opts.OutDir, opts.BaseDir, path)
	default:
		return path + ".hip"
	}
}

// writeOutput writes the converted content, restoring the line endings
// and BOM the loader normalized away so untouched regions keep their
// original bytes.
func writeOutput(res *FileResult, file *source.File, opts Options) error {
	if opts.DryRun {
		return nil
	}
	if !res.Changed && opts.InPlace {
		// Nothing changed; leave the original untouched.
		return nil
	}
	return writeFileAtomic(res.OutPath, source.DenormalizeOutput(file.Flags, res.Output))
}

// writeFileAtomic writes via a temp file and rename so a crashed run
// never leaves a half-written output.
func writeFileAtomic(path string, content []byte) error {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dirOf(path), ".hipify-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}
