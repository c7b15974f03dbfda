package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hipify/internal/diag"
	"hipify/internal/diagfmt"
	"hipify/internal/driver"
	"hipify/internal/observ"
	"hipify/internal/source"
	"hipify/internal/stats"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <file-or-directory>",
	Short: "Convert CUDA sources to HIP",
	Long: `Convert rewrites CUDA C++ sources into HIP. A file argument converts
one file; a directory argument converts every CUDA source under it in
parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("out-dir", "o", "", "write converted files under this directory")
	convertCmd.Flags().Bool("inplace", false, "overwrite input files")
	convertCmd.Flags().Bool("roc", false, "prefer ROC library names over HIP where available")
	convertCmd.Flags().Bool("ext-types", false, "allow extension builtin types in shared-memory rewrites")
	convertCmd.Flags().Bool("dry-run", false, "convert without writing any output")
	convertCmd.Flags().Bool("print-stats", false, "print per-file and total translation statistics")
	convertCmd.Flags().Int("jobs", 0, "parallel conversions for directories (0 = all CPUs)")
	convertCmd.Flags().Bool("ui", false, "interactive progress for directory conversion")
	convertCmd.Flags().Bool("no-cache", false, "disable the conversion disk cache")
}

func runConvert(cmd *cobra.Command, args []string) error {
	target := args[0]
	flags := cmd.Flags()

	outDir, _ := flags.GetString("out-dir")
	inplace, _ := flags.GetBool("inplace")
	toRoc, _ := flags.GetBool("roc")
	extTypes, _ := flags.GetBool("ext-types")
	dryRun, _ := flags.GetBool("dry-run")
	printStats, _ := flags.GetBool("print-stats")
	jobs, _ := flags.GetInt("jobs")
	withUI, _ := flags.GetBool("ui")
	noCache, _ := flags.GetBool("no-cache")

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	if inplace && outDir != "" {
		return fmt.Errorf("--inplace and --out-dir are mutually exclusive")
	}

	// The manifest supplies defaults; explicit flags win.
	if manifest, ok, err := loadManifest(target); err != nil {
		return err
	} else if ok {
		if outDir == "" && !inplace && !flags.Changed("out-dir") {
			outDir = manifest.outDir()
		}
		if !flags.Changed("roc") {
			toRoc = manifest.Config.Convert.Roc
		}
		if !flags.Changed("ext-types") {
			extTypes = manifest.Config.Convert.ExtTypes
		}
		if !flags.Changed("jobs") && manifest.Config.Convert.Jobs > 0 {
			jobs = manifest.Config.Convert.Jobs
		}
	}

	opts := driver.Options{
		ToRoc:          toRoc,
		ExtTypes:       extTypes,
		MaxDiagnostics: maxDiagnostics,
		OutDir:         outDir,
		InPlace:        inplace,
		DryRun:         dryRun,
		NoCache:        noCache,
		Jobs:           jobs,
		Totals:         stats.NewTotals(),
	}
	if !noCache && !dryRun {
		// A broken cache dir only costs the speedup.
		if cache, err := driver.OpenDiskCache("hipify"); err == nil {
			opts.Cache = cache
		}
	}

	timer := observ.NewTimer()
	phase := timer.Begin("convert")

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var results []*driver.FileResult
	var bag *diag.Bag
	var fileSet *source.FileSet
	if info.IsDir() {
		var res *driver.DirResult
		if withUI && isTerminal(os.Stdout) {
			res, err = runConvertWithUI(cmd.Context(), target, opts)
		} else {
			res, err = driver.ConvertDir(contextOrBackground(cmd.Context()), target, opts)
		}
		if err != nil {
			return err
		}
		results = res.Files
		bag = res.Bag
		fileSet = res.FileSet
	} else {
		res, convErr := driver.ConvertFile(target, opts)
		results = []*driver.FileResult{res}
		bag = res.Bag
		fileSet = res.FileSet
		if convErr != nil && bag.Len() == 0 {
			return convErr
		}
		bag.Sort()
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))

	if bag != nil && bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
			ShowNotes:  true,
		})
	}

	if printStats {
		printRunStats(cmd, results, opts.Totals)
	}
	if !quiet {
		printSummary(cmd, results, dryRun)
	}
	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if bag != nil && bag.HasErrors() {
		return fmt.Errorf("conversion finished with errors")
	}
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func printRunStats(cmd *cobra.Command, results []*driver.FileResult, totals *stats.Totals) {
	colorOut := useColor(cmd, os.Stdout)
	for _, res := range results {
		if res == nil {
			continue
		}
		diagfmt.Stats(os.Stdout, res.Report, diagfmt.StatsOpts{
			Color: colorOut,
			Title: res.Path,
		})
	}
	if totals != nil && totals.Files() > 1 {
		diagfmt.Stats(os.Stdout, totals.Snapshot(), diagfmt.StatsOpts{
			Color: colorOut,
			Title: "TOTAL",
		})
	}
}

func printSummary(cmd *cobra.Command, results []*driver.FileResult, dryRun bool) {
	changed, cached := 0, 0
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Changed {
			changed++
		}
		if res.FromCache {
			cached++
		}
	}
	verb := "converted"
	if dryRun {
		verb = "would convert"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d files", verb, changed, len(results))
	if cached > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d from cache)", cached)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}
