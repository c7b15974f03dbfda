package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hipify/internal/diag"
	"hipify/internal/diagfmt"
	"hipify/internal/driver"
	"hipify/internal/source"
	"hipify/internal/stats"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file-or-directory>",
	Short: "Report CUDA API usage without converting",
	Long: `Scan runs the translation pipeline in memory and reports what a
conversion would do: rewritten names, unsupported constructs and
per-file statistics. Nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("roc", false, "prefer ROC library names over HIP where available")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Int("jobs", 0, "parallel scans for directories (0 = all CPUs)")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]
	toRoc, _ := cmd.Flags().GetBool("roc")
	format, _ := cmd.Flags().GetString("format")
	jobs, _ := cmd.Flags().GetInt("jobs")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	opts := driver.Options{
		ToRoc:          toRoc,
		MaxDiagnostics: maxDiagnostics,
		DryRun:         true,
		NoCache:        true,
		Jobs:           jobs,
		Totals:         stats.NewTotals(),
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var results []*driver.FileResult
	var bag *diag.Bag
	var fileSet *source.FileSet
	if info.IsDir() {
		res, err := driver.ConvertDir(contextOrBackground(cmd.Context()), target, opts)
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

	switch format {
	case "pretty":
		if bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
				Color:      useColor(cmd, os.Stderr),
				ShowSource: true,
				ShowNotes:  true,
			})
		}
		printRunStats(cmd, results, opts.Totals)
	case "json":
		if err := diagfmt.JSON(os.Stdout, bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		return fmt.Errorf("scan finished with errors")
	}
	return nil
}
