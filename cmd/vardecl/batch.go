package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vardecl/internal/diag"
	"vardecl/internal/diagfmt"
	"vardecl/internal/driver"
	"vardecl/internal/source"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <directory>",
	Short: "Check every declaration file in a directory",
	Long: `Batch checks all declaration files (*.var by default) under a directory in
parallel. Results are printed in path order; the exit status is non-zero when
any file is rejected or unreadable.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().Bool("cache", false, "reuse results from the disk cache")
	batchCmd.Flags().Bool("drop-cache", false, "clear the disk cache before checking")
	batchCmd.Flags().String("ext", ".var", "file extension to look for")
	batchCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	batchCmd.Flags().String("cpu-profile", "", "write a CPU profile of the run to this file")
	batchCmd.Flags().String("mem-profile", "", "write a heap profile after the run to this file")
	batchCmd.Flags().String("runtime-trace", "", "write a runtime trace of the run to this file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	cfg := current.cfg
	logger := current.logger

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return fmt.Errorf("failed to get drop-cache flag: %w", err)
	}
	if cfg.Output.Format == "msgpack" {
		return fmt.Errorf("batch does not support the msgpack format")
	}

	opts := driver.BatchOptions{
		Jobs:           cfg.Batch.Jobs,
		MaxDiagnostics: cfg.Output.MaxDiagnostics,
		Ext:            cfg.Batch.Ext,
	}
	if cfg.Batch.Cache {
		cache, err := driver.OpenDiskCache("vardecl")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		if dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear disk cache: %w", err)
			}
			logger.Info("disk cache cleared")
		}
		opts.Cache = cache
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	logger.Info("batch started", "dir", dir, "jobs", opts.Jobs, "ext", opts.Ext, "cache", opts.Cache != nil)

	ctx := cmd.Context()
	var (
		fileSet *source.FileSet
		items   []driver.BatchItem
	)
	if shouldUseTUI(mode) && !current.quiet {
		files, err := driver.ListFiles(dir, opts.Ext)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", dir, err)
		}
		fileSet, items, err = runBatchWithUI(ctx, "checking "+dir, dir, files, opts)
		if err != nil {
			return err
		}
	} else {
		fileSet, items, err = driver.CheckDir(ctx, dir, opts)
		if err != nil {
			return err
		}
	}

	rejected := 0
	for _, item := range items {
		if !item.Accepted() {
			rejected++
		}
		logger.Debug("file checked", "path", item.Path, "accepted", item.Accepted(), "cached", item.Cached, "elapsed", item.Elapsed)
	}
	logger.Info("batch finished", "files", len(items), "rejected", rejected)

	if err := writeBatch(cmd.OutOrStdout(), fileSet, items, cfg.Output.Format); err != nil {
		return err
	}
	if rejected > 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errRejected
	}
	return nil
}

// batchFileJSON is one element of the batch JSON array.
type batchFileJSON struct {
	File        string                     `json:"file"`
	Accepted    bool                       `json:"accepted"`
	Cached      bool                       `json:"cached,omitempty"`
	Symbols     map[string]string          `json:"symbols,omitempty"`
	Diagnostics *diagfmt.DiagnosticsOutput `json:"diagnostics,omitempty"`
}

func writeBatch(out io.Writer, fileSet *source.FileSet, items []driver.BatchItem, format string) error {
	useColor := current.useColor(out)

	switch format {
	case "pretty":
		accepted := 0
		for _, item := range items {
			switch {
			case item.Summary == nil:
				writeLoadFailure(out, item)
			case item.Accepted():
				accepted++
				if !current.quiet {
					fmt.Fprintf(out, "ok   %s (%d symbols)\n", item.Path, len(item.Summary.Symbols))
				}
			default:
				diagfmt.Pretty(out, item.Bag, fileSet, diagfmt.PrettyOpts{Color: useColor, ShowNotes: true})
			}
		}
		if !current.quiet {
			fmt.Fprintf(out, "%d files: %d accepted, %d rejected\n", len(items), accepted, len(items)-accepted)
		}
		return nil
	case "short":
		for _, item := range items {
			if item.Summary == nil {
				writeLoadFailure(out, item)
				continue
			}
			if err := writeShort(out, diag.FormatShortDiagnostics(item.Bag.Items(), fileSet, true)); err != nil {
				return err
			}
		}
		return nil
	case "json":
		payload := make([]batchFileJSON, 0, len(items))
		for _, item := range items {
			entry := batchFileJSON{File: item.Path, Accepted: item.Accepted(), Cached: item.Cached}
			if item.Summary != nil {
				entry.Symbols = item.Summary.Symbols
				diags := diagfmt.BuildDiagnosticsOutput(item.Bag, fileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
				entry.Diagnostics = &diags
			}
			payload = append(payload, entry)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeLoadFailure prints diagnostics of a file that could not be read;
// they carry no span to render.
func writeLoadFailure(out io.Writer, item driver.BatchItem) {
	for _, d := range item.Bag.Items() {
		fmt.Fprintf(out, "%s: %s %s: %s\n", item.Path, d.Severity, d.Code.ID(), d.Message)
	}
}
