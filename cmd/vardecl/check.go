package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vardecl/internal/diag"
	"vardecl/internal/diagfmt"
	"vardecl/internal/driver"
)

// errRejected is returned after diagnostics are printed, so that the
// process exits non-zero without cobra printing anything else.
var errRejected = errors.New("declaration rejected")

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.var|-]",
	Short: "Validate a declaration and print its symbol table",
	Long: `Check validates one VAR declaration. On success it prints the symbol table,
otherwise the first error with its position. The declaration comes from a file,
from stdin ("-" or no argument) or from -e.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short|msgpack)")
	checkCmd.Flags().StringP("expr", "e", "", "check this declaration text instead of a file")
	checkCmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "show fix previews (implies --suggest)")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

type checkOptions struct {
	format    string
	withNotes bool
	suggest   bool
	preview   bool
	pathMode  diagfmt.PathMode
}

func readCheckOptions(cmd *cobra.Command) (checkOptions, error) {
	opts := checkOptions{format: current.cfg.Output.Format, pathMode: diagfmt.PathModeAuto}
	var err error
	if opts.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return opts, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if opts.suggest, err = cmd.Flags().GetBool("suggest"); err != nil {
		return opts, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if opts.preview, err = cmd.Flags().GetBool("preview"); err != nil {
		return opts, fmt.Errorf("failed to get preview flag: %w", err)
	}
	opts.suggest = opts.suggest || opts.preview
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return opts, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if fullPath {
		opts.pathMode = diagfmt.PathModeAbsolute
	}
	return opts, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := readCheckOptions(cmd)
	if err != nil {
		return err
	}
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	if expr != "" && len(args) > 0 {
		return fmt.Errorf("-e and a file argument cannot be used together")
	}

	maxDiagnostics := current.cfg.Output.MaxDiagnostics
	var res *driver.CheckResult
	switch path := inputArg(args); {
	case expr != "":
		res = driver.CheckString("<expr>", expr, maxDiagnostics)
	case path == "-":
		content, err := readStdin(stdin)
		if err != nil {
			return err
		}
		res = driver.CheckBytes(stdinName, content, maxDiagnostics)
	default:
		res, err = driver.Check(path, maxDiagnostics)
		if err != nil {
			return err
		}
	}
	if current.timings {
		res.AppendTimings()
	}

	out := cmd.OutOrStdout()
	if err := writeCheck(out, res, opts); err != nil {
		return err
	}
	if current.timings && opts.format == "pretty" {
		printTimings(cmd.ErrOrStderr(), res.Timing)
	}

	if !res.Accepted() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errRejected
	}
	return nil
}

func writeCheck(out io.Writer, res *driver.CheckResult, opts checkOptions) error {
	useColor := current.useColor(out)

	switch opts.format {
	case "pretty":
		if res.Accepted() {
			if !current.quiet {
				fmt.Fprintf(out, "%s: ok, %d symbols\n", res.File.FormatPath("auto", res.FileSet.BaseDir()), len(res.Table))
			}
			return diagfmt.TablePretty(out, res.Table, useColor)
		}
		diagfmt.Pretty(out, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:       useColor,
			PathMode:    opts.pathMode,
			ShowNotes:   opts.withNotes,
			ShowFixes:   opts.suggest,
			ShowPreview: opts.preview,
		})
		return nil
	case "short":
		if res.Accepted() {
			for _, name := range res.Table.Names() {
				fmt.Fprintf(out, "%s %s\n", name, res.Table[name])
			}
			return nil
		}
		return writeShort(out, diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, opts.withNotes))
	case "json":
		return diagfmt.CheckJSON(out, checkOutput(res, opts))
	case "msgpack":
		return diagfmt.TableMsgpack(out, checkOutput(res, opts))
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}

func checkOutput(res *driver.CheckResult, opts checkOptions) diagfmt.CheckOutput {
	diags := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         opts.pathMode,
		IncludeNotes:     opts.withNotes,
		IncludeFixes:     opts.suggest,
		IncludePreviews:  opts.preview,
	})
	out := diagfmt.CheckOutput{
		File:        res.File.Path,
		Accepted:    res.Accepted(),
		Symbols:     diagfmt.Symbols(res.Table),
		Diagnostics: &diags,
	}
	if current.timings {
		out.Timings = res.Timing
	}
	return out
}

func writeShort(out io.Writer, lines string) error {
	if lines == "" {
		return nil
	}
	_, err := io.WriteString(out, lines+"\n")
	return err
}
