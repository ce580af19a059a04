package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-yew/internal/formatter"
	"github.com/grindlemire/go-yew/internal/log"
)

type fmtOptions struct {
	check  bool // report unformatted files without writing
	stdout bool // print to stdout instead of modifying files
}

func newFmtCmd() *cobra.Command {
	var opts fmtOptions

	cmd := &cobra.Command{
		Use:   "fmt [path...]",
		Short: "Format the markup in .gsx files",
		Long: `Fmt rewrites the body of every html! and html_nested! invocation in
canonical layout. Go code outside the invocations is left as written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd.Context(), args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVar(&opts.check, "check", false, "exit with an error if any file is not formatted")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print formatted output instead of rewriting files")
	return cmd
}

type fmtResult struct {
	path    string
	content string
	changed bool
	err     error
}

func runFmt(ctx context.Context, paths []string, opts fmtOptions, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectGsxFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .gsx files found")
	}

	fmtr := formatter.New()
	results := make([]fmtResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = formatFile(fmtr, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errorCount, notFormatted int
	for _, res := range results {
		switch {
		case res.err != nil:
			fmt.Fprintf(stderr, "%s: %v\n", res.path, res.err)
			errorCount++
		case opts.stdout:
			if len(results) > 1 {
				fmt.Fprintf(stdout, "// %s\n", res.path)
			}
			fmt.Fprint(stdout, res.content)
		case opts.check && res.changed:
			fmt.Fprintf(stderr, "ERROR: %s is not formatted\n", res.path)
			notFormatted++
		case res.changed:
			log.Generate("formatted %s", res.path)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if notFormatted > 0 {
		return fmt.Errorf("%d file(s) not formatted", notFormatted)
	}
	return nil
}

// formatFile formats one file, rewriting it in place unless opts asks for
// a check or stdout.
func formatFile(fmtr *formatter.Formatter, path string, opts fmtOptions) fmtResult {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmtResult{path: path, err: fmt.Errorf("reading file: %w", err)}
	}

	res, err := fmtr.FormatWithResult(filepath.Base(path), string(source))
	if err != nil {
		return fmtResult{path: path, err: err}
	}
	if res.Changed && !opts.check && !opts.stdout {
		if err := os.WriteFile(path, []byte(res.Content), 0644); err != nil {
			return fmtResult{path: path, err: fmt.Errorf("writing file: %w", err)}
		}
	}
	return fmtResult{path: path, content: res.Content, changed: res.Changed}
}
