package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-yew/internal/log"
	"github.com/grindlemire/go-yew/internal/yewgen"
)

type generateOptions struct {
	jobs         int
	inlineErrors bool
	runtime      string
	// write is false for check.
	write bool
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{write: true}

	cmd := &cobra.Command{
		Use:   "generate [path...]",
		Short: "Generate Go code from .gsx files",
		Long: `Generate expands every .gsx file into a Go file next to it:
header.gsx becomes header_gsx.go. Paths may be files, directories, or
recursive patterns such as ./... and default to the current directory.

Files in the same directory are expanded together, so a component declared
in one file is checked where another file uses it. A file with errors is
not written unless --inline-errors is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args, opts, cmd.ErrOrStderr())
		},
	}
	addGenerateFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.inlineErrors, "inline-errors", false, "write files with errors, replacing failed invocations by compile_error calls")
	return cmd
}

func newCheckCmd() *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check .gsx files without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args, opts, cmd.ErrOrStderr())
		},
	}
	addGenerateFlags(cmd, &opts)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of packages to expand in parallel")
	cmd.Flags().StringVar(&opts.runtime, "runtime", yewgen.RuntimeImport, "import path of the yew runtime package")
}

// runGenerate expands the .gsx files found in paths, one package per
// goroutine, and reports every diagnostic to stderr.
func runGenerate(ctx context.Context, paths []string, opts generateOptions, stderr io.Writer) error {
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
	log.Generate("found %d .gsx file(s)", len(files))

	pkgs := groupPackages(files)
	results := make([][]error, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}
	var warned sync.Map
	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			checkRuntime(pkg.Dir, opts.runtime, &warned)
			results[i] = expandPackage(pkg, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed []error
	for _, errs := range results {
		failed = append(failed, errs...)
	}
	if len(failed) > 0 {
		fmt.Fprintln(stderr, errors.Join(failed...))
		return fmt.Errorf("%d file(s) had errors", len(failed))
	}

	if opts.write {
		log.Generate("generated %d file(s)", len(files))
	} else {
		log.Generate("all %d file(s) passed checks", len(files))
	}
	return nil
}

// expandPackage expands and writes one package, returning one error per
// failed file.
func expandPackage(pkg gsxPackage, opts generateOptions) []error {
	sources, err := readPackage(pkg)
	if err != nil {
		return []error{fmt.Errorf("%s: %w", pkg.Dir, err)}
	}

	expander := yewgen.NewExpander(yewgen.Options{
		InlineErrors:  opts.inlineErrors,
		RuntimeImport: opts.runtime,
	})

	var errs []error
	for _, out := range expander.ExpandPackage(sources) {
		if out.Err != nil {
			errs = append(errs, out.Err)
		}
		if !opts.write || out.Src == nil {
			continue
		}
		outputPath := yewgen.OutputName(out.Name)
		log.Debug("writing %s -> %s", out.Name, outputPath)
		if err := os.WriteFile(outputPath, out.Src, 0644); err != nil {
			errs = append(errs, fmt.Errorf("%s: writing file: %w", out.Name, err))
		}
	}
	return errs
}

// checkRuntime warns once per module when generated code could not resolve
// the runtime import.
func checkRuntime(dir, runtimePath string, warned *sync.Map) {
	mod, err := findModule(dir)
	if err != nil {
		log.Warning("%v", err)
		return
	}
	if mod == nil {
		log.Warning("%s is not inside a Go module", dir)
		return
	}
	if mod.providesRuntime(runtimePath) {
		return
	}
	if _, loaded := warned.LoadOrStore(mod.Root, true); !loaded {
		log.Warning("module %s does not require %s; generated code will not build until it does", mod.Path, runtimePath)
	}
}
