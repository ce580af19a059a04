package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-yew/internal/yewgen"
)

func newExpandCmd() *cobra.Command {
	var requests []string
	for _, r := range yewgen.Requests {
		requests = append(requests, string(r))
	}

	return &cobra.Command{
		Use:   "expand <macro>",
		Short: "Expand one macro invocation read from stdin",
		Long: `Expand reads the body of a single invocation from stdin, runs it through
the named transformation and prints the generated tokens. A failed
expansion prints its compile_error tokens and exits with status 1.

Macros: ` + strings.Join(requests, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: requests,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runExpand(macro string, in io.Reader, out io.Writer) error {
	req, err := yewgen.ParseRequest(strings.TrimSuffix(macro, "!"))
	if err != nil {
		return err
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	input, err := yewgen.Lex("<stdin>", string(src))
	if err != nil {
		return err
	}

	result := yewgen.NewDispatcher(yewgen.NewRegistry()).Dispatch(req, input)
	fmt.Fprintln(out, result.String())

	if msgs, failed := yewgen.CompileErrorMessages(result); failed {
		return fmt.Errorf("%s! failed with %d error(s)", req, len(msgs))
	}
	return nil
}
