// Command yew compiles .gsx files into Go.
//
// Usage:
//
//	yew generate [path...]    Generate Go code from .gsx files
//	yew check [path...]       Check .gsx files without generating
//	yew fmt [path...]         Format the markup in .gsx files
//	yew expand <macro>        Expand one macro invocation read from stdin
//	yew lsp                   Start the language server
//
// Examples:
//
//	yew generate ./...        Recursively find and compile all .gsx files
//	yew generate ./components Process a specific directory
//	yew generate header.gsx   Process a specific file
//	yew check header.gsx      Check syntax without generating
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-yew/internal/log"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "yew",
		Short: "Compiler for html!, props! and classes! markup in .gsx files",
		Long: `yew expands the html!, html_nested!, props! and classes! invocations in
.gsx files into plain Go, and derives a properties builder for every struct
marked //yew:properties.

For more information, see https://github.com/grindlemire/go-yew`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(verbosity, "")
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (repeat for debug output)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newExpandCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line args and returns the exit code.
func run(args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("yew version %s\n", version)
		},
	}
}
