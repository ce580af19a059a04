package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-yew/internal/log"
	"github.com/grindlemire/go-yew/internal/lsp"
)

func newLSPCmd() *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server (for editor integration)",
		Long: `Start a language server on stdio that publishes diagnostics for .gsx
files as they are opened, edited and saved, and formats documents on
request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logPath != "" {
				verbosity, _ := cmd.Flags().GetCount("verbose")
				log.Configure(max(verbosity, 2), logPath)
			}
			return lsp.NewServer(version).RunStdio()
		},
	}
	cmd.Flags().StringVar(&logPath, "log", "", "path to log file for debugging")
	return cmd
}
