package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/pinia"
	"github.com/simonhull/firebird-suite/pinia/internal/output"
)

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// RootCmd creates and returns the root command for the pinia CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pinia",
		Short: "Generate Pinia stores for Vue 3 and Nuxt 3 projects",
		Long: `pinia scaffolds Pinia stores inside a Vue 3 or Nuxt 3 project.

Run it from the project root. It will:
• Detect Vue 3 or Nuxt 3 from node_modules
• Create the stores directory if needed
• Write the store from an option or setup template
• Export it from the directory's index.ts`,
		Version:       pinia.Version,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			printBanner(cmd.OutOrStdout())
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
