package main

import (
	"os"

	"github.com/simonhull/firebird-suite/pinia/internal/commands"
	"github.com/simonhull/firebird-suite/pinia/internal/output"
)

func main() {
	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.GenerateStoreCmd())

	if err := rootCmd.Execute(); err != nil {
		if !commands.IsReported(err) {
			output.Error(err.Error())
		}
		os.Exit(1)
	}
}
