package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/pinia/internal/config"
	"github.com/simonhull/firebird-suite/pinia/internal/output"
	"github.com/simonhull/firebird-suite/pinia/internal/project"
	"github.com/simonhull/firebird-suite/pinia/internal/store"
)

// GenerateStoreCmd creates and returns the 'generate-store' command
func GenerateStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate-store",
		Aliases: []string{"g"},
		Short:   "Generate a Pinia store",
		Long: `Generate a Pinia store and export it from the stores index.

Vue 3 projects get src/<directory>/<name>.ts (only the last segment of
--directory is used). Nuxt 3 projects always use stores/<name>.ts.

Store types:
  option   - defineStore with state, getters and actions (default)
  setup    - defineStore with a setup function

Examples:
  pinia generate-store --name cart
  pinia g -n cart -t setup
  pinia g -n user -d state --dry-run`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := output.NewConsole(cmd.OutOrStdout())

			req, err := config.Load(cmd.Flags())
			if err != nil {
				console.Error(err.Error())
				return reportedError{err}
			}

			console.Info(fmt.Sprintf("Generating store with name %s...", req.Name))
			console.Verbose(fmt.Sprintf("Request: directory=%q type=%s dry-run=%v", req.Directory, req.Kind, req.DryRun))

			gen := store.New(store.Config{
				Sink:   console,
				Writer: cmd.OutOrStdout(),
			})

			res, err := gen.Generate(cmd.Context(), req)
			if err != nil {
				return reportedError{err}
			}
			if req.DryRun {
				return nil
			}

			unit := store.NewUnit(req.Name, req.Kind)
			console.Info("Use it in a component:")
			console.Step(fmt.Sprintf("import { %s } from \"%s\";", unit.Binding(), importPath(res)))
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.MarkFlagRequired(config.KeyName)
	cmd.RegisterFlagCompletionFunc(config.KeyType, cobra.FixedCompletions(store.Kinds(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// importPath returns the alias-based import path of the stores barrel.
// Vue (Vite) maps "@" to src/, Nuxt maps "~" to the project root.
func importPath(res *store.Result) string {
	if res.Environment == project.Nuxt3 {
		return "~/" + res.Directory
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(res.Directory, "src"), "/")
	if rest == "" {
		return "@"
	}
	return "@/" + rest
}
