package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-migrator/internal/notebook"
)

func newMigrateCmd(a *app) *cobra.Command {
	var mappingPath string

	cmd := &cobra.Command{
		Use:   "migrate FILE",
		Short: "Rewrite a legacy notebook dump in place",
		Long: `Rewrite a legacy notebook dump as a combined {metadata, ui-specification}
document with human-readable field ids.

The original file is kept next to the output with a .bak suffix and the field
renames are written to a mapping table for migrating records.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.NotebookOptions()
			if mappingPath != "" {
				opts.TablePath = mappingPath
			}

			res, err := notebook.NewMigrator(opts, a.logger).Run(args[0])
			if err != nil {
				a.logger.Error("migration failed", zap.String("path", args[0]), zap.Error(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrated %q: %d of %d field ids renamed, %d section descriptions moved\n",
				res.Name, len(res.Table.Changed()), res.Table.Len(), len(res.Described))
			fmt.Fprintf(cmd.OutOrStdout(), "rename table written to %s\n", opts.TablePath)

			return nil
		},
	}

	cmd.Flags().StringVar(&mappingPath, "mapping", "", "Rename table output path (.json, .yaml or .yml)")

	return cmd
}
