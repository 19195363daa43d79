package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-migrator/internal/gen"
	"schema-migrator/internal/legacy"
)

type convertOptions struct {
	moduleDir string
	name      string
	outputDir string
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Render a FAIMS 2 module as a TypeScript UI specification",
		Long: `Render a FAIMS 2 module directory (data_schema.xml and ui_schema.xml) as a
TypeScript module holding the equivalent UI specification.

Missing --module and --name values are prompted for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.moduleDir, "module", "", "FAIMS 2 module directory")
	cmd.Flags().StringVar(&opts.name, "name", "", "Project name")
	cmd.Flags().StringVar(&opts.outputDir, "out", "", "Output directory (default from config: converted)")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, opts convertOptions) error {
	var err error

	if opts.moduleDir == "" {
		if opts.moduleDir, err = a.prompt(cmd, "Module directory"); err != nil {
			return err
		}
	}

	if opts.name == "" {
		if opts.name, err = a.prompt(cmd, "Project name"); err != nil {
			return err
		}
	}

	gc := a.cfg.GeneratorConfig()
	if opts.outputDir != "" {
		gc.OutputDir = opts.outputDir
	}

	src, err := legacy.LoadDir(opts.moduleDir, a.logger)
	if err != nil {
		return err
	}

	module := legacy.Join(src.Data, src.UI, opts.name)
	module.Diagnostics.Log(a.logger)

	file, err := gen.NewGenerator(gc).Generate(module)
	if err != nil {
		return err
	}

	paths, err := gen.WriteFiles([]gen.GeneratedFile{*file}, gc.OutputDir)
	if err != nil {
		return err
	}

	a.logger.Info("wrote module",
		zap.String("path", paths[0]),
		zap.Int("fields", len(module.Fields)),
		zap.Int("views", len(module.Views)),
		zap.Int("skipped", len(module.Diagnostics.Warnings)))

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d fields, %d views, %d warnings)\n",
		paths[0], len(module.Fields), len(module.Views), len(module.Diagnostics.Warnings))

	return nil
}
