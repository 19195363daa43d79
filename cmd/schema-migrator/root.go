package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"schema-migrator/internal/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config

	// in is shared by every prompt so buffered input is not lost between them.
	in *bufio.Reader
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithLogger(nil)
}

// newRootCmdWithLogger builds the command tree. A non-nil logger is used as
// is instead of building one from flags.
func newRootCmdWithLogger(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "schema-migrator",
		Short: "Migrate FAIMS notebooks and legacy module schemas",
		Long: `schema-migrator moves field data definitions between generations of the
FAIMS platform.

  migrate  rewrite a legacy notebook dump with human-readable field ids
  convert  render a FAIMS 2 module as a TypeScript UI specification`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Config file (default: ./"+config.FileName+".yaml if present)")

	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newConvertCmd(a))

	return root
}

func (a *app) init() error {
	if a.logger == nil {
		zc := zap.NewProductionConfig()
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		logger, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		a.logger = logger
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger.Debug("loaded config", zap.Any("config", cfg))

	return nil
}

// prompt asks for a value on the command output and reads one line from the
// command input.
// An empty answer is an error.
func (a *app) prompt(cmd *cobra.Command, label string) (string, error) {
	if a.in == nil {
		a.in = bufio.NewReader(cmd.InOrStdin())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("no %s given", strings.ToLower(label))
	}

	return value, nil
}
