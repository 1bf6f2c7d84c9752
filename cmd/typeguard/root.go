package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Neumenon/typeguard/value"
)

// errCheckFailed makes the process exit non-zero without an error line.
var errCheckFailed = errors.New("check failed")

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	path       string

	cfg    config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "typeguard",
		Short:         "Inspect JSON and YAML documents as dynamic values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("config")
			cfg, err := loadConfig(a.configPath, explicit)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.LogLevel, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			value.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", defaultConfigPath, "config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newKeysCmd(),
		a.newValuesCmd(),
		a.newEntriesCmd(),
		a.newTagCmd(),
		a.newCheckCmd(),
		newPredicatesCmd(),
		newPlatformCmd(),
		newVersionCmd(),
	)
	return root
}

// newLogger builds a production logger at level; verbose forces debug.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
