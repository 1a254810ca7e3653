// Command propnet runs propagator networks described in TOML.
//
// Usage:
//
//	propnet run [--max-steps N] [--log-level L] FILE
//	propnet graph [--content] FILE
//	propnet version
//
// Sample descriptions are in cmd/propnet/toml.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bobg/propnet"
	"github.com/bobg/propnet/internal/config"
)

type options struct {
	logLevel string
	maxSteps int
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "propnet",
		Short: "Run propagator networks",
		Long: `propnet builds a propagator network from a TOML description, feeds it
the facts of each phase in turn and reports what the network concludes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-level") {
				opts.logLevel = config.LogLevel()
			}
			if !cmd.Flags().Changed("max-steps") {
				opts.maxSteps = config.MaxSteps()
			}

			level, err := zapcore.ParseLevel(opts.logLevel)
			if err != nil {
				return errors.Wrapf(err, "log level %q", opts.logLevel)
			}
			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(level)
			logger, err := zc.Build()
			if err != nil {
				return errors.Wrap(err, "initializing logger")
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error); default from LOG_LEVEL")
	root.PersistentFlags().IntVar(&opts.maxSteps, "max-steps", 0, "bound on propagator firings per run, 0 for none; default from PROPNET_MAX_STEPS")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newGraphCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func (o *options) networkOptions() []propnet.Option {
	return []propnet.Option{
		propnet.WithLogger(o.logger),
		propnet.WithMaxSteps(o.maxSteps),
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
