// Command uaclassify parses, benchmarks, and generates code for the
// user-agent classification stack. Subcommands mirror the original
// __main__.py's bench/hitrates tooling, rebuilt around cobra and a
// channel-based worker pool instead of argparse and raw threads.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "uaclassify: loading config:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "uaclassify: building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	root := &cobra.Command{
		Use:   "uaclassify",
		Short: "Classify, benchmark, and generate code for user-agent strings",
	}
	root.AddCommand(
		newParseCmd(logger),
		newBenchCmd(cfg, logger),
		newHitratesCmd(logger),
		newGenerateCmd(logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if err := zc.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	return zc.Build()
}
