// Package cli implements the pipeloop command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/internal/samples"
	"github.com/katalvlaran/pipeloop/tile"
)

// Version is set at build time via ldflags.
var Version = "dev"

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pipeloop",
		Short: "Find the closed loop in a pipe grid and count the tiles it encloses",
		Long: `pipeloop reads a grid of pipe tiles (| - L J 7 F), finds the single loop
that passes through the S tile, and reports either how far along the loop the
farthest tile is from S or how many tiles the loop encloses.

Without an input file the built-in sample grid is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("pipeloop version {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every pipe the loop walk enters")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newSolveCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig merges defaults, the config file, .env, the environment and
// the flags that were explicitly set, in that order.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if cfg.Verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run loads the grid named by cfg and solves it.
func run(cmd *cobra.Command, cfg *config.Config) (*pipeloop.Report, error) {
	log := logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))

	in, closeFn, err := openInput(log, cfg.Input)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	opts := []pipeloop.Option{pipeloop.WithLogger(log)}
	if cfg.MaxSteps > 0 {
		opts = append(opts, pipeloop.WithMaxSteps(cfg.MaxSteps))
	}
	if cfg.Verbose {
		opts = append(opts, pipeloop.WithTraceHook(func(step int, p gridgraph.Pos, t tile.Tile) error {
			log.Debug().Int("step", step).Int("row", p.Row).Int("col", p.Col).Stringer("tile", t).Msg("visit")
			return nil
		}))
	}

	rep, err := pipeloop.Solve(in, opts...)
	if err != nil {
		return nil, err
	}
	log.Info().Int("loop", rep.LoopLength).Int("farthest", rep.Farthest).Int("interior", rep.Interior).Msg("solved")

	return rep, nil
}

// openInput opens path, or the built-in sample when path is empty.
func openInput(log zerolog.Logger, path string) (io.Reader, func(), error) {
	if path == "" {
		log.Warn().Msg("no input file given, using the built-in sample grid")
		return strings.NewReader(samples.Complex), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
