package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zappabad/marketverse/internal/game"
	"github.com/zappabad/marketverse/internal/report"
	"github.com/zappabad/marketverse/tui"
)

const (
	formatMarkdown        = "md"
	formatPlayersCSV      = "csv-players"
	formatTransactionsCSV = "csv-transactions"
)

var errUsage = errors.New("usage")

type options struct {
	configPath string
	seed       int64
	seedSet    bool
	useTUI     bool
	format     string
	sweep      int
	parallel   int
	debug      bool
	dumpConfig bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("marketverse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "TOML config file (defaults apply to missing keys)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed, overrides the config file")
	fs.BoolVar(&opts.useTUI, "tui", false, "Browse the results in a terminal UI")
	fs.StringVar(&opts.format, "format", formatMarkdown, "Output: md, csv-players, csv-transactions")
	fs.IntVar(&opts.sweep, "sweep", 0, "Run N seeds starting at the configured seed and summarise them")
	fs.IntVar(&opts.parallel, "parallel", 0, "Concurrent runs during a sweep (0 = GOMAXPROCS)")
	fs.BoolVar(&opts.debug, "debug", false, "Development logging with per-day lines")
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective config as TOML and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})

	switch opts.format {
	case formatMarkdown, formatPlayersCSV, formatTransactionsCSV:
	default:
		return opts, fmt.Errorf("%w: unknown format %q", errUsage, opts.format)
	}
	if opts.sweep < 0 {
		return opts, fmt.Errorf("%w: -sweep must not be negative", errUsage)
	}
	if opts.sweep > 0 && (opts.useTUI || opts.format != formatMarkdown) {
		return opts, fmt.Errorf("%w: -sweep only renders a markdown summary", errUsage)
	}
	return opts, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadConfig(opts options) (game.Config, error) {
	cfg := game.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = game.Load(opts.configPath); err != nil {
			return game.Config{}, err
		}
	}
	if opts.seedSet {
		cfg.Simulation.Seed = opts.seed
	}
	return cfg, nil
}

func run(ctx context.Context, opts options, logger *zap.Logger, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.dumpConfig {
		return game.Encode(stdout, cfg)
	}

	if opts.sweep > 0 {
		seeds := game.Seeds(cfg.Simulation.Seed, opts.sweep)
		outs, err := game.Sweep(ctx, cfg, seeds, opts.parallel, logger)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, report.RenderSweepMarkdown(outs))
		return err
	}

	out, err := game.Play(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if opts.useTUI {
		p := tea.NewProgram(tui.NewModel(out), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	switch opts.format {
	case formatPlayersCSV:
		return report.RenderPlayersCSV(stdout, out.Result.Players)
	case formatTransactionsCSV:
		return report.RenderTransactionsCSV(stdout, out.Result.Ledger)
	default:
		_, err = io.WriteString(stdout, report.RenderMarkdown(out))
		return err
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received interrupt signal, shutting down")
		cancel()
	}()

	if err := run(ctx, opts, logger, os.Stdout); err != nil {
		logger.Error("marketverse failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
