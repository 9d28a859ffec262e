package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/logger"
	"github.com/osse101/Farmstead_Go/internal/scenario"
)

type options struct {
	seed        int64
	turns       int
	scenario    string
	catalogPath string
	list        bool
	verbose     bool
}

func main() {
	_ = godotenv.Load()

	var opts options
	flag.Int64Var(&opts.seed, "seed", 1, "weather seed for autoplay")
	flag.IntVar(&opts.turns, "turns", 24, "number of turns to autoplay")
	flag.StringVar(&opts.scenario, "scenario", "", "builtin scenario id or path to a scenario YAML file")
	flag.StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (defaults to the embedded catalog)")
	flag.BoolVar(&opts.list, "list", false, "list builtin scenarios and exit")
	flag.BoolVar(&opts.verbose, "v", false, "log at debug level to stderr")
	flag.Parse()

	level := "WARN"
	if opts.verbose {
		level = "DEBUG"
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, "text", "farmstead-simulate", "", "dev", false), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	c, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}
	registry, err := scenario.NewBuiltinRegistry()
	if err != nil {
		return fmt.Errorf("failed to load builtin scenarios: %w", err)
	}
	engine := scenario.NewEngine(registry, scenario.ControllerFactory(c))

	switch {
	case opts.list:
		return writeJSON(out, registry.Summaries())
	case opts.scenario != "":
		return runScenario(ctx, engine, opts.scenario, out)
	default:
		report, err := engine.Autoplay(ctx, opts.seed, opts.turns)
		if err != nil {
			return err
		}
		return writeJSON(out, report)
	}
}

func runScenario(ctx context.Context, engine *scenario.Engine, ref string, out io.Writer) error {
	var (
		result *scenario.ExecutionResult
		err    error
	)
	if strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") {
		sc, loadErr := scenario.LoadFile(ref)
		if loadErr != nil {
			return loadErr
		}
		result, err = engine.ExecuteScenario(ctx, sc)
	} else {
		result, err = engine.Execute(ctx, ref)
	}
	if err != nil {
		return err
	}
	if err := writeJSON(out, result); err != nil {
		return err
	}
	if !result.Success {
		return errors.New("scenario failed")
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
