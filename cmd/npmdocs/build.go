package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	npmdocs "github.com/alnah/go-npmdocs"
	"github.com/alnah/go-npmdocs/internal/config"
	"github.com/alnah/go-npmdocs/internal/dateutil"
	"github.com/alnah/go-npmdocs/internal/fileutil"
	"github.com/alnah/go-npmdocs/internal/logging"
	"github.com/alnah/go-npmdocs/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// runBuild orchestrates a documentation build.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	logger := logging.New(env.Stderr, verbosity(flags), false)
	log := logging.Component(logger, "build")

	warnUnknownEnvVars(env.Environ(), log)
	envCfg := loadEnvConfig(env.Getenv)

	if flags.workersSet {
		if err := validateWorkers(flags.workers); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(flags.config, envCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Dir() != "" {
		log.Debug().Str("dir", cfg.Dir()).Msg("config loaded")
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	contentDir := cfg.Resolve(cfg.Paths.Content)
	if len(positionalArgs) > 0 {
		contentDir = positionalArgs[0]
	}

	reg, err := npmdocs.LoadRegistry(cfg.Resolve(cfg.Registry))
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	navPath := cfg.Resolve(cfg.Paths.Nav)
	if !fileutil.FileExists(navPath) {
		log.Debug().Str("path", navPath).Msg("no navigation file")
		navPath = ""
	}

	b, err := newBuilder(reg, cfg, navPath, env.Getenv, env.Now)
	if err != nil {
		return err
	}

	files, err := discoverDocuments(contentDir, navPath)
	if err != nil {
		return fmt.Errorf("discovering documents: %w", err)
	}

	workers := npmdocs.ResolveWorkers(cfg.Build.Workers)
	log.Debug().
		Int("documents", len(files)).
		Int("workers", workers).
		Str("content", contentDir).
		Msg("starting build")

	start := time.Now()
	results := buildBatch(ctx, b, files, outputRootsFor(cfg), workers)
	log.Debug().Dur("elapsed", time.Since(start)).Msg("build finished")

	return printResults(results, flags.quiet, flags.verbose, env)
}

func verbosity(flags *buildFlags) logging.Verbosity {
	switch {
	case flags.quiet:
		return logging.Quiet
	case flags.verbose:
		return logging.Verbose
	default:
		return logging.Normal
	}
}

// loadConfig picks the config from the flag, then the environment, then an
// npmdocs.yaml in the search path. Without any, defaults apply and relative
// paths resolve against the working directory.
func loadConfig(flagPath, envPath string) (*config.Config, error) {
	switch {
	case flagPath != "":
		return config.LoadConfig(flagPath)
	case envPath != "":
		return config.LoadConfig(envPath)
	}

	cfg, err := config.LoadConfig(config.DefaultName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// newBuilder wires the renderers described by cfg into a Builder.
func newBuilder(reg npmdocs.Registry, cfg *config.Config, navPath string, getenv func(string) string, now func() time.Time) (*npmdocs.Builder, error) {
	opts := []npmdocs.Option{
		npmdocs.WithVersion(cfg.Version),
		npmdocs.WithProgram(cfg.Program),
		npmdocs.WithLauncher(cfg.Launcher, cfg.LauncherTarget),
		npmdocs.WithCommandsDir(cfg.Docs.CommandsDir),
		npmdocs.WithConfigDoc(cfg.Docs.ConfigDoc),
		npmdocs.WithOutputs(npmdocs.Outputs{
			Markdown: cfg.Markdown.Enabled,
			Man:      cfg.Man.Enabled,
			HTML:     cfg.HTML.Enabled,
		}),
	}

	if cfg.Man.Enabled {
		buildTime, err := dateutil.BuildTime(getenv, now)
		if err != nil {
			return nil, err
		}
		date, err := dateutil.ResolveDate(cfg.Man.Date, buildTime)
		if err != nil {
			return nil, fmt.Errorf("man.date: %w", err)
		}
		opts = append(opts, npmdocs.WithManRenderer(&pipeline.Md2ManRenderer{
			Source: cfg.ManSource(),
			Date:   date,
		}))
	}

	if cfg.HTML.Enabled {
		r, err := npmdocs.NewHTMLRenderer(npmdocs.HTMLOptions{
			Program:     cfg.Program,
			Version:     cfg.Version,
			Style:       cfg.HTML.Style,
			Template:    cfg.HTML.Template,
			AssetsDir:   cfg.Resolve(cfg.HTML.AssetsDir),
			NavPath:     navPath,
			TOCMinDepth: cfg.HTML.TOCMinDepth,
			TOCMaxDepth: cfg.HTML.TOCMaxDepth,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, npmdocs.WithHTMLRenderer(r))
	}

	return npmdocs.NewBuilder(reg, opts...)
}

func outputRootsFor(cfg *config.Config) outputRoots {
	return outputRoots{
		npmdocs.KindMarkdown: cfg.Resolve(cfg.Paths.MD),
		npmdocs.KindMan:      cfg.Resolve(cfg.Paths.Man),
		npmdocs.KindHTML:     cfg.Resolve(cfg.Paths.HTML),
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > npmdocs.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, npmdocs.MaxWorkers)
	}
	return nil
}

