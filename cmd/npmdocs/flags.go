package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-npmdocs/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	help    bool
}

// outputFlags holds output directory and format flags.
type outputFlags struct {
	manDir  string
	htmlDir string
	mdDir   string
	noMan   bool
	noHTML  bool
	noMD    bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	commonFlags
	registry   string
	version    string
	workers    int
	workersSet bool
	output     outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and debug logs")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVar(&f.manDir, "man-dir", "", "man page output directory")
	fs.StringVar(&f.htmlDir, "html-dir", "", "HTML output directory")
	fs.StringVar(&f.mdDir, "md-dir", "", "markdown output directory")
	fs.BoolVar(&f.noMan, "no-man", false, "skip man pages")
	fs.BoolVar(&f.noHTML, "no-html", false, "skip HTML pages")
	fs.BoolVar(&f.noMD, "no-md", false, "skip expanded markdown")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{}

	fs.StringVarP(&f.registry, "registry", "r", "", "registry file path")
	fs.StringVar(&f.version, "version-string", "", "version substituted for @VERSION@")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")

	addCommonFlags(fs, &f.commonFlags)
	addOutputFlags(fs, &f.output)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.workersSet = fs.Changed("workers")

	if len(fs.Args()) > 1 {
		return nil, nil, fmt.Errorf("%w: expected at most one content directory, got %d", ErrUsage, len(fs.Args()))
	}

	return f, fs.Args(), nil
}

// mergeFlags applies explicitly set flags over cfg.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	if f.registry != "" {
		cfg.Registry = f.registry
	}
	if f.version != "" {
		cfg.Version = f.version
	}
	if f.workersSet {
		cfg.Build.Workers = f.workers
	}

	if f.output.manDir != "" {
		cfg.Paths.Man = f.output.manDir
	}
	if f.output.htmlDir != "" {
		cfg.Paths.HTML = f.output.htmlDir
	}
	if f.output.mdDir != "" {
		cfg.Paths.MD = f.output.mdDir
	}

	if f.output.noMan {
		cfg.Man.Enabled = false
	}
	if f.output.noHTML {
		cfg.HTML.Enabled = false
	}
	if f.output.noMD {
		cfg.Markdown.Enabled = false
	}
}
