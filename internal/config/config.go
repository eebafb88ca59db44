// Package config loads and validates the npmdocs.yaml build configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-npmdocs/internal/fileutil"
	"github.com/alnah/go-npmdocs/internal/pipeline"
	"github.com/alnah/go-npmdocs/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// DefaultName is the config name searched when none is given.
const DefaultName = "npmdocs"

// Field length limits.
const (
	MaxProgramLength = 50
	MaxVersionLength = 50
	MaxPathLength    = 4096
	MaxDateLength    = 60 // "auto:MMMM D, YYYY" or a literal date
	MaxSourceLength  = 100
	MaxAssetName     = 100
	MaxWorkers       = 256
)

// Config holds the build configuration.
type Config struct {
	Program        string `yaml:"program"`        // top-level command, e.g. "npm"
	Launcher       string `yaml:"launcher"`       // launcher document name, e.g. "npx"
	LauncherTarget string `yaml:"launcherTarget"` // command the launcher proxies to
	Version        string `yaml:"version"`        // substituted for @VERSION@
	Registry       string `yaml:"registry"`       // registry YAML file

	Paths    PathsConfig    `yaml:"paths"`
	Docs     DocsConfig     `yaml:"docs"`
	Man      ManConfig      `yaml:"man"`
	HTML     HTMLConfig     `yaml:"html"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Build    BuildConfig    `yaml:"build"`

	dir string // base for relative paths, the config file's directory
}

// PathsConfig is the input and output layout. Relative paths resolve against
// the config file's directory.
type PathsConfig struct {
	Content string `yaml:"content"`
	Nav     string `yaml:"nav"`
	Man     string `yaml:"man"`
	HTML    string `yaml:"html"`
	MD      string `yaml:"md"`
}

// DocsConfig locates the documents with special substitutions.
type DocsConfig struct {
	CommandsDir string `yaml:"commandsDir"` // content-relative, documents get usage and params
	ConfigDoc   string `yaml:"configDoc"`   // content-relative, gets the full option reference
}

// ManConfig defines man page output.
type ManConfig struct {
	Enabled bool   `yaml:"enabled"`
	Date    string `yaml:"date"`   // "auto", "auto:FORMAT", a literal, or empty
	Source  string `yaml:"source"` // .TH source field, default "<PROGRAM>@<version>"
}

// HTMLConfig defines HTML site output.
type HTMLConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Style       string `yaml:"style"`     // stylesheet name
	Template    string `yaml:"template"`  // page template name
	AssetsDir   string `yaml:"assetsDir"` // empty = embedded assets only
	TOCMinDepth int    `yaml:"tocMinDepth"`
	TOCMaxDepth int    `yaml:"tocMaxDepth"`
}

// MarkdownConfig defines expanded markdown output.
type MarkdownConfig struct {
	Enabled bool `yaml:"enabled"`
}

// BuildConfig defines build execution.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Validate checks required fields, ranges and field lengths. Called by
// LoadConfig; callers building a Config by hand should call it too.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Program) == "" {
		return fmt.Errorf("%w: program: required", ErrInvalidConfig)
	}
	if c.Launcher != "" && c.LauncherTarget == "" {
		return fmt.Errorf("%w: launcherTarget: required when launcher is set", ErrInvalidConfig)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"program", c.Program, MaxProgramLength},
		{"launcher", c.Launcher, MaxProgramLength},
		{"launcherTarget", c.LauncherTarget, MaxProgramLength},
		{"version", c.Version, MaxVersionLength},
		{"registry", c.Registry, MaxPathLength},
		{"paths.content", c.Paths.Content, MaxPathLength},
		{"paths.nav", c.Paths.Nav, MaxPathLength},
		{"paths.man", c.Paths.Man, MaxPathLength},
		{"paths.html", c.Paths.HTML, MaxPathLength},
		{"paths.md", c.Paths.MD, MaxPathLength},
		{"docs.commandsDir", c.Docs.CommandsDir, MaxPathLength},
		{"docs.configDoc", c.Docs.ConfigDoc, MaxPathLength},
		{"man.date", c.Man.Date, MaxDateLength},
		{"man.source", c.Man.Source, MaxSourceLength},
		{"html.style", c.HTML.Style, MaxAssetName},
		{"html.template", c.HTML.Template, MaxAssetName},
		{"html.assetsDir", c.HTML.AssetsDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.HTML.TOCMinDepth < 1 || c.HTML.TOCMinDepth > 6 {
		return fmt.Errorf("%w: html.tocMinDepth: must be between 1 and 6, got %d", ErrInvalidConfig, c.HTML.TOCMinDepth)
	}
	if c.HTML.TOCMaxDepth < c.HTML.TOCMinDepth || c.HTML.TOCMaxDepth > 6 {
		return fmt.Errorf("%w: html.tocMaxDepth: must be between tocMinDepth and 6, got %d", ErrInvalidConfig, c.HTML.TOCMaxDepth)
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidConfig, MaxWorkers, c.Build.Workers)
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the npm documentation layout with every output
// enabled. Relative paths resolve against the working directory.
func DefaultConfig() *Config {
	return &Config{
		Program:        "npm",
		Launcher:       "npx",
		LauncherTarget: "exec",
		Registry:       "registry.yaml",
		Paths: PathsConfig{
			Content: pipeline.DefaultContentDir,
			Nav:     pipeline.DefaultNavFile,
			Man:     pipeline.DefaultManDir,
			HTML:    pipeline.DefaultHTMLDir,
			MD:      pipeline.DefaultMarkdownDir,
		},
		Docs: DocsConfig{
			CommandsDir: pipeline.DefaultCommandsDir,
			ConfigDoc:   pipeline.DefaultConfigDoc,
		},
		Man:      ManConfig{Enabled: true, Date: "auto:MMMM YYYY"},
		HTML:     HTMLConfig{Enabled: true, Style: "default", Template: "page", TOCMinDepth: 2, TOCMaxDepth: 3},
		Markdown: MarkdownConfig{Enabled: true},
	}
}

// Dir returns the directory relative paths resolve against. Empty means the
// working directory.
func (c *Config) Dir() string {
	return c.dir
}

// SetDir overrides the base directory for relative paths.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// Resolve makes a configured path absolute against Dir. Empty stays empty.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.dir, filepath.FromSlash(p))
}

// ManSource returns the .TH source field.
func (c *Config) ManSource() string {
	if c.Man.Source != "" {
		return c.Man.Source
	}
	if c.Version == "" {
		return strings.ToUpper(c.Program)
	}
	return strings.ToUpper(c.Program) + "@" + c.Version
}

// LoadConfig loads configuration from a file path or config name. A value
// containing a path separator is a path; anything else is a name searched in
// standard locations. Fields absent from the file keep DefaultConfig values.
// There is no silent fallback when the file is missing.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.dir = filepath.Dir(configPath)
	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// ./<name>.yaml, ./<name>.yml, then the same names under the user config
// directory's go-npmdocs folder.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-npmdocs", name+ext))
		}
	}

	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
