package main

import (
	"strconv"
	"strings"

	"github.com/alnah/go-npmdocs/internal/config"
	"github.com/rs/zerolog"
)

// envPrefix marks the variables the CLI reads.
const envPrefix = "NPMDOCS_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // NPMDOCS_CONFIG: config file path
	Registry   string // NPMDOCS_REGISTRY: registry file path
	Version    string // NPMDOCS_VERSION: substituted for @VERSION@
	Workers    int    // NPMDOCS_WORKERS: parallel workers
	ManDate    string // NPMDOCS_MAN_DATE: man page date
}

// knownEnvVars lists valid NPMDOCS_* environment variables.
var knownEnvVars = map[string]bool{
	"NPMDOCS_CONFIG":   true,
	"NPMDOCS_REGISTRY": true,
	"NPMDOCS_VERSION":  true,
	"NPMDOCS_WORKERS":  true,
	"NPMDOCS_MAN_DATE": true,
}

// loadEnvConfig reads configuration from environment variables. Invalid worker
// counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("NPMDOCS_CONFIG"),
		Registry:   getenv("NPMDOCS_REGISTRY"),
		Version:    getenv("NPMDOCS_VERSION"),
		ManDate:    getenv("NPMDOCS_MAN_DATE"),
	}

	if workers := getenv("NPMDOCS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning per unrecognized NPMDOCS_* variable.
func warnUnknownEnvVars(environ []string, logger zerolog.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overlays environment values on the loaded config. Flags are
// applied afterwards by mergeFlags, giving flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Registry != "" {
		cfg.Registry = env.Registry
	}
	if env.Version != "" {
		cfg.Version = env.Version
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
	if env.ManDate != "" {
		cfg.Man.Date = env.ManDate
	}
}
