package main

import (
	"errors"
	"os"

	npmdocs "github.com/alnah/go-npmdocs"
	"github.com/alnah/go-npmdocs/internal/assets"
	"github.com/alnah/go-npmdocs/internal/config"
	"github.com/alnah/go-npmdocs/internal/dateutil"
	"github.com/alnah/go-npmdocs/internal/hints"
)

// Exit codes for the npmdocs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every document built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or registry
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitDrift   = 4 // A template lost a placeholder or names an unknown command/option
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Template drift (exit 4)
	if errors.Is(err, npmdocs.ErrMissingPlaceholder) ||
		errors.Is(err, npmdocs.ErrUnknownCommand) ||
		errors.Is(err, npmdocs.ErrUnknownOption) {
		return ExitDrift
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, npmdocs.ErrRegistryRead) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoDocuments) ||
		errors.Is(err, ErrNotDirectory) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, npmdocs.ErrRegistryParse) ||
		errors.Is(err, npmdocs.ErrNav) ||
		errors.Is(err, npmdocs.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, dateutil.ErrInvalidEpoch) {
		return ExitUsage
	}

	return ExitGeneral
}

// formatError appends an actionable hint to err's message when one applies.
func formatError(err error) string {
	msg := err.Error()

	var missing *npmdocs.MissingPlaceholderError
	switch {
	case errors.As(err, &missing):
		return msg + hints.ForMissingPlaceholder(missing.Placeholder)
	case errors.Is(err, npmdocs.ErrUnknownCommand):
		return msg + hints.ForUnknownCommand()
	case errors.Is(err, npmdocs.ErrUnknownOption):
		return msg + hints.ForUnknownOption()
	case errors.Is(err, config.ErrConfigNotFound):
		return msg + hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, npmdocs.ErrRegistryRead):
		return msg + hints.ForRegistryNotFound()
	case errors.Is(err, ErrWriteOutput):
		return msg + hints.ForOutputDirectory()
	}
	return msg
}
