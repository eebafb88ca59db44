package npmdocs

import (
	"errors"

	"github.com/alnah/go-npmdocs/internal/pipeline"
	"github.com/alnah/go-npmdocs/internal/registry"
)

// MissingPlaceholderError reports a document lacking a tag that one of its
// substitutions requires.
type MissingPlaceholderError = pipeline.MissingPlaceholderError

// Sentinel errors for library operations.
var (
	ErrNilRegistry = errors.New("registry cannot be nil")
	ErrNilDocument = errors.New("document cannot be nil")
	ErrEmptyPath   = errors.New("document path cannot be empty")

	// Template drift.
	ErrMissingPlaceholder = pipeline.ErrMissingPlaceholder

	// Registry lookups and loading.
	ErrUnknownCommand = registry.ErrUnknownCommand
	ErrUnknownOption  = registry.ErrUnknownOption
	ErrRegistryParse  = registry.ErrRegistryParse
	ErrRegistryRead   = registry.ErrRegistryRead

	// Document parsing and rendering.
	ErrFrontmatter    = pipeline.ErrFrontmatter
	ErrManRender      = pipeline.ErrManRender
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPageRender     = pipeline.ErrPageRender
	ErrNav            = pipeline.ErrNav

	// ErrInvalidAssetPath indicates the custom assets directory is unusable.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
