package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-npmdocs/internal/pipeline"
)

// Sentinel errors for document discovery.
var (
	ErrNoDocuments  = errors.New("no markdown documents found")
	ErrNotDirectory = errors.New("content path is not a directory")
)

// DocumentFile is a discovered source document.
type DocumentFile struct {
	SourcePath string // filesystem path
	RelPath    string // slash separated path relative to the content root
}

// discoverDocuments finds every markdown document under contentDir, in
// lexical order. Paths listed in skip are ignored.
func discoverDocuments(contentDir string, skip ...string) ([]DocumentFile, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, contentDir)
	}

	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		if p != "" {
			skipped[filepath.Clean(p)] = true
		}
	}

	var files []DocumentFile
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != contentDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != pipeline.DocExt || skipped[filepath.Clean(path)] {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		files = append(files, DocumentFile{SourcePath: path, RelPath: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, contentDir)
	}
	return files, nil
}
