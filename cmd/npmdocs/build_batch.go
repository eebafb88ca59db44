package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	npmdocs "github.com/alnah/go-npmdocs"
	"github.com/alnah/go-npmdocs/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrReadDocument = errors.New("failed to read document")
	ErrWriteOutput  = errors.New("failed to write output")
)

// DocBuilder is the interface for the documentation builder.
type DocBuilder interface {
	Build(ctx context.Context, doc *npmdocs.Document) (*npmdocs.Result, error)
}

// Compile-time interface implementation check.
var _ DocBuilder = (*npmdocs.Builder)(nil)

// outputRoots maps each artifact kind to its output directory.
type outputRoots map[npmdocs.Kind]string

// BuildResult holds the outcome of a single document build.
type BuildResult struct {
	SourcePath string
	Outputs    []string // written files
	Err        error
	Duration   time.Duration
}

// buildBatch builds files concurrently with at most workers goroutines.
// Results keep the order of files.
func buildBatch(ctx context.Context, b DocBuilder, files []DocumentFile, roots outputRoots, workers int) []BuildResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]BuildResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						SourcePath: files[idx].SourcePath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = buildFile(ctx, b, files[idx], roots)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildFile reads, builds and writes one document. Artifacts are written only
// after every format rendered.
func buildFile(ctx context.Context, b DocBuilder, f DocumentFile, roots outputRoots) BuildResult {
	start := time.Now()
	result := BuildResult{SourcePath: f.SourcePath}

	content, err := os.ReadFile(f.SourcePath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadDocument, err)
		result.Duration = time.Since(start)
		return result
	}

	doc, err := npmdocs.ParseDocument(f.RelPath, string(content))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	res, err := b.Build(ctx, doc)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	for _, a := range res.Artifacts {
		root, ok := roots[a.Kind]
		if !ok {
			continue
		}
		out := filepath.Join(root, filepath.FromSlash(a.Path))
		if err := fileutil.WriteFile(out, a.Content); err != nil {
			result.Err = fmt.Errorf("%w: %s: %v", ErrWriteOutput, out, err)
			result.Duration = time.Since(start)
			return result
		}
		result.Outputs = append(result.Outputs, out)
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed builds.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed builds.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs build results and returns the first failure.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.SourcePath, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "Built %s -> %d files (%v)\n", r.SourcePath, len(r.Outputs), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Built %s\n", r.SourcePath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d documents failed: %w", summary.Failed, len(results), firstErr)
	}
	return nil
}
