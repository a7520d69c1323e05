package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	doc2tex "github.com/neslang-05/LaTeX-Convertor"
	"github.com/neslang-05/LaTeX-Convertor/internal/assets"
	"github.com/neslang-05/LaTeX-Convertor/internal/config"
	"github.com/neslang-05/LaTeX-Convertor/internal/fileutil"
	"github.com/neslang-05/LaTeX-Convertor/internal/hints"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// ConversionResult holds the outcome of a single file conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Blocks     int
	Err        error
	Duration   time.Duration
}

// convertBatch converts files concurrently using a worker pool.
// All workers share one converter; conversions are stateless.
func convertBatch(ctx context.Context, conv Converter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				// Short-circuit remaining jobs on cancellation
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
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

// convertFile converts a single document to LaTeX and writes the result.
func convertFile(ctx context.Context, conv Converter, file FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  file.InputPath,
		OutputPath: file.OutputPath,
	}

	if params.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.timeout)
		defer cancel()
	}

	source, err := os.ReadFile(file.InputPath) // #nosec G304 -- path comes from CLI input discovery
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	converted, err := conv.Convert(ctx, doc2tex.Input{
		Source:   source,
		Format:   file.Format,
		Settings: params.settings,
		Meta:     buildMetadata(params, file.InputPath),
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(file.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(file.OutputPath, converted.TeX, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Blocks = converted.Blocks
	result.Duration = time.Since(start)
	return result
}

// buildMetadata creates per-file metadata. An unset title falls back to
// the input filename without its extension.
func buildMetadata(params *conversionParams, inputPath string) *doc2tex.Metadata {
	title := params.title
	if title == "" {
		base := filepath.Base(inputPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &doc2tex.Metadata{
		Title:  title,
		Author: params.author,
		Date:   params.date,
	}
}

// ResultSummary summarizes a batch of conversion results.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies successes and failures.
func countResults(results []ConversionResult) ResultSummary {
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

// printResultsWithWriter prints conversion results and returns the
// failure count.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d blocks, %v)\n", r.InputPath, r.OutputPath, r.Blocks, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.Blocks == 0 {
			fmt.Fprintf(env.Stderr, "warning: %s produced no content blocks\n", r.InputPath)
		}
	}

	if len(results) > 1 && !quiet {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// hintFor returns a recovery hint for a conversion error, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, doc2tex.ErrDocxParse):
		return hints.ForDocxExtraction()
	case errors.Is(err, doc2tex.ErrPDFParse):
		return hints.ForPDFExtraction()
	case errors.Is(err, doc2tex.ErrUnsupportedFormat), errors.Is(err, ErrInvalidExtension):
		return hints.ForUnsupportedFormat(supportedExtensionList())
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// availableStyleNames lists selectable listing styles for hint text,
// merging custom asset styles when a base path is configured.
func availableStyleNames(cfg *config.Config) []string {
	if cfg.Assets.BasePath != "" {
		if resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath); err == nil {
			if names, err := resolver.StyleNames(); err == nil {
				return names
			}
		}
	}
	names, err := assets.StyleNames()
	if err != nil {
		return nil
	}
	return names
}
