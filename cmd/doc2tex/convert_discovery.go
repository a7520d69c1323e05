package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	doc2tex "github.com/neslang-05/LaTeX-Convertor"
)

var (
	ErrInvalidExtension   = errors.New("unsupported file extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// maxWorkers caps batch concurrency. Conversions are CPU-bound, so
// piling up goroutines past this point buys nothing.
const maxWorkers = 32

// supportedExtensions maps input file extensions to format tags.
var supportedExtensions = map[string]string{
	".docx":     doc2tex.FormatDocx,
	".pdf":      doc2tex.FormatPDF,
	".md":       doc2tex.FormatMarkdown,
	".markdown": doc2tex.FormatMarkdown,
	".txt":      doc2tex.FormatText,
}

// supportedExtensionList returns the supported extensions, sorted.
func supportedExtensionList() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// FileToConvert pairs an input document with its output path and
// detected format.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Format     string
}

// discoverFiles finds documents to convert from a file or directory path.
// For a single file, formatOverride skips extension detection; directory
// scans always detect by extension and skip unsupported files.
func discoverFiles(inputPath, outputDir, formatOverride string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		format := formatOverride
		if format == "" {
			format, err = detectFormat(inputPath)
			if err != nil {
				return nil, err
			}
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, ""),
			Format:     format,
		}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		format, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputPath),
			Format:     format,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// detectFormat maps a file extension to its format tag.
func detectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := supportedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrInvalidExtension, ext, strings.Join(supportedExtensionList(), ", "))
	}
	return format, nil
}

// resolveOutputPath determines where the .tex output for inputPath goes.
// With no outputDir the output sits next to the input. An outputDir
// ending in .tex names the output file directly. When baseInputDir is
// set (directory scans), the input's relative layout is mirrored under
// outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".tex")
	}

	if strings.HasSuffix(outputDir, ".tex") {
		return outputDir
	}

	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel), base+".tex")
		}
	}

	return filepath.Join(outputDir, base+".tex")
}

// validateWorkers checks the --workers flag value. Zero means auto.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0; 0 selects automatically)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// resolveWorkers determines batch concurrency.
// Priority: flag > DOC2TEX_WORKERS > GOMAXPROCS.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 && envWorkers <= maxWorkers {
		return envWorkers
	}

	// GOMAXPROCS reflects container CPU quotas via automaxprocs.
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
