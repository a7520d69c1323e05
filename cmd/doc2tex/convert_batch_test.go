package main

// Notes:
// - convertBatch: we test concurrency with a stub converter, result ordering,
//   partial failure, and cancellation short-circuiting.
// - convertFile: we test the read-convert-write path against t.TempDir,
//   including output directory creation and the per-file timeout context.
// - printResultsWithWriter: we test quiet/verbose modes, hints on failures,
//   the zero-block warning, and the batch summary line.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	doc2tex "github.com/neslang-05/LaTeX-Convertor"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Stub converter
// ---------------------------------------------------------------------------

// stubConverter is a Converter with a programmable response.
type stubConverter struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, input doc2tex.Input) (*doc2tex.Result, error)
}

func (s *stubConverter) Convert(ctx context.Context, input doc2tex.Input) (*doc2tex.Result, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.fn != nil {
		return s.fn(ctx, input)
	}
	return &doc2tex.Result{TeX: []byte("\\documentclass{article}\n"), Blocks: 1}, nil
}

func (s *stubConverter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// batchFixture writes n markdown files and returns their FileToConvert
// entries with outputs in the same directory.
func batchFixture(t *testing.T, n int) []FileToConvert {
	t.Helper()
	dir := t.TempDir()

	files := make([]FileToConvert, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("doc%d.md", i)
		input := writeTestFile(t, dir, name, "# Heading\n\nBody.\n")
		files = append(files, FileToConvert{
			InputPath:  input,
			OutputPath: strings.TrimSuffix(input, ".md") + ".tex",
			Format:     doc2tex.FormatMarkdown,
		})
	}
	return files
}

// ---------------------------------------------------------------------------
// TestConvertBatch_AllSucceed - Ordered results and written outputs
// ---------------------------------------------------------------------------

func TestConvertBatch_AllSucceed(t *testing.T) {
	t.Parallel()

	files := batchFixture(t, 3)
	stub := &stubConverter{}

	results := convertBatch(context.Background(), stub, 2, files, &conversionParams{})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("result %d failed: %v", i, r.Err)
		}
		// Results keep input order regardless of worker scheduling
		if r.InputPath != files[i].InputPath {
			t.Errorf("result %d input = %q, want %q", i, r.InputPath, files[i].InputPath)
		}
		if _, err := os.Stat(r.OutputPath); err != nil {
			t.Errorf("output %s not written: %v", r.OutputPath, err)
		}
	}
	if stub.callCount() != 3 {
		t.Errorf("converter called %d times, want 3", stub.callCount())
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch_PartialFailure - Mixed success and failure
// ---------------------------------------------------------------------------

func TestConvertBatch_PartialFailure(t *testing.T) {
	t.Parallel()

	files := batchFixture(t, 3)
	failInput := files[1].InputPath

	stub := &stubConverter{
		fn: func(_ context.Context, input doc2tex.Input) (*doc2tex.Result, error) {
			// The stub keys failure on file content written per fixture;
			// doc1.md gets distinct content below.
			if strings.Contains(string(input.Source), "FAIL") {
				return nil, fmt.Errorf("%w: boom", doc2tex.ErrDocxParse)
			}
			return &doc2tex.Result{TeX: []byte("ok"), Blocks: 1}, nil
		},
	}
	if err := os.WriteFile(failInput, []byte("FAIL"), 0o600); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	results := convertBatch(context.Background(), stub, 2, files, &conversionParams{})

	summary := countResults(results)
	if summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 2 succeeded 1 failed", summary)
	}
	if results[1].Err == nil {
		t.Error("result 1 should carry the failure")
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch_ContextCanceled - Cancellation short-circuits jobs
// ---------------------------------------------------------------------------

func TestConvertBatch_ContextCanceled(t *testing.T) {
	t.Parallel()

	files := batchFixture(t, 4)
	stub := &stubConverter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := convertBatch(ctx, stub, 2, files, &conversionParams{})

	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result %d err = %v, want context.Canceled", i, r.Err)
		}
	}
	if stub.callCount() != 0 {
		t.Errorf("converter called %d times after cancel, want 0", stub.callCount())
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch_NoFiles - Empty input
// ---------------------------------------------------------------------------

func TestConvertBatch_NoFiles(t *testing.T) {
	t.Parallel()

	results := convertBatch(context.Background(), &stubConverter{}, 4, nil, &conversionParams{})
	if results != nil {
		t.Errorf("expected nil results for empty batch, got %v", results)
	}
}

// ---------------------------------------------------------------------------
// TestConvertFile_WritesOutput - Successful single conversion
// ---------------------------------------------------------------------------

func TestConvertFile_WritesOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTestFile(t, dir, "doc.md", "# Title")
	output := filepath.Join(dir, "doc.tex")

	stub := &stubConverter{
		fn: func(_ context.Context, _ doc2tex.Input) (*doc2tex.Result, error) {
			return &doc2tex.Result{TeX: []byte("\\section{Title}\n"), Blocks: 2}, nil
		},
	}

	result := convertFile(context.Background(), stub, FileToConvert{
		InputPath:  input,
		OutputPath: output,
		Format:     doc2tex.FormatMarkdown,
	}, &conversionParams{})

	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Blocks != 2 {
		t.Errorf("Blocks = %d, want 2", result.Blocks)
	}
	if result.Duration <= 0 {
		t.Error("Duration should be positive")
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(content) != "\\section{Title}\n" {
		t.Errorf("output content = %q", content)
	}
}

// ---------------------------------------------------------------------------
// TestConvertFile_CreatesOutputDirectory - Nested output path
// ---------------------------------------------------------------------------

func TestConvertFile_CreatesOutputDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTestFile(t, dir, "doc.md", "# Title")
	output := filepath.Join(dir, "out", "nested", "doc.tex")

	result := convertFile(context.Background(), &stubConverter{}, FileToConvert{
		InputPath:  input,
		OutputPath: output,
		Format:     doc2tex.FormatMarkdown,
	}, &conversionParams{})

	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not created: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConvertFile_ReadError - Missing input file
// ---------------------------------------------------------------------------

func TestConvertFile_ReadError(t *testing.T) {
	t.Parallel()

	result := convertFile(context.Background(), &stubConverter{}, FileToConvert{
		InputPath:  "/nonexistent/doc.md",
		OutputPath: filepath.Join(t.TempDir(), "doc.tex"),
		Format:     doc2tex.FormatMarkdown,
	}, &conversionParams{})

	if !errors.Is(result.Err, ErrReadInput) {
		t.Errorf("err = %v, want ErrReadInput", result.Err)
	}
}

// ---------------------------------------------------------------------------
// TestConvertFile_TimeoutContext - Per-file deadline propagation
// ---------------------------------------------------------------------------

func TestConvertFile_TimeoutContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTestFile(t, dir, "doc.md", "# Title")

	var sawDeadline bool
	stub := &stubConverter{
		fn: func(ctx context.Context, _ doc2tex.Input) (*doc2tex.Result, error) {
			_, sawDeadline = ctx.Deadline()
			return &doc2tex.Result{TeX: []byte("ok"), Blocks: 1}, nil
		},
	}

	result := convertFile(context.Background(), stub, FileToConvert{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "doc.tex"),
		Format:     doc2tex.FormatMarkdown,
	}, &conversionParams{timeout: time.Minute})

	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if !sawDeadline {
		t.Error("converter context should carry the per-file deadline")
	}
}

// ---------------------------------------------------------------------------
// TestCountResults - Success and failure tallies
// ---------------------------------------------------------------------------

func TestCountResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md"},
		{InputPath: "b.md", Err: errors.New("boom")},
		{InputPath: "c.md"},
	}

	summary := countResults(results)
	if summary.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", summary.Succeeded)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}
}

// ---------------------------------------------------------------------------
// TestPrintResultsWithWriter - Output modes
// ---------------------------------------------------------------------------

func TestPrintResultsWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("default prints Created lines", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		results := []ConversionResult{
			{InputPath: "a.md", OutputPath: "a.tex", Blocks: 3},
		}

		failed := printResultsWithWriter(results, false, false, env)

		if failed != 0 {
			t.Errorf("failed = %d, want 0", failed)
		}
		if !strings.Contains(stdout.String(), "Created a.tex") {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
	})

	t.Run("verbose prints timing and block counts", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		results := []ConversionResult{
			{InputPath: "a.md", OutputPath: "a.tex", Blocks: 3, Duration: 12 * time.Millisecond},
		}

		printResultsWithWriter(results, false, true, env)

		out := stdout.String()
		if !strings.Contains(out, "a.md -> a.tex") {
			t.Errorf("verbose output missing arrow line: %q", out)
		}
		if !strings.Contains(out, "3 blocks") {
			t.Errorf("verbose output missing block count: %q", out)
		}
	})

	t.Run("quiet suppresses success output", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		results := []ConversionResult{
			{InputPath: "a.md", OutputPath: "a.tex", Blocks: 3},
			{InputPath: "b.md", OutputPath: "b.tex", Blocks: 1},
		}

		printResultsWithWriter(results, true, false, env)

		if stdout.String() != "" {
			t.Errorf("quiet stdout should be empty, got %q", stdout.String())
		}
	})

	t.Run("failures print with hints even when quiet", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		results := []ConversionResult{
			{InputPath: "a.docx", Err: fmt.Errorf("%w: bad zip", doc2tex.ErrDocxParse)},
		}

		failed := printResultsWithWriter(results, true, false, env)

		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		out := stderr.String()
		if !strings.Contains(out, "FAILED a.docx") {
			t.Errorf("stderr missing FAILED line: %q", out)
		}
		if !strings.Contains(out, "hint:") {
			t.Errorf("stderr missing hint: %q", out)
		}
	})

	t.Run("zero blocks warns on stderr", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		results := []ConversionResult{
			{InputPath: "empty.md", OutputPath: "empty.tex", Blocks: 0},
		}

		printResultsWithWriter(results, false, false, env)

		if !strings.Contains(stderr.String(), "produced no content blocks") {
			t.Errorf("stderr missing zero-block warning: %q", stderr.String())
		}
	})

	t.Run("multi-file batch prints summary", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		results := []ConversionResult{
			{InputPath: "a.md", OutputPath: "a.tex", Blocks: 1},
			{InputPath: "b.md", Err: errors.New("boom")},
		}

		printResultsWithWriter(results, false, false, env)

		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout missing summary: %q", stdout.String())
		}
	})

	t.Run("single file prints no summary", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		results := []ConversionResult{
			{InputPath: "a.md", OutputPath: "a.tex", Blocks: 1},
		}

		printResultsWithWriter(results, false, false, env)

		if strings.Contains(stdout.String(), "succeeded") {
			t.Errorf("unexpected summary for single file: %q", stdout.String())
		}
	})
}
