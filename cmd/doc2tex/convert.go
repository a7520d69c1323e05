package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	doc2tex "github.com/neslang-05/LaTeX-Convertor"
	"github.com/neslang-05/LaTeX-Convertor/internal/config"
	"github.com/neslang-05/LaTeX-Convertor/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// Converter is the interface for the conversion library.
type Converter interface {
	Convert(ctx context.Context, input doc2tex.Input) (*doc2tex.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*doc2tex.Converter)(nil)

// conversionParams groups parameters shared across a batch.
type conversionParams struct {
	settings *doc2tex.Settings
	title    string // empty = per-file basename
	author   string
	date     string // already resolved
	timeout  time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Read environment variables and warn about likely typos
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Load configuration (flag > DOC2TEX_CONFIG)
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Fill config gaps from environment, then let CLI flags win
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if flags.common.verbose {
		if dump, err := cfg.Dump(); err == nil {
			fmt.Fprintf(env.Stderr, "resolved configuration:\n%s\n", dump)
		}
	}

	// Resolve "auto" date once for the entire batch
	resolvedDate, err := doc2tex.ResolveDate(cfg.Meta.Date, env.Now())
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve output destination
	outputDir := resolveOutputDir(flags.output, cfg)

	// Discover files to convert
	files, err := discoverFiles(inputPath, outputDir, flags.format)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no convertible documents found in %s", inputPath)
	}

	// Resolve per-file timeout
	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout, cfg.Timeout)
	if err != nil {
		return err
	}

	// One converter serves the whole batch; conversions are stateless
	conv, err := buildConverter(cfg)
	if err != nil {
		if errors.Is(err, doc2tex.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(availableStyleNames(cfg)))
		}
		return err
	}

	params := &conversionParams{
		settings: buildSettings(cfg),
		title:    cfg.Meta.Title,
		author:   cfg.Meta.Author,
		date:     resolvedDate,
		timeout:  timeout,
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, conv, workers, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		// A lone failure keeps its cause so the exit code stays semantic.
		if len(results) == 1 {
			return fmt.Errorf("conversion failed: %w", results[0].Err)
		}
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Document shell flags
	if flags.document.class != "" {
		cfg.Document.Class = flags.document.class
	}
	if flags.document.fontSize != "" {
		cfg.Document.FontSize = flags.document.fontSize
	}
	if flags.document.margins != "" {
		cfg.Document.Margins = flags.document.margins
	}
	if len(flags.document.packages) > 0 {
		cfg.Document.Packages = flags.document.packages
	}
	if flags.document.preamble != "" {
		cfg.Document.Preamble = flags.document.preamble
	}

	// Title block flags
	if flags.meta.title != "" {
		cfg.Meta.Title = flags.meta.title
	}
	if flags.meta.author != "" {
		cfg.Meta.Author = flags.meta.author
	}
	if flags.meta.date != "" {
		cfg.Meta.Date = flags.meta.date
	}

	// Style flags
	if flags.style.listingStyle != "" {
		cfg.Listings.Style = flags.style.listingStyle
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output destination from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildConverter creates the shared converter from config.
func buildConverter(cfg *config.Config) (*doc2tex.Converter, error) {
	var opts []doc2tex.Option
	if cfg.Assets.BasePath != "" {
		opts = append(opts, doc2tex.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Listings.Style != "" {
		opts = append(opts, doc2tex.WithListingStyle(cfg.Listings.Style))
	}
	return doc2tex.NewConverter(opts...)
}

// buildSettings creates doc2tex.Settings from config.
// Returns nil when nothing is configured so library defaults apply.
func buildSettings(cfg *config.Config) *doc2tex.Settings {
	d := cfg.Document
	if d.Class == "" && d.FontSize == "" && d.Margins == "" && len(d.Packages) == 0 && d.Preamble == "" {
		return nil
	}
	return &doc2tex.Settings{
		Class:          d.Class,
		FontSize:       d.FontSize,
		Margins:        d.Margins,
		ExtraPackages:  d.Packages,
		CustomPreamble: d.Preamble,
	}
}

// resolveTimeout determines the per-file timeout.
// Priority: flag > DOC2TEX_TIMEOUT > config. Zero means no timeout.
func resolveTimeout(flagValue string, envTimeout time.Duration, cfgValue string) (time.Duration, error) {
	value := flagValue
	if value == "" {
		if envTimeout > 0 {
			return envTimeout, nil
		}
		value = cfgValue
	}
	if value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", value)
	}
	return d, nil
}
