package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/avrsize/internal/analysis"
	"github.com/nao1215/avrsize/internal/config"
	"github.com/nao1215/avrsize/internal/log"
	"github.com/nao1215/avrsize/internal/model"
	"github.com/nao1215/avrsize/internal/pipeline"
	"github.com/nao1215/avrsize/internal/report"
)

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
		cfg.ConfigFilePath = configPath
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.ELFFile, err = flags.GetString("elf-file")
	if err != nil {
		return nil, err
	}

	// Budgets and error mode may come from the file, so only an explicit
	// flag overrides them.
	if flags.Changed("max-program-memory") {
		if cfg.MaxProgramMemory, err = flags.GetUint64("max-program-memory"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-dynamic-memory") {
		if cfg.MaxDynamicMemory, err = flags.GetUint64("max-dynamic-memory"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("error") {
		if cfg.ErrorOnOverflow, err = flags.GetBool("error"); err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = flags.GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = flags.GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose, err = flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on the configuration.
// JSON reports are paired with JSON logs so that both streams are machine readable.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.JSONReport {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// runCheck analyses the configured ELF file, writes the report and applies
// the error mode policy.
// Nothing is written when the file cannot be read or parsed.
func runCheck(ctx context.Context, stdout io.Writer, cfg *config.Config, logger *slog.Logger) error {
	rep := model.NewReport(cfg.ELFFile)

	p := pipeline.DefaultPipeline(cfg.Budget(), pipeline.WithLogger(logger))
	logger.Debug("checking ELF file", "file", cfg.ELFFile, "steps", p.StepNames())
	if err := p.Execute(ctx, rep); err != nil {
		return err
	}

	if err := outputReport(stdout, cfg, rep); err != nil {
		return err
	}

	if !cfg.ErrorOnOverflow {
		return nil
	}
	return analysis.Check(rep)
}

// outputReport outputs the report in the requested format.
func outputReport(stdout io.Writer, cfg *config.Config, rep *model.Report) error {
	output := stdout
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	if _, err := newReportWriter(output, cfg).Write(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter returns the writer for the configured report format.
func newReportWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithVersion(getVersion()), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output, report.WithCharts())
	default:
		return report.NewTextWriter(output)
	}
}
