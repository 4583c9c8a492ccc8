package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hrodrigues/mrpcritic/pkg/application/services"
	domainservices "github.com/hrodrigues/mrpcritic/pkg/domain/services"
	"github.com/hrodrigues/mrpcritic/pkg/infrastructure/export"
	"github.com/hrodrigues/mrpcritic/pkg/infrastructure/repositories/histlog"
	"github.com/hrodrigues/mrpcritic/pkg/infrastructure/worksheets"
	csvloader "github.com/hrodrigues/mrpcritic/pkg/infrastructure/worksheets/csv"
	xlsxloader "github.com/hrodrigues/mrpcritic/pkg/infrastructure/worksheets/xlsx"
	"github.com/hrodrigues/mrpcritic/pkg/interfaces/cli/output"
)

// Config holds configuration for the analyze command
type Config struct {
	InputFile       string
	SheetName       string
	OutputDir       string
	ExportFile      string
	HistoryFile     string
	Format          string
	IncludeInactive bool
	Verbose         bool
	Help            bool
}

// AnalyzeCommand runs one analysis over a worksheet and renders the result
type AnalyzeCommand struct {
	config Config
}

// NewAnalyzeCommand creates a new analyze command with the given configuration
func NewAnalyzeCommand(config Config) *AnalyzeCommand {
	return &AnalyzeCommand{config: config}
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	loader := c.resolveLoader()
	rows, err := loader.LoadRows(c.config.InputFile, c.config.SheetName)
	if err != nil {
		return fmt.Errorf("failed to load worksheet: %w", err)
	}
	log.Debug().Int("rows", len(rows)).Str("file", c.config.InputFile).Msg("worksheet loaded")

	history, err := histlog.Open(c.config.HistoryFile)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer history.Close()

	normalizer := domainservices.NewNormalizerWithOptions(c.config.IncludeInactive)
	analysis := services.NewAnalysisService(normalizer, history)

	started := time.Now()
	result, err := analysis.Analyze(ctx, rows, filepath.Base(c.config.InputFile))
	if err != nil {
		return err
	}

	if err := output.Generate(result, output.Config{
		Format:       c.config.Format,
		OutputDir:    c.config.OutputDir,
		Verbose:      c.config.Verbose,
		AnalysisTime: time.Since(started),
	}); err != nil {
		return fmt.Errorf("failed to generate output: %w", err)
	}

	if c.config.ExportFile != "" {
		writer := export.NewWriter()
		if err := writer.Write(result, c.config.ExportFile); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		copyPath, err := writer.WriteHistoryCopy(result, c.config.ExportFile)
		if err != nil {
			return fmt.Errorf("failed to write export history copy: %w", err)
		}
		if c.config.Verbose {
			fmt.Printf("💾 Workbook exported to: %s (copy: %s)\n", c.config.ExportFile, copyPath)
		}
	}

	return nil
}

func (c *AnalyzeCommand) validateInputs() error {
	if c.config.InputFile == "" {
		return fmt.Errorf("input file is required (use -input)")
	}
	if c.config.SheetName == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}
	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported format %q (expected text, json, or csv)", c.config.Format)
	}
	return nil
}

// resolveLoader picks the loader by file extension; anything that is not a
// CSV is treated as an xlsx workbook.
func (c *AnalyzeCommand) resolveLoader() worksheets.RowLoader {
	if strings.EqualFold(filepath.Ext(c.config.InputFile), ".csv") {
		return csvloader.NewLoader()
	}
	return xlsxloader.NewLoader()
}

func (c *AnalyzeCommand) showHelp() {
	fmt.Println(`mrpcritic - MRP critical-item analyzer

Analyzes an MRP worksheet, classifies every item as OK, WARNING, or CRITICAL
against its demand and safety stock, and suggests reorder quantities.

Usage:
  mrpcritic -input planilha.xlsx [options]

Options:
  -input FILE        Worksheet to analyze (.xlsx or .csv)
  -sheet NAME        Sheet name inside the workbook (default "Cálculo MRP")
  -format FORMAT     Output format: text, json, csv (default "text")
  -output DIR        Directory for generated output files (default: stdout)
  -export FILE       Also write a formatted critical-items workbook
  -history FILE      History log location (default "~/.mrpcritic/history.jsonl")
  -include-inactive  Analyze rows marked "inativo" instead of skipping them
  -list-history      List recorded runs and exit
  -compare A,B       Compare two recorded runs by id and exit
  -verbose           Verbose output
  -help              Show this help`)
}
