package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hrodrigues/mrpcritic/pkg/application/dto"
	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format       string
	OutputDir    string
	Verbose      bool
	AnalysisTime time.Duration
}

// Generate renders an analysis result in the specified format
func Generate(result *entities.AnalysisResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *entities.AnalysisResult, config Config) error {
	fmt.Printf("📊 MRP Critical-Item Analysis\n")
	fmt.Printf("=============================\n\n")

	fmt.Printf("Source: %s\n", result.SourceID)
	fmt.Printf("Run: %s at %s\n", result.RunID, result.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("Items: %d (OK: %d, Warning: %d, Critical: %d)\n",
		result.Summary.ItemCount(),
		result.Summary.OKCount,
		result.Summary.WarningCount,
		result.Summary.CriticalCount)
	fmt.Printf("Total Suggested Order Qty: %g\n", result.Summary.TotalSuggestedQty)
	if config.AnalysisTime > 0 {
		fmt.Printf("Analysis Time: %v\n", config.AnalysisTime)
	}
	fmt.Println()

	points := dto.ChartPoints(result)
	if len(points) > 0 {
		fmt.Printf("⚠️  Items To Reorder:\n")
		fmt.Printf("%-15s %-12s\n", "Code", "Qty Needed")
		fmt.Printf("%-15s %-12s\n", "---------------", "------------")
		for _, point := range points {
			fmt.Printf("%-15s %-12g\n", point.Code, point.SuggestedQty)
		}
		fmt.Println()
	}

	rows := dto.BuildExportRows(result)
	fmt.Printf("📋 Classified Items:\n")
	fmt.Printf("%-15s %-30s %-20s %-12s %-12s %-14s %-10s\n",
		"Código", "Descrição", "Fornecedor", "Estoque", "Demanda", "Qtd. Necess.", "Status")
	fmt.Printf("%-15s %-30s %-20s %-12s %-12s %-14s %-10s\n",
		"---------------", "------------------------------", "--------------------",
		"------------", "------------", "--------------", "----------")
	for _, row := range rows {
		fmt.Printf("%-15s %-30s %-20s %-12g %-12g %-14g %-10s\n",
			row.Code,
			truncate(row.Description, 30),
			truncate(row.Supplier, 20),
			row.AvailableStock,
			row.Demand,
			row.SuggestedQty,
			row.StatusLabel)
	}
	fmt.Println()

	if len(result.Errors) > 0 {
		fmt.Printf("❌ Rows excluded during normalization: %d\n", len(result.Errors))
		for i := range result.Errors {
			fmt.Printf("  %s\n", result.Errors[i].Error())
		}
		fmt.Println()
	}

	if config.Verbose && len(result.Warnings) > 0 {
		fmt.Printf("⚠️  Warnings: %d\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			fmt.Printf("  %s\n", warning.String())
		}
		fmt.Println()
	}

	return nil
}

// jsonResult is the serializable shape of an analysis run.
type jsonResult struct {
	RunID       string           `json:"run_id"`
	SourceID    string           `json:"source_id"`
	Timestamp   time.Time        `json:"timestamp"`
	Summary     entities.Summary `json:"summary"`
	Items       []dto.ExportRow  `json:"items"`
	ChartPoints []dto.ChartPoint `json:"chart_points"`
	Errors      []string         `json:"errors,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *entities.AnalysisResult, config Config) error {
	payload := jsonResult{
		RunID:       result.RunID.String(),
		SourceID:    result.SourceID,
		Timestamp:   result.Timestamp,
		Summary:     result.Summary,
		Items:       dto.BuildExportRows(result),
		ChartPoints: dto.ChartPoints(result),
	}
	for i := range result.Errors {
		payload.Errors = append(payload.Errors, result.Errors[i].Error())
	}
	for _, warning := range result.Warnings {
		payload.Warnings = append(payload.Warnings, warning.String())
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "critical_items.json")
	if err := os.WriteFile(filename, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the export rows as CSV
func generateCSVOutput(result *entities.AnalysisResult, config Config) error {
	out := os.Stdout
	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "critical_items.csv")
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer file.Close()
		out = file
		if config.Verbose {
			fmt.Printf("💾 CSV results saved to: %s\n", filename)
		}
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(dto.ExportHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range dto.BuildExportRows(result) {
		record := []string{
			row.Code,
			row.Description,
			row.Supplier,
			formatQty(row.AvailableStock),
			formatQty(row.Demand),
			formatQty(row.SuggestedQty),
			row.StatusLabel,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
