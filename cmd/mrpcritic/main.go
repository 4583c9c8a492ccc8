package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hrodrigues/mrpcritic/pkg/interfaces/cli/commands"
)

func main() {
	// Environment defaults come from a .env file when present; flags win.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	var (
		inputFile = flag.String("input", "", "Path to the MRP worksheet (.xlsx or .csv)")
		sheetName = flag.String(
			"sheet",
			getEnv("MRP_SHEET_NAME", "Cálculo MRP"),
			"Sheet name inside the workbook",
		)
		format          = flag.String("format", "text", "Output format: text, json, csv")
		outputDir       = flag.String("output", "", "Output directory for generated files (optional)")
		exportFile      = flag.String("export", "", "Write a formatted critical-items workbook to this path")
		historyFile     = flag.String("history", getEnv("MRP_HISTORY_FILE", defaultHistoryFile()), "History log location")
		includeInactive = flag.Bool(
			"include-inactive",
			getEnvBool("MRP_INCLUDE_INACTIVE", false),
			"Analyze rows marked inativo instead of skipping them",
		)
		listHistory = flag.Bool("list-history", false, "List recorded analysis runs")
		compare     = flag.String("compare", "", "Compare two recorded runs: -compare beforeID,afterID")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()
	setupLogging(getEnv("MRP_LOG_LEVEL", "info"), *verbose)

	ctx := context.Background()

	if *listHistory || *compare != "" {
		cmd := commands.NewHistoryCommand(commands.HistoryConfig{
			HistoryFile: *historyFile,
			List:        *listHistory,
			Compare:     *compare,
		})
		if err := cmd.Execute(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cmd := commands.NewAnalyzeCommand(commands.Config{
		InputFile:       *inputFile,
		SheetName:       *sheetName,
		OutputDir:       *outputDir,
		ExportFile:      *exportFile,
		HistoryFile:     *historyFile,
		Format:          *format,
		IncludeInactive: *includeInactive,
		Verbose:         *verbose,
		Help:            *help,
	})
	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string, verbose bool) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	if verbose && parsed > zerolog.DebugLevel {
		parsed = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mrpcritic", "history.jsonl")
	}
	return filepath.Join(home, ".mrpcritic", "history.jsonl")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
