package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hrodrigues/mrpcritic/pkg/application/services"
	"github.com/hrodrigues/mrpcritic/pkg/infrastructure/repositories/histlog"
)

// HistoryConfig holds configuration for the history command
type HistoryConfig struct {
	HistoryFile string
	List        bool
	Compare     string // "beforeID,afterID"
}

// HistoryCommand lists recorded runs and compares two of them
type HistoryCommand struct {
	config HistoryConfig
}

// NewHistoryCommand creates a new history command with the given configuration
func NewHistoryCommand(config HistoryConfig) *HistoryCommand {
	return &HistoryCommand{config: config}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) error {
	store, err := histlog.Open(c.config.HistoryFile)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer store.Close()

	service := services.NewHistoryService(store)

	if c.config.List {
		return c.listEntries(service)
	}
	if c.config.Compare != "" {
		return c.compareEntries(service)
	}
	return fmt.Errorf("nothing to do: use -list-history or -compare")
}

func (c *HistoryCommand) listEntries(service *services.HistoryService) error {
	entries, err := service.List()
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No analysis runs recorded.")
		return nil
	}

	fmt.Printf("🗂  Analysis History\n")
	fmt.Printf("%-36s %-20s %-25s %-6s %-8s %-9s %-12s\n",
		"Run ID", "Timestamp", "Source", "OK", "Warning", "Critical", "Total Qty")
	for _, entry := range entries {
		fmt.Printf("%-36s %-20s %-25s %-6d %-8d %-9d %-12g\n",
			entry.ID,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.SourceID,
			entry.Summary.OKCount,
			entry.Summary.WarningCount,
			entry.Summary.CriticalCount,
			entry.Summary.TotalSuggestedQty)
	}
	return nil
}

func (c *HistoryCommand) compareEntries(service *services.HistoryService) error {
	parts := strings.Split(c.config.Compare, ",")
	if len(parts) != 2 {
		return fmt.Errorf("compare expects two run ids separated by a comma")
	}
	beforeID, err := uuid.Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", parts[0], err)
	}
	afterID, err := uuid.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", parts[1], err)
	}

	delta, err := service.Compare(beforeID, afterID)
	if err != nil {
		return err
	}

	fmt.Printf("🔀 Run Comparison (after - before)\n")
	fmt.Printf("OK:        %+d\n", delta.OKCount)
	fmt.Printf("Warning:   %+d\n", delta.WarningCount)
	fmt.Printf("Critical:  %+d\n", delta.CriticalCount)
	fmt.Printf("Total Qty: %+g\n", delta.TotalSuggestedQty)
	return nil
}
