package commands

import (
	"fmt"

	"github.com/dastanaron/recentdirs/internal/history"
)

// HistoryCommand prints the most recently opened folders
type HistoryCommand struct {
	repo history.Repository
}

// NewHistoryCommand creates a new history command
func NewHistoryCommand(repo history.Repository) *HistoryCommand {
	return &HistoryCommand{repo: repo}
}

// Execute lists up to limit recorded opens, newest first
func (c *HistoryCommand) Execute(limit int) error {
	entries, err := c.repo.Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No folders opened yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.OpenedAt.Format("2006-01-02 15:04:05"), e.Path)
	}
	return nil
}
