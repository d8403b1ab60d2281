package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/carscope/internal/client/history"
	"github.com/iudanet/carscope/internal/market"
)

// Execute реализует goflags.Commander
func (h *HistoryListCommand) Execute(_ []string) error {
	c := h.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	if h.Local {
		d.history.LoadLocal(c.ctx)
	} else {
		d.history.Load(c.ctx)
	}

	entries := d.history.Entries()
	c.io.Printf("=== Estimation History (%s) ===\n", sourceLabel(d.history.Source()))
	c.io.Println()

	if len(entries) == 0 {
		c.io.Println("No estimations found.")
		return nil
	}

	for _, e := range entries {
		car := e.CarData
		c.io.Printf("#%d  %s %s %d, %d km  %s  (%s)\n",
			e.ID, car.Brand, car.Model, car.Year, car.Mileage,
			market.FormatEUR(e.EstimationResult.EstimatedPrice), e.CreatedAt)
		if e.Notes != "" {
			c.io.Printf("    Notes: %s\n", e.Notes)
		}
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(entries))
	return nil
}

func sourceLabel(s history.Source) string {
	switch s {
	case history.SourceRemote:
		return "server"
	case history.SourceLocal:
		return "local"
	default:
		return "empty"
	}
}

// Execute реализует goflags.Commander
func (h *HistoryDeleteCommand) Execute(_ []string) error {
	c := h.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	if err := d.history.Delete(c.ctx, h.Args.ID); err != nil {
		return fmt.Errorf("failed to delete estimation %d: %w", h.Args.ID, err)
	}
	c.io.Printf("✓ Estimation %d deleted\n", h.Args.ID)
	return nil
}

// Execute реализует goflags.Commander
func (h *HistoryNotesCommand) Execute(_ []string) error {
	c := h.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	notes := strings.Join(h.Args.Notes, " ")
	if err := d.history.UpdateNotes(c.ctx, h.Args.ID, notes); err != nil {
		return fmt.Errorf("failed to update notes of estimation %d: %w", h.Args.ID, err)
	}
	c.io.Printf("✓ Notes of estimation %d updated\n", h.Args.ID)
	return nil
}

// Execute реализует goflags.Commander
func (h *HistoryClearCommand) Execute(_ []string) error {
	c := h.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	if !h.Yes {
		ok, err := c.io.Confirm("Delete all saved estimations?")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Aborted.")
			return nil
		}
	}

	if err := d.history.Clear(c.ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	c.io.Println("✓ History cleared")
	return nil
}
