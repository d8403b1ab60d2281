package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/carscope/internal/client/actions"
	"github.com/iudanet/carscope/internal/client/pending"
)

const loginHint = "Login required. Run 'carscope login' to continue, the action will be completed after login."

// Execute реализует goflags.Commander
func (v *VisitCommand) Execute(_ []string) error {
	c := v.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}
	return d.nav.Navigate(c.ctx, v.Args.Path)
}

// Execute реализует goflags.Commander
func (o *OpenCommand) Execute(_ []string) error {
	c := o.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	res, err := d.actions.Open(c.ctx, o.Args.Path)
	if err != nil {
		return err
	}
	if res == actions.LoginRequired {
		c.io.Println(loginHint)
	}
	return nil
}

// Execute реализует goflags.Commander
func (f *FavoriteCommand) Execute(_ []string) error {
	c := f.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}
	if f.Args.CarID <= 0 {
		return fmt.Errorf("car id must be positive, got %d", f.Args.CarID)
	}

	res, err := d.actions.ToggleFavorite(c.ctx, f.Args.CarID, f.Remove)
	if err != nil {
		return fmt.Errorf("failed to update favorites: %w", err)
	}

	switch {
	case res == actions.LoginRequired:
		c.io.Println(loginHint)
	case f.Remove:
		c.io.Printf("✓ Car %d removed from favorites\n", f.Args.CarID)
	default:
		c.io.Printf("✓ Car %d added to favorites\n", f.Args.CarID)
	}
	return nil
}

// Execute реализует goflags.Commander
func (s *SaveSearchCommand) Execute(_ []string) error {
	c := s.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	query := strings.Join(s.Args.Query, " ")
	res, err := d.actions.SaveSearch(c.ctx, query)
	if err != nil {
		return fmt.Errorf("failed to save search: %w", err)
	}

	if res == actions.LoginRequired {
		c.io.Println(loginHint)
		return nil
	}
	c.io.Printf("✓ Search %q saved\n", strings.TrimSpace(query))
	return nil
}

// Execute реализует goflags.Commander
func (p *PendingCommand) Execute(_ []string) error {
	c := p.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	action := d.pending.Peek(c.ctx)
	if action == nil {
		c.io.Println("No pending action.")
		return nil
	}

	if p.Clear {
		d.pending.Clear(c.ctx)
		c.io.Printf("✓ Discarded: %s\n", describeAction(action))
		return nil
	}

	c.printPending(action)
	return nil
}

// Execute реализует goflags.Commander
func (r *ResumeCommand) Execute(_ []string) error {
	c := r.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	if !d.pending.Has(c.ctx) {
		c.io.Println("No pending action.")
		return nil
	}

	outcome := d.pending.Execute(c.ctx)
	c.io.Printf("Pending action: %s\n", describeOutcome(outcome))

	switch outcome {
	case pending.OutcomeAwaitingAuth:
		return errNotAuthenticated
	case pending.OutcomeFailed:
		return fmt.Errorf("pending action failed")
	}
	return nil
}
