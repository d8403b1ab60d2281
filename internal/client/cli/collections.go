package cli

import (
	"errors"
	"fmt"

	"github.com/iudanet/carscope/internal/client/actions"
	"github.com/iudanet/carscope/internal/market"
	"github.com/iudanet/carscope/pkg/api"
)

var errNotAuthenticated = errors.New("not authenticated. Please run 'carscope login' first")

// Execute реализует goflags.Commander.
// Без сессии переход на /favorites откладывается до входа.
func (f *FavoritesCommand) Execute(_ []string) error {
	c := f.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	res, err := d.actions.Open(c.ctx, "/favorites")
	if err != nil {
		return err
	}
	if res == actions.LoginRequired {
		c.io.Println(loginHint)
		return nil
	}

	sess, err := d.sessions.Current(c.ctx)
	if err != nil {
		return errNotAuthenticated
	}
	favorites, err := d.client.ListFavorites(c.ctx, sess.Token, sess.User.ID)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	c.io.Println("=== Favorites ===")
	c.io.Println()
	if len(favorites) == 0 {
		c.io.Println("No favorite cars.")
		return nil
	}
	for _, fav := range favorites {
		c.io.Printf("#%d  %s\n", fav.Car.ID, describeCar(fav.Car))
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(favorites))
	return nil
}

func describeCar(car api.CarListing) string {
	s := car.Title
	if s == "" {
		s = car.Brand + " " + car.Model
	}
	if car.Year != nil {
		s += fmt.Sprintf(" %d", *car.Year)
	}
	if car.Mileage != nil {
		s += fmt.Sprintf(", %d km", *car.Mileage)
	}
	return s + "  " + market.FormatEUR(car.Price)
}

// Execute реализует goflags.Commander
func (s *SearchesListCommand) Execute(_ []string) error {
	c := s.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	sess, err := d.sessions.Current(c.ctx)
	if err != nil {
		return errNotAuthenticated
	}
	searches, err := d.client.ListSavedSearches(c.ctx, sess.Token, sess.User.ID)
	if err != nil {
		return fmt.Errorf("failed to load saved searches: %w", err)
	}

	c.io.Println("=== Saved Searches ===")
	c.io.Println()
	if len(searches) == 0 {
		c.io.Println("No saved searches.")
		return nil
	}
	for _, ss := range searches {
		c.io.Printf("#%d  %s\n", ss.ID, ss.Query)
	}
	return nil
}

// Execute реализует goflags.Commander
func (s *SearchesDeleteCommand) Execute(_ []string) error {
	c := s.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	sess, err := d.sessions.Current(c.ctx)
	if err != nil {
		return errNotAuthenticated
	}
	if err := d.client.DeleteSavedSearch(c.ctx, sess.Token, s.Args.ID); err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	c.io.Printf("✓ Saved search %d deleted\n", s.Args.ID)
	return nil
}
