package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/carscope/internal/client/auth"
	"github.com/iudanet/carscope/internal/client/pending"
	"github.com/iudanet/carscope/internal/client/session"
	"github.com/iudanet/carscope/internal/models"
)

// Execute реализует goflags.Commander
func (l *LoginCommand) Execute(_ []string) error {
	c := l.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	email, password, err := c.readCredentials(l.Email, l.Password)
	if err != nil {
		return err
	}

	c.io.Println("Authenticating...")
	result, err := d.auth.Login(c.ctx, email, password)
	if err != nil {
		return err
	}

	c.printLoginResult(result)
	return nil
}

// Execute реализует goflags.Commander
func (r *RegisterCommand) Execute(_ []string) error {
	c := r.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	c.io.Println("=== Registration ===")
	c.io.Println()

	email, password, err := c.readCredentials(r.Email, r.Password)
	if err != nil {
		return err
	}

	name := r.Name
	if name == "" {
		name, err = c.io.ReadInput("Full name (optional): ")
		if err != nil {
			return fmt.Errorf("failed to read full name: %w", err)
		}
	}

	result, err := d.auth.Register(c.ctx, email, password, name)
	if err != nil {
		return err
	}

	c.io.Println("✓ Registration successful!")
	c.printLoginResult(result)
	return nil
}

// readCredentials запрашивает email и пароль, если они не переданы флагами
func (c *Cli) readCredentials(email, password string) (string, string, error) {
	var err error
	if email == "" {
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
	}
	if password == "" {
		password, err = c.io.ReadPassword("Password: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read password: %w", err)
		}
	}
	return strings.TrimSpace(email), password, nil
}

func (c *Cli) printLoginResult(result *auth.LoginResult) {
	c.io.Println("✓ Login successful!")
	c.io.Printf("User: %s (id %d)\n", result.User.Email, result.User.ID)
	if result.Pending != pending.OutcomeNone {
		c.io.Printf("Pending action: %s\n", describeOutcome(result.Pending))
	}
}

// Execute реализует goflags.Commander
func (l *LogoutCommand) Execute(_ []string) error {
	c := l.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	if err := d.auth.Logout(c.ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out")
	return nil
}

// Execute реализует goflags.Commander
func (s *StatusCommand) Execute(_ []string) error {
	c := s.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}

	c.io.Println("=== Status ===")
	c.io.Println()

	sess, err := d.sessions.Current(c.ctx)
	switch {
	case err == nil:
		c.io.Println("Status: Authenticated")
		c.io.Printf("User: %s (id %d)\n", sess.User.Email, sess.User.ID)
		if !sess.ExpiresAt.IsZero() {
			c.io.Printf("Token expires: %s\n", sess.ExpiresAt.Format(time.RFC3339))
		}
	case errors.Is(err, session.ErrNoSession):
		c.io.Println("Status: Not authenticated")
		// пользователь мог остаться после истечения токена
		if user, uerr := d.sessions.User(c.ctx); uerr == nil {
			c.io.Printf("⚠️  Session of %s has expired. Run 'carscope login' again.\n", user.Email)
		}
	default:
		return fmt.Errorf("failed to read session: %w", err)
	}

	c.io.Printf("Location: %s\n", d.nav.Current(c.ctx))

	if action := d.pending.Peek(c.ctx); action != nil {
		c.io.Println()
		c.printPending(action)
	}
	return nil
}

// printPending выводит отложенное действие
func (c *Cli) printPending(action *models.PendingAction) {
	c.io.Printf("Pending action: %s\n", describeAction(action))
	if action.ReturnURL != "" {
		c.io.Printf("Return to: %s\n", action.ReturnURL)
	}
	remaining := time.Until(action.CreatedAt().Add(models.PendingActionTTL))
	c.io.Printf("Expires in: %s\n", remaining.Round(time.Second))
}

func describeAction(action *models.PendingAction) string {
	switch action.Type {
	case models.ActionAddFavorite:
		return fmt.Sprintf("add car %d to favorites", action.Data.CarID)
	case models.ActionRemoveFavorite:
		return fmt.Sprintf("remove car %d from favorites", action.Data.CarID)
	case models.ActionSaveSearch:
		return fmt.Sprintf("save search %q", action.Data.SearchQuery)
	case models.ActionNavigation:
		return fmt.Sprintf("open %s", action.Data.TargetPath)
	default:
		return string(action.Type)
	}
}

func describeOutcome(o pending.Outcome) string {
	switch o {
	case pending.OutcomeCompleted:
		return "completed"
	case pending.OutcomeNavigated:
		return "page opened"
	case pending.OutcomeFailed:
		return "failed, the action was discarded"
	case pending.OutcomeAwaitingAuth:
		return "waiting for login"
	default:
		return o.String()
	}
}
