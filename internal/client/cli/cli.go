// Package cli реализует команды клиента carscope поверх go-flags.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	goflags "github.com/jessevdk/go-flags"

	"github.com/iudanet/carscope/internal/client/iocli"
	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/config"
)

// BuildInfo информация о сборке, задается через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Cli разбирает аргументы и выполняет команды
type Cli struct {
	ctx     context.Context
	io      iocli.IO
	stderr  io.Writer
	kv      storage.KVStore // задано снаружи - хранилище не открывается по конфигурации
	deps    *deps
	build   BuildInfo
	globals GlobalFlags
}

// Option настраивает Cli
type Option func(*Cli)

// WithStorage использует готовое хранилище вместо открытия по конфигурации
func WithStorage(kv storage.KVStore) Option {
	return func(c *Cli) {
		c.kv = kv
	}
}

// WithStderr задает вывод логов
func WithStderr(w io.Writer) Option {
	return func(c *Cli) {
		c.stderr = w
	}
}

// New создает Cli
func New(out iocli.IO, build BuildInfo, opts ...Option) *Cli {
	c := &Cli{
		io:     out,
		build:  build,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// buildParser регистрирует все команды
func (c *Cli) buildParser() *goflags.Parser {
	c.globals = GlobalFlags{}

	parser := goflags.NewParser(&c.globals, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "carscope"
	parser.LongDescription = "Car price estimation client: favorites, saved searches and estimation history."

	mustAdd(parser.AddCommand("login", "Login to server", "Login and complete the pending action, if any.", &LoginCommand{cli: c}))
	mustAdd(parser.AddCommand("register", "Register new user", "Register a new account and login.", &RegisterCommand{cli: c}))
	mustAdd(parser.AddCommand("logout", "Logout", "Remove the local session. History and the pending action are kept.", &LogoutCommand{cli: c}))
	mustAdd(parser.AddCommand("status", "Show session status", "Show the session, the current page and the pending action.", &StatusCommand{cli: c}))
	mustAdd(parser.AddCommand("visit", "Go to a page", "Set the current page without access checks.", &VisitCommand{cli: c}))
	mustAdd(parser.AddCommand("open", "Open a page", "Open a page. Protected pages require login.", &OpenCommand{cli: c}))
	mustAdd(parser.AddCommand("favorite", "Add or remove a favorite car", "Add a car to favorites, or remove it with --remove.", &FavoriteCommand{cli: c}))
	mustAdd(parser.AddCommand("save-search", "Save a search query", "Save a search query to the account.", &SaveSearchCommand{cli: c}))
	mustAdd(parser.AddCommand("favorites", "List favorite cars", "List favorite cars. Requires login.", &FavoritesCommand{cli: c}))
	mustAdd(parser.AddCommand("pending", "Show the pending action", "Show or discard the action deferred until login.", &PendingCommand{cli: c}))
	mustAdd(parser.AddCommand("resume", "Run the pending action", "Run the deferred action with the current session.", &ResumeCommand{cli: c}))
	mustAdd(parser.AddCommand("estimate", "Estimate car price", "Estimate car price and save it to history.", &EstimateCommand{cli: c}))
	mustAdd(parser.AddCommand("version", "Show version information", "Show version information.", &VersionCommand{cli: c}))

	history, err := parser.AddCommand("history", "Manage estimation history", "List, annotate and delete saved estimations.", &struct{}{})
	mustAdd(history, err)
	mustAdd(history.AddCommand("list", "List estimations", "List saved estimations, newest first.", &HistoryListCommand{cli: c}))
	mustAdd(history.AddCommand("delete", "Delete an estimation", "Delete an estimation by id.", &HistoryDeleteCommand{cli: c}))
	mustAdd(history.AddCommand("notes", "Update notes", "Replace the notes of an estimation.", &HistoryNotesCommand{cli: c}))
	mustAdd(history.AddCommand("clear", "Clear history", "Delete all saved estimations.", &HistoryClearCommand{cli: c}))

	searches, err := parser.AddCommand("searches", "Manage saved searches", "List and delete saved search queries.", &struct{}{})
	mustAdd(searches, err)
	mustAdd(searches.AddCommand("list", "List saved searches", "List saved search queries.", &SearchesListCommand{cli: c}))
	mustAdd(searches.AddCommand("delete", "Delete a saved search", "Delete a saved search by id.", &SearchesDeleteCommand{cli: c}))

	parser.CommandHandler = func(cmd goflags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		defer c.closeDeps()
		return cmd.Execute(args)
	}

	return parser
}

func mustAdd(_ *goflags.Command, err error) {
	if err != nil {
		panic(fmt.Sprintf("failed to register command: %v", err))
	}
}

// Run разбирает args и выполняет найденную команду
func (c *Cli) Run(ctx context.Context, args []string) error {
	c.ctx = ctx

	// --version и --env-file обрабатываются до парсера:
	// go-flags требует команду, а переменные из .env нужны ему при разборе
	for i, arg := range args {
		if arg == "--" {
			break
		}
		switch {
		case arg == "--version":
			c.printVersion()
			return nil
		case arg == "--env-file" && i+1 < len(args):
			if err := config.LoadEnvFile(args[i+1]); err != nil {
				return err
			}
		case strings.HasPrefix(arg, "--env-file="):
			if err := config.LoadEnvFile(strings.TrimPrefix(arg, "--env-file=")); err != nil {
				return err
			}
		}
	}
	if !hasArgPrefix(args, "--env-file") {
		if err := config.LoadEnvFile(""); err != nil {
			return err
		}
	}

	parser := c.buildParser()
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			c.io.Println(flagsErr.Message)
			return nil
		}
		return err
	}
	return nil
}

func hasArgPrefix(args []string, prefix string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	return false
}

func (c *Cli) printVersion() {
	c.io.Println("Carscope Client")
	c.io.Printf("Version:    %s\n", c.build.Version)
	c.io.Printf("Build Date: %s\n", c.build.BuildDate)
	c.io.Printf("Git Commit: %s\n", c.build.GitCommit)
}

// Execute реализует goflags.Commander
func (v *VersionCommand) Execute(_ []string) error {
	v.cli.printVersion()
	return nil
}
