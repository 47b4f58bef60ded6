package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/waqarulwahab/autoport/internal/client/api"
	"github.com/waqarulwahab/autoport/internal/client/config"
	"github.com/waqarulwahab/autoport/internal/client/services"
	"github.com/waqarulwahab/autoport/internal/client/session"
	"github.com/waqarulwahab/autoport/internal/client/storage"
	"github.com/waqarulwahab/autoport/internal/logging"
)

// Mode reflects where the last inventory read came from.
type Mode string

const (
	ModeOnline   Mode = "online"
	ModeFallback Mode = "fallback"
)

// App holds the wired services and the interactive state of the CLI.
type App struct {
	config    *config.Config
	auth      services.AuthService
	inventory services.InventoryService
	account   services.AccountService
	repos     *storage.Repositories
	userName  string
	Mode      Mode
	reader    *bufio.Reader
	logger    logging.Logger
}

// NewApp opens the local cache, builds the REST client against the
// configured backend and wires the application services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repos, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(repos.Metadata)
	client := api.NewRESTClient(c.ServerBaseURL, c.RequestTimeout, store)

	app := &App{
		config:    c,
		auth:      services.NewAuthService(client, store),
		inventory: services.NewInventoryService(client, repos.Cars, store),
		account:   services.NewAccountService(client),
		repos:     repos,
		Mode:      ModeOnline,
		reader:    bufio.NewReader(os.Stdin),
		logger:    logger,
	}

	// Restore the cached session so a restart does not force a login.
	if sess, err := app.auth.Current(ctx); err == nil && sess != nil {
		app.userName = sess.DisplayName()
	}

	return app, nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(ctx, "switched mode", "mode", string(mode))
	}
}

// noteSource flips the mode indicator after an inventory read.
func (a *App) noteSource(ctx context.Context, fromCache bool) {
	if fromCache {
		a.setMode(ctx, ModeFallback)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := a.userName
	if a.Mode == ModeFallback {
		if s != "" {
			s += " "
		}
		s += string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()

	printlnFn("AutoPort Manager CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
