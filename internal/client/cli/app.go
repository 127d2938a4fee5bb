package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/dealhunter/internal/client/client"
	"github.com/dmitrijs2005/dealhunter/internal/client/config"
	"github.com/dmitrijs2005/dealhunter/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/dealhunter/internal/client/services"
	"github.com/dmitrijs2005/dealhunter/internal/cryptox"
	"github.com/dmitrijs2005/dealhunter/internal/errutil"
	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	dealService services.DealService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	userEmail   string
}

// NewApp builds the services for c and returns an App reading os.Stdin and
// writing os.Stdout. Every App gets its own session id in the logs.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if c == nil {
		return nil, errors.New("nil config")
	}
	logger = logger.With("session", uuid.NewString())

	repo := accounts.NewFileRepository(c.AccountsFile)
	api := client.NewCheapSharkClient(nil, c.APIBaseURL, logger)

	as := services.NewAuthService(repo, cryptox.NewHasher(), logger)
	ds := services.NewDealService(api, logger)

	return &App{
		config:      c,
		authService: as,
		dealService: ds,
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run greets the user and serves the main menu until the user exits.
func (a *App) Run(ctx context.Context) error {
	a.println("🎮 Welcome to Game Deal Hunter! 🎮")
	a.println("Your one-stop shop for the best PC game deals!")

	count, err := a.authService.AccountCount(ctx)
	if err != nil {
		a.reportStoreError(ctx, err)
	} else if count == 0 {
		a.println("Welcome! It looks like you're our first user. Let's get you set up.")
	}

	a.logger.Debug(ctx, "session started", "accounts", count)
	return runMenu(ctx, a, a.reader, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// reportStoreError tells the user the account store misbehaved and logs the
// details to the diagnostics stream.
func (a *App) reportStoreError(ctx context.Context, err error) {
	a.printf("Oops! We had a little hiccup reading our user database: %v\n", err)
	errutil.LogError(ctx, a.logger, "account store failed", err)
}

// isPartialStore reports whether err only says the store was partly read.
func isPartialStore(err error) bool {
	var partialErr *services.PartialStoreError
	return errors.As(err, &partialErr)
}
