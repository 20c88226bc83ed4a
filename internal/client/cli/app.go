package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sensitivv/internal/client/models"
	"github.com/dmitrijs2005/sensitivv/internal/client/services"
	"github.com/dmitrijs2005/sensitivv/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const onlineCheckInterval = 30 * time.Second

// SessionService is the slice of services.SessionController the REPL drives.
type SessionService interface {
	Restore(ctx context.Context) services.AuthState
	State() services.AuthState
	Login(ctx context.Context, email, password string) (services.AuthState, error)
	Register(ctx context.Context, email, password, name string) (services.AuthState, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.Profile, error)
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, lang string) error
}

type CatalogService interface {
	FoodItems(ctx context.Context, category, reactionType string) ([]models.FoodItem, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	sessions SessionService
	catalog  CatalogService
	pinger   Pinger
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(sessions SessionService, catalog CatalogService, pinger Pinger, logger logging.Logger) *App {
	return &App{
		sessions: sessions,
		catalog:  catalog,
		pinger:   pinger,
		logger:   logger.With("module", "cli"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// Run restores the cached session and serves the REPL until the user quits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to Sensitivv CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	state := a.sessions.Restore(ctx)
	if state.IsAuthenticated() {
		fmt.Fprintf(a.out, "Signed in as %s\n", state.UserName())
	}

	go a.StartOnlineStatusWatcher(ctx, onlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State().IsAuthenticated()
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.pinger.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
