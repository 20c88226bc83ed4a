// Package services contains application services for the Sensitivv client:
// the session controller that owns the authentication state, and the food
// catalog service.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sensitivv/internal/client/client"
	"github.com/dmitrijs2005/sensitivv/internal/client/models"
	"github.com/dmitrijs2005/sensitivv/internal/client/session"
	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/dmitrijs2005/sensitivv/internal/logging"
	"golang.org/x/sync/singleflight"
)

// SessionStore is the persistence the controller needs.
type SessionStore interface {
	Read(ctx context.Context) (session.Session, error)
	Write(ctx context.Context, s session.Session) error
	ClearSession(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	Language(ctx context.Context) (string, bool, error)
}

// SessionController is the single writer of AuthState.
//
// Operations (Restore, Login, Register, Logout) run one at a time.
// Concurrent identical calls are collapsed into one request whose result
// every caller receives. Persistence always completes before the state that
// exposes the new identity is published.
type SessionController struct {
	client client.Client
	store  SessionStore
	logger logging.Logger

	mu     sync.Mutex
	state  AuthState
	subs   map[int]chan AuthState
	nextID int

	opMu  sync.Mutex
	group singleflight.Group

	restoreOnce sync.Once
}

func NewSessionController(c client.Client, store SessionStore, logger logging.Logger) *SessionController {
	return &SessionController{
		client: c,
		store:  store,
		logger: logger.With("module", "session"),
		state:  Loading(),
		subs:   make(map[int]chan AuthState),
	}
}

// State returns the current AuthState.
func (c *SessionController) State() AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe returns a channel that always holds the most recent AuthState:
// a slow reader skips intermediate states but never misses the latest one.
// The current state is delivered immediately. cancel closes the channel.
func (c *SessionController) Subscribe() (<-chan AuthState, func()) {
	ch := make(chan AuthState, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.state
	c.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			close(ch)
			c.mu.Unlock()
		})
	}
	return ch, cancel
}

func (c *SessionController) setState(s AuthState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = s
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

// Restore runs the startup check once: a cached session is adopted only
// after the server confirms its token. Any failure clears the stored
// session and ends unauthenticated. Later calls return the current state
// without repeating the check.
func (c *SessionController) Restore(ctx context.Context) AuthState {
	c.restoreOnce.Do(func() {
		c.opMu.Lock()
		defer c.opMu.Unlock()
		c.setState(c.restore(ctx))
	})
	return c.State()
}

func (c *SessionController) restore(ctx context.Context) AuthState {
	stored, err := c.store.Read(ctx)
	if err != nil {
		c.logger.Warn(ctx, "reading stored session failed", "error", err)
		return Unauthenticated()
	}

	if !stored.HasCredentials() {
		return Unauthenticated()
	}

	userID, err := c.client.ValidateSession(ctx, *stored.Token)
	if err == nil && userID != *stored.ID {
		err = fmt.Errorf("token belongs to %q, cached session is %q", userID, *stored.ID)
	}
	if err != nil {
		c.logger.Info(ctx, "stored session rejected", "error", err)
		if clearErr := c.store.ClearSession(ctx); clearErr != nil {
			c.logger.Warn(ctx, "clearing rejected session failed", "error", clearErr)
		}
		return Unauthenticated()
	}

	var name string
	if stored.Name != nil {
		name = *stored.Name
	}
	return Authenticated(userID, name)
}

// Login authenticates against the server and, on success, persists the
// session and becomes authenticated. On failure the error is returned and
// the state before the call is restored, or Unauthenticated if there was
// none.
func (c *SessionController) Login(ctx context.Context, email, password string) (AuthState, error) {
	return c.dedup("login\x00"+email+"\x00"+password, func() (AuthState, error) {
		return c.authenticate(ctx, func() (*models.AuthResult, error) {
			return c.client.Login(ctx, email, password)
		})
	})
}

// Register creates an account and signs in with it. name may be empty.
func (c *SessionController) Register(ctx context.Context, email, password, name string) (AuthState, error) {
	return c.dedup("register\x00"+email+"\x00"+password+"\x00"+name, func() (AuthState, error) {
		return c.authenticate(ctx, func() (*models.AuthResult, error) {
			return c.client.Register(ctx, email, password, name)
		})
	})
}

// Logout forgets the stored session. The controller always ends
// unauthenticated; ErrLogoutIncomplete reports a failed local clear.
func (c *SessionController) Logout(ctx context.Context) error {
	_, err := c.dedup("logout", func() (AuthState, error) {
		c.opMu.Lock()
		defer c.opMu.Unlock()

		c.setState(Loading())
		err := c.store.ClearSession(ctx)
		c.setState(Unauthenticated())

		if err != nil {
			c.logger.Warn(ctx, "clearing session on logout failed", "error", err)
			return Unauthenticated(), fmt.Errorf("%w: %v", ErrLogoutIncomplete, err)
		}
		return Unauthenticated(), nil
	})
	return err
}

func (c *SessionController) authenticate(ctx context.Context, call func() (*models.AuthResult, error)) (AuthState, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	previous := c.State()
	if previous.IsLoading() {
		// Nothing settled to roll back to yet (Restore has not finished).
		previous = Unauthenticated()
	}
	c.setState(Loading())

	res, err := call()
	if err != nil {
		c.setState(previous)
		return previous, err
	}

	lang := res.Language
	if lang == "" {
		lang = common.DefaultLanguage
	}
	err = c.store.Write(ctx, session.Session{
		ID:       session.Str(res.UserID),
		Name:     session.Str(res.Name),
		Token:    session.Str(res.Token),
		Language: session.Str(lang),
	})
	if err != nil {
		c.setState(previous)
		return previous, fmt.Errorf("persist session: %w", err)
	}

	next := Authenticated(res.UserID, res.Name)
	c.setState(next)
	return next, nil
}

func (c *SessionController) dedup(key string, fn func() (AuthState, error)) (AuthState, error) {
	v, err, _ := c.group.Do(key, func() (any, error) {
		return fn()
	})
	state, _ := v.(AuthState)
	return state, err
}

// Profile fetches the signed-in account's profile.
func (c *SessionController) Profile(ctx context.Context) (*models.Profile, error) {
	token, err := c.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, client.ErrNoSession
	}
	return c.client.Profile(ctx, token)
}

// Language returns the stored language preference, or the default.
func (c *SessionController) Language(ctx context.Context) (string, error) {
	lang, ok, err := c.store.Language(ctx)
	if err != nil {
		return "", err
	}
	if !ok || lang == "" {
		return common.DefaultLanguage, nil
	}
	return lang, nil
}

// SetLanguage stores the language preference. It survives logout.
func (c *SessionController) SetLanguage(ctx context.Context, lang string) error {
	return c.store.Write(ctx, session.Session{Language: session.Str(lang)})
}
