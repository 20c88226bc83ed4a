package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sensitivv/internal/client/client"
	"github.com/dmitrijs2005/sensitivv/internal/client/services"
)

// The interactive input helpers, swapped in tests.
var getEmail = GetEmail
var getDisplayName = GetDisplayName
var getPassword = GetPassword

// describeError turns a service error into the line shown to the user.
func describeError(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	case errors.Is(err, client.ErrNoSession):
		return "Not logged in"
	default:
		return err.Error()
	}
}

func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Debug(ctx, op+" failed", "error", err)
	fmt.Fprintln(a.out, "Error:", describeError(err))
	return err
}

func (a *App) readCredentials(ctx context.Context) (string, []byte, error) {
	email, err := getEmail(a.reader, a.out)
	if err != nil {
		return "", nil, a.fail(ctx, "read email", err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, a.fail(ctx, "read password", err)
	}
	return email, password, nil
}

// Register prompts for email, password and an optional display name, then
// creates the account and signs in with it.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials(ctx)
	if err != nil {
		return err
	}
	defer clear(password)

	name, err := getDisplayName(a.reader, a.out)
	if err != nil {
		return err
	}

	state, err := a.sessions.Register(ctx, email, string(password), name)
	if err != nil {
		return a.fail(ctx, "register", err)
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", state.UserName())
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials(ctx)
	if err != nil {
		return err
	}
	defer clear(password)

	state, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", state.UserName())
	return nil
}

// Logout forgets the local session. The app is signed out even when the
// local clear fails; that case is reported as a warning.
func (a *App) Logout(ctx context.Context) error {
	err := a.sessions.Logout(ctx)
	if errors.Is(err, services.ErrLogoutIncomplete) {
		fmt.Fprintln(a.out, "Warning: signed out, but the local session could not be fully removed")
		return err
	}
	if err != nil {
		return a.fail(ctx, "logout", err)
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	state := a.sessions.State()
	switch state.Status() {
	case services.StatusAuthenticated:
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", state.UserName(), state.UserID())
	case services.StatusLoading:
		fmt.Fprintln(a.out, "Checking session...")
	default:
		fmt.Fprintln(a.out, "Not logged in")
	}
	if m := a.Mode(); m != "" {
		fmt.Fprintf(a.out, "Server: %s\n", m)
	}
	return nil
}
