package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sensitivv/internal/client/services"
	"github.com/stretchr/testify/assert"
)

func TestIsLoggedIn(t *testing.T) {
	s := &fakeSessions{state: services.Unauthenticated()}
	a, _ := newTestApp(s, nil, "")
	assert.False(t, a.isLoggedIn())

	s.state = services.Authenticated("u1", "alice")
	assert.True(t, a.isLoggedIn())
}

func TestCheckOnline_SetsMode(t *testing.T) {
	a, _ := newTestApp(&fakeSessions{}, nil, "")

	a.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, a.Mode())

	a.pinger = fakePinger{err: errors.New("refused")}
	a.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, a.Mode())
}

func TestGetStatus(t *testing.T) {
	s := &fakeSessions{state: services.Unauthenticated()}
	a, _ := newTestApp(s, nil, "")
	assert.Equal(t, "", a.getStatus())

	s.state = services.Authenticated("u1", "alice")
	assert.Equal(t, "(alice )", a.getStatus())

	a.setMode(ModeOnline)
	assert.Equal(t, "(alice online)", a.getStatus())
}

func TestRun_RestoresSessionThenServesREPL(t *testing.T) {
	silencePrintln(t)

	s := &fakeSessions{state: services.Authenticated("u1", "alice")}
	a, out := newTestApp(s, nil, "status\nexit\n")

	a.Run(context.Background())

	assert.Equal(t, 1, s.restoreCalls)
	assert.Contains(t, out.String(), "Signed in as alice")
	assert.Equal(t, ModeOnline, a.Mode())
}
