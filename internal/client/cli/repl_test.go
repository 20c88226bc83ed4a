package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Foods(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "foods")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Lang(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "lang")
	f.args = append(f.args, args)
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i], _ = v.(string)
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"",
		"status",
		"profile",
		"foods dairy critic",
		"lang es",
		"logout",
		"register",
		"exit",
		"status",
	}, "\n")))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input)

	assert.Equal(t, []string{"login", "status", "profile", "foods", "lang", "logout", "register"}, exec.calls)
	assert.Equal(t, [][]string{{"dairy", "critic"}, {"es"}}, exec.args)
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := silencePrintln(t)

	input := bufio.NewReader(strings.NewReader("help\nlogin\nhelp\nquit\n"))
	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, input)

	var helps []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	if assert.Len(t, helps, 2) {
		assert.Contains(t, helps[0], "register")
		assert.Contains(t, helps[1], "logout")
	}
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	lines := silencePrintln(t)

	input := bufio.NewReader(strings.NewReader("foobar"))
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, input)

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: foobar")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silencePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))
	assert.Empty(t, exec.calls)
}
