package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	onStatus func()

	calls []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Signup(context.Context) error {
	f.calls = append(f.calls, "signup")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) CreateBadge(context.Context) error {
	f.calls = append(f.calls, "create")
	return nil
}
func (f *fakeExec) Show(_ context.Context, id string) error {
	f.calls = append(f.calls, "show "+id)
	return nil
}
func (f *fakeExec) Me(context.Context) error { f.calls = append(f.calls, "me"); return nil }
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(context.Context) error {
	f.calls = append(f.calls, "status")
	if f.onStatus != nil {
		f.onStatus()
	}
	return nil
}

// capturePrintln replaces printlnFn with a recorder.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"create",
		"show abc",
		"me",
		"status",
		"logout",
		"signup",
		"foobar",
		"exit",
		"me",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{"login", "create", "show abc", "me", "status", "logout", "signup"}, exec.calls)
	assert.Contains(t, *lines, "Available commands: signup, login, show <id>, status, exit")
	assert.Contains(t, *lines, "Available commands: create, me, show <id>, logout, status, exit")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, *lines, "bk status> ")
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("show\nquit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: show <id>")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login"))

	assert.Equal(t, []string{"login"}, exec.calls)
}

func TestRunREPL_CancelledContextDispatchesNothing(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("login\nstatus\nexit\n"))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_StopsAfterCommandWhenCancelled(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := &fakeExec{onStatus: cancel}
	runREPL(ctx, exec, func() string { return "" }, rdr("status\nlogin\nme\n"))

	assert.Equal(t, []string{"status"}, exec.calls)
}
