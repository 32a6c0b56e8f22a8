package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	CreateBadge(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Me(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the badgekeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is cancelled (checked before and
// after every command), or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - show <id>      — show the badge of user id
//	  - status         — show location and session
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - create         — create your badge
//	  - me             — show your badge
//	  - show <id>      — show the badge of user id
//	  - logout         — log out
//	  - status         — show location and session
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are ignored here; failed submissions
// have already been reported through the notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("bk %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil || ctx.Err() != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: create, me, show <id>, logout, status, exit")
			} else {
				printlnFn("Available commands: signup, login, show <id>, status, exit")
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "create":
			_ = a.CreateBadge(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "me":
			_ = a.Me(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
