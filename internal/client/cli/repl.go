package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	Foods(ctx context.Context, args []string) error
	Lang(ctx context.Context, args []string) error
}

// runREPL reads commands line by line and dispatches them to a until EOF,
// "exit"/"quit", or ctx cancellation.
//
//	Always:
//	  - help                          show available commands
//	  - status                        show the session state
//	  - foods [category] [reaction]   list catalog items
//	  - lang [code]                   show or set the language
//	  - exit | quit                   leave the program
//
//	Not logged in:
//	  - register, login
//
//	Logged in:
//	  - profile, logout
//
// Handlers report their own errors, so the returned errors are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("sv %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, profile, foods [category] [reaction], lang [code], logout, exit")
			} else {
				printlnFn("Available commands: register, login, status, foods [category] [reaction], lang [code], exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "foods":
			_ = a.Foods(ctx, args)

		case "lang":
			_ = a.Lang(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
