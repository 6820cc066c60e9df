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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Favorites(ctx context.Context) error
	AddFavorite(ctx context.Context, id string) error
	RemoveFavorite(ctx context.Context, id string) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the tourist guide CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Signed out:
//	  - help             — show available commands
//	  - list             — show all attractions
//	  - search <text>    — filter attractions by title or city
//	  - show <id>        — show one attraction in detail
//	  - favs             — favorites view (prompts for sign-in first)
//	  - register         — create an account
//	  - login            — sign in
//	  - exit | quit      — leave the program
//
//	Signed in additionally:
//	  - fav <id>         — add an attraction to favorites
//	  - unfav <id>       — remove an attraction from favorites
//	  - whoami           — show the active account
//	  - logout           — sign out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tg> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, show, fav, unfav, favs, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, search, show, favs, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <id>")
				continue
			}
			_ = a.AddFavorite(ctx, args[0])

		case "unfav":
			if len(args) == 0 {
				printlnFn("Usage: unfav <id>")
				continue
			}
			_ = a.RemoveFavorite(ctx, args[0])

		case "favs":
			_ = a.Favorites(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
