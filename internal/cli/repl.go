package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Stats(ctx context.Context) error
	Search(ctx context.Context, text string) error
	FilterGenre(ctx context.Context, genre string) error
	FilterStatus(ctx context.Context, status string) error
	ClearFilters(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) error
	Download(ctx context.Context, id string) error
	Reload(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the book collection. It reads
// a line from the scanner, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user; the loop exits on scanner EOF or "exit"/"quit".
//
// Handler errors are ignored here; handlers log and print their own
// failures so the loop stays resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bukuku %s> ", statusFn()))
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
			printlnFn("Available commands: (l)ist, stats, search <text>, genre <g>, status <s>, clear,")
			printlnFn("  add, edit <id>, show <id>, setstatus <id> <status>, download <id>, reload,")
			if a.isLoggedIn() {
				printlnFn("  whoami, logout, exit")
			} else {
				printlnFn("  login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "search":
			// Empty argument clears the search text only.
			_ = a.Search(ctx, strings.Join(args, " "))

		case "genre":
			if len(args) == 0 {
				printlnFn("Usage: genre <genre|semua>")
				continue
			}
			_ = a.FilterGenre(ctx, args[0])

		case "status":
			if len(args) == 0 {
				printlnFn("Usage: status <status|semua>")
				continue
			}
			_ = a.FilterStatus(ctx, args[0])

		case "clear":
			_ = a.ClearFilters(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "setstatus":
			if len(args) < 2 {
				printlnFn("Usage: setstatus <id> <status>")
				continue
			}
			_ = a.SetStatus(ctx, args[0], args[1])

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <id>")
				continue
			}
			_ = a.Download(ctx, args[0])

		case "reload":
			_ = a.Reload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
