package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: (l)ist, upload <path>, label <path>, delete <id>, status, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Label(ctx context.Context, path string) error
	Delete(ctx context.Context, id string) error
	Status(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a until EOF,
// "exit" or "quit". Command errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("filedesk (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		if quit, _ := dispatch(ctx, a, parts[0], parts[1:]); quit {
			return
		}
	}
}

// dispatch runs one command. quit is true for exit and quit.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) (quit bool, err error) {
	switch cmd {
	case "help":
		printlnFn(helpText)

	case "l", "list":
		err = a.List(ctx)

	case "upload", "label", "delete":
		if len(args) == 0 {
			arg := "<path>"
			if cmd == "delete" {
				arg = "<id>"
			}
			printlnFn("Usage:", cmd, arg)
			return false, errUsage
		}
		switch cmd {
		case "upload":
			err = a.Upload(ctx, args[0])
		case "label":
			err = a.Label(ctx, args[0])
		default:
			err = a.Delete(ctx, args[0])
		}

	case "status":
		err = a.Status(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return true, nil

	default:
		printlnFn("Unknown command:", cmd)
		return false, errUnknownCommand
	}
	return false, err
}
