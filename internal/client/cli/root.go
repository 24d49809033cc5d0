package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) prompt() string {
	switch {
	case a.session != nil:
		return fmt.Sprintf("zkp (%s) > ", a.user)
	case a.user != "":
		return fmt.Sprintf("zkp [%s] > ", a.user)
	default:
		return "zkp > "
	}
}

// Root is the interactive loop. It returns on exit, EOF or ctx cancellation.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "zkpauth prover (type 'help' for commands)")

	for ctx.Err() == nil {
		fmt.Fprint(a.out, a.prompt())

		line, err := a.in.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: register, login, whoami, user <id>, exit")
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		case "user":
			if len(parts) != 2 {
				fmt.Fprintln(a.out, "Usage: user <id>")
				continue
			}
			a.user = parts[1]
			a.session = nil
		default:
			if err := a.exec(ctx, cmd); err != nil {
				a.logger.Debug(ctx, "command failed", "command", cmd, "error", err)
				fmt.Fprintln(a.out, "error:", err)
			}
		}

		if err != nil {
			return
		}
	}
}
