package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "open":
		if len(args) != 1 {
			return fmt.Errorf("usage: docsync open <documentId>")
		}
		return c.runOpen(ctx, args[0])
	case "cat":
		if len(args) != 1 {
			return fmt.Errorf("usage: docsync cat <documentId>")
		}
		return c.runCat(ctx, args[0])
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
