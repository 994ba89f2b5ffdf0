package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Ошибку печатает вызывающий (main),
// чтобы команды оставались тестируемыми.
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
	case "project":
		return c.runProject(ctx, args)
	case "element":
		return c.runElement(ctx, args)
	case "template":
		return c.runTemplate(ctx, args)
	case "sync":
		return c.runSync(ctx, args)
	case "queue":
		return c.runQueue(ctx, args)
	case "help":
		PrintUsage()
		return nil
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
