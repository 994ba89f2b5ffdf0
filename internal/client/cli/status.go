package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/contentkeeper/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.CurrentSession(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Session: not authenticated")
		c.io.Println()
		c.io.Println("Run 'contentkeeper login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		c.io.Println("Session: authenticated")
		c.io.Printf("Username: %s\n", session.Username)
		c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))

		remaining := time.Until(session.ExpiresAt)
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired, it will be refreshed on next request.")
		}
	}

	// Состояние офлайн-очереди и счетчик несинхронизированных изменений
	status := c.queueService.GetStatus(ctx)
	c.io.Println()
	if status.IsOnline {
		c.io.Println("Network: online")
	} else {
		c.io.Println("Network: offline")
	}
	c.io.Printf("Queue: %d pending, %d failed\n", status.Pending, status.Failed)

	pending := c.syncService.GetPendingSyncCount(ctx)
	if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d change(s) waiting to be pushed\n", pending)
		c.io.Println("Run 'contentkeeper sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All changes synchronized with server")
	}

	return nil
}
