package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

var queueUsage = "Usage: contentkeeper queue <status|process|retry|clear|export>"

func (c *Cli) runQueue(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", queueUsage)
	}

	switch args[0] {
	case "status":
		return c.runQueueStatus(ctx)
	case "process":
		return c.runQueueProcess(ctx)
	case "retry":
		return c.runQueueRetry(ctx)
	case "clear":
		return c.runQueueClear(ctx)
	case "export":
		return c.runQueueExport(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], queueUsage)
	}
}

func (c *Cli) runQueueStatus(ctx context.Context) error {
	c.io.Println("=== Offline Queue ===")
	c.io.Println()

	status := c.queueService.GetStatus(ctx)

	if status.IsOnline {
		c.io.Println("Network: online")
	} else {
		c.io.Println("Network: offline")
	}
	c.io.Printf("Pending: %d, failed: %d\n", status.Pending, status.Failed)
	c.io.Println()

	if len(status.Items) > 0 {
		c.io.Println("Pending actions:")
		for i, item := range status.Items {
			c.io.Printf("%d. %s %s/%s (attempt %d/%d)\n",
				i+1, item.Action, item.EntityType, item.EntityID, item.RetryCount, item.MaxRetries)
		}
		c.io.Println()
	}

	if len(status.FailedItems) > 0 {
		c.io.Println("Failed actions:")
		for i, item := range status.FailedItems {
			c.io.Printf("%d. %s %s/%s\n", i+1, item.Action, item.EntityType, item.EntityID)
			if item.Error != "" {
				c.io.Printf("   Error: %s\n", item.Error)
			}
		}
		c.io.Println()
	}

	if status.Pending == 0 && status.Failed == 0 {
		c.io.Println("Queue is empty.")
	}

	return nil
}

// runQueueProcess выполняет накопленные действия, не делая полный sync
func (c *Cli) runQueueProcess(ctx context.Context) error {
	c.io.Println("=== Queue Process ===")
	c.io.Println()

	status := c.queueService.GetStatus(ctx)
	if status.Pending == 0 {
		c.io.Println("No pending actions.")
		return nil
	}
	if !status.IsOnline {
		c.io.Println("Server is unreachable, queued actions stay pending.")
		return nil
	}

	result, err := c.queueService.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to process queue: %w", err)
	}

	c.io.Printf("✓ %d succeeded, %d retrying, %d failed\n",
		len(result.Successful), len(result.Retrying), len(result.Failed))

	return nil
}

func (c *Cli) runQueueRetry(ctx context.Context) error {
	c.io.Println("=== Queue Retry ===")
	c.io.Println()

	before := c.queueService.GetStatus(ctx)
	if before.Failed == 0 {
		c.io.Println("No failed actions to retry.")
		return nil
	}

	c.queueService.RetryFailed(ctx)
	c.io.Printf("✓ %d failed action(s) returned to the queue.\n", before.Failed)

	// Сразу пробуем обработать, если есть связь
	result, err := c.queueService.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to process queue: %w", err)
	}

	c.io.Println()
	c.io.Printf("Processed now: %d succeeded, %d retrying, %d failed\n",
		len(result.Successful), len(result.Retrying), len(result.Failed))

	return nil
}

func (c *Cli) runQueueClear(ctx context.Context) error {
	c.io.Println("=== Queue Clear ===")
	c.io.Println()

	status := c.queueService.GetStatus(ctx)
	total := status.Pending + status.Failed
	if total == 0 {
		c.io.Println("Queue is already empty.")
		return nil
	}

	c.io.Printf("About to drop %d queued action(s). They will never reach the server.\n", total)
	confirmed, err := c.io.Confirm("Clear the queue?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.io.Println("Clear cancelled.")
		return nil
	}

	c.queueService.ClearAll(ctx)
	c.io.Println()
	c.io.Println("✓ Queue cleared.")

	return nil
}

// runQueueExport печатает отладочный дамп очереди в JSON
func (c *Cli) runQueueExport(ctx context.Context) error {
	export := c.queueService.ExportQueue()

	enc := json.NewEncoder(c.io)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode queue export: %w", err)
	}

	return nil
}
