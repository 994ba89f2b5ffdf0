package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/contentkeeper/internal/client/auth"
	"github.com/iudanet/contentkeeper/internal/models"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	strategy := fs.String("strategy", "manual", "conflict resolution: local, remote, merge or manual")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse sync flags: %w", err)
	}

	res, err := resolutionFromFlag(*strategy)
	if err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	accessToken, err := c.authService.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return fmt.Errorf("not authenticated. Please run 'contentkeeper login' first")
		}
		return err
	}

	// Сначала реплеим действия из офлайн-очереди.
	// Без связи очередь инертна и вернет пустой результат
	processed, err := c.queueService.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to process offline queue: %w", err)
	}
	if total := len(processed.Successful) + len(processed.Retrying) + len(processed.Failed); total > 0 {
		c.io.Printf("Queued actions: %d succeeded, %d retrying, %d failed\n",
			len(processed.Successful), len(processed.Retrying), len(processed.Failed))
		c.io.Println()
	}

	c.io.Println("Starting synchronization with server...")

	summary, err := c.syncService.Sync(ctx, accessToken, res)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed!")
	c.io.Println()
	c.io.Printf("Pushed to server:  %d change(s)\n", summary.Pushed)
	c.io.Printf("Applied locally:   %d change(s)\n", summary.Applied)
	if summary.Conflicts > 0 {
		c.io.Printf("Conflicts:         %d\n", summary.Conflicts)
		if res == nil {
			c.io.Println()
			c.io.Println("⚠️  Conflicts were left unresolved (manual strategy).")
			c.io.Println("Re-run with -strategy local|remote|merge to resolve them.")
		}
	}
	c.io.Printf("Server timestamp:  %s\n", summary.ServerTimestamp.Format(time.RFC3339))

	return nil
}

// resolutionFromFlag переводит значение флага в Resolution.
// manual означает nil: конфликты остаются ждать решения пользователя.
func resolutionFromFlag(strategy string) (*models.Resolution, error) {
	switch strategy {
	case "manual", "":
		return nil, nil
	case "local":
		return &models.Resolution{Strategy: models.StrategyLocal}, nil
	case "remote":
		return &models.Resolution{Strategy: models.StrategyRemote}, nil
	case "merge":
		return &models.Resolution{Strategy: models.StrategyMerge}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s (expected local, remote, merge or manual)", strategy)
	}
}
