// Package cli реализует команды консольного клиента contentkeeper.
// Все команды работают через интерфейсы сервисов и iocli.IO,
// поэтому тестируются без сети и терминала.
package cli

import (
	"fmt"
	"os"

	"github.com/iudanet/contentkeeper/internal/client/auth"
	"github.com/iudanet/contentkeeper/internal/client/data"
	"github.com/iudanet/contentkeeper/internal/client/iocli"
	"github.com/iudanet/contentkeeper/internal/client/queue"
	"github.com/iudanet/contentkeeper/internal/client/sync"
)

// EnvPassword - переменная окружения с паролем для неинтерактивных сценариев
const EnvPassword = "CONTENTKEEPER_PASSWORD"

type Cli struct {
	io           iocli.IO
	authService  auth.Service
	dataService  data.Service
	syncService  sync.Service
	queueService queue.Service
}

func New(io iocli.IO, authService auth.Service, dataService data.Service, syncService sync.Service, queueService queue.Service) *Cli {
	return &Cli{
		io:           io,
		authService:  authService,
		dataService:  dataService,
		syncService:  syncService,
		queueService: queueService,
	}
}

// readPassword читает пароль из окружения или интерактивно.
// Приоритет: CONTENTKEEPER_PASSWORD, затем запрос с терминала.
func (c *Cli) readPassword(prompt string) (string, error) {
	if envPassword := os.Getenv(EnvPassword); envPassword != "" {
		return envPassword, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

func PrintUsage() {
	fmt.Println("ContentKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  contentkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: contentkeeper-client.db)")
	fmt.Println("  --log-level L  Service log level: debug, info, warn, error (default: warn)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Register new user")
	fmt.Println("  login                    Login to server")
	fmt.Println("  logout                   Logout and delete local session")
	fmt.Println("  status                   Show session and queue status")
	fmt.Println("  project add|list|delete  Manage projects")
	fmt.Println("  element add|list|delete  Manage content elements")
	fmt.Println("  template add|list|delete Manage templates")
	fmt.Println("  sync                     Synchronize local changes with server")
	fmt.Println("    -strategy local|remote|merge|manual   Conflict resolution (default: manual)")
	fmt.Println("  queue status|process|retry|clear|export  Manage the offline queue")
	fmt.Println("  version                  Show version information")
	fmt.Println("  help                     Show this help")
	fmt.Println()
	fmt.Println("Password can be supplied via the " + EnvPassword + " environment")
	fmt.Println("variable for scripting; otherwise it is prompted interactively.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  contentkeeper register")
	fmt.Println("  contentkeeper login")
	fmt.Println("  contentkeeper project add")
	fmt.Println("  contentkeeper element list <project-id>")
	fmt.Println("  contentkeeper sync -strategy merge")
	fmt.Println("  contentkeeper queue retry")
	fmt.Println("  contentkeeper --server https://example.com login")
}
