package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/contentkeeper/internal/client/api"
	"github.com/iudanet/contentkeeper/internal/client/auth"
	"github.com/iudanet/contentkeeper/internal/client/cli"
	"github.com/iudanet/contentkeeper/internal/client/data"
	"github.com/iudanet/contentkeeper/internal/client/delta"
	"github.com/iudanet/contentkeeper/internal/client/iocli"
	"github.com/iudanet/contentkeeper/internal/client/netmon"
	"github.com/iudanet/contentkeeper/internal/client/queue"
	"github.com/iudanet/contentkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/contentkeeper/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "contentkeeper-client.db", "Path to local database")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	// version и help не требуют хранилища и сервисов
	switch command {
	case "version":
		printVersion()
		return
	case "help":
		cli.PrintUsage()
		return
	}

	ctx := context.Background()

	// В CLI логи сервисов уходят в stderr и не мешают выводу команд
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	// Цикл опроса не запускаем: для одноразовой команды IsOnline
	// выполняет живую проверку health endpoint'а
	monitor := netmon.NewHTTPMonitor(apiClient.Health, 0, logger)

	tracker := delta.NewService(ctx, boltStorage, logger)
	authService := auth.NewService(apiClient, boltStorage, logger)

	executor := sync.NewQueueExecutor(apiClient, tracker, authService.AccessToken)
	queueService := queue.NewService(ctx, boltStorage, tracker, monitor, executor, logger)
	defer queueService.Close()

	dataService := data.NewService(boltStorage, queueService, logger)
	syncService := sync.NewService(apiClient, tracker, dataService, logger)

	c := cli.New(iocli.NewStdio(), authService, dataService, syncService, queueService)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseLogLevel переводит значение флага в slog.Level.
// Неизвестное значение трактуется как warn
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func printVersion() {
	fmt.Printf("ContentKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
