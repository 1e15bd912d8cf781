// Command shelfview serves and queries a product catalog.
//
//	@title			ShelfView API
//	@version		1.0
//	@description	Filter, sort and paginate a product catalog.
//	@license.name	MIT
//	@BasePath		/api/v1
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	_ "github.com/HerbHall/shelfview/docs"
	"github.com/HerbHall/shelfview/internal/catalog"
	"github.com/HerbHall/shelfview/internal/config"
	"github.com/HerbHall/shelfview/internal/logging"
	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/internal/server"
	"github.com/HerbHall/shelfview/internal/version"
	"github.com/HerbHall/shelfview/internal/view"
)

const usage = `usage: shelfview <command> [flags]

commands:
  serve     run the HTTP API (default)
  query     print one page of the catalog
  import    copy a YAML dataset into a SQLite database
  backup    archive a SQLite dataset and its config
  version   print build information
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		runServe(args)
		return
	}

	switch args[0] {
	case "serve":
		runServe(args[1:])
	case "query":
		runQuery(args[1:])
	case "import":
		runImport(args[1:])
	case "backup":
		runBackup(args[1:])
	case "version":
		fmt.Println(version.Info())
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", args[0], usage)
		os.Exit(2)
	}
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.GetString("log.level"), cfg.GetString("log.format"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("ShelfView server starting", zap.String("version", version.Short()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := catalog.Open(ctx, cfg, logger.Named("catalog"))
	if err != nil {
		logger.Fatal("failed to open catalog", zap.Error(err))
	}
	pipeline, err := query.NewPipeline(cat, cfg.GetInt("query.cache_size"), logger.Named("query"))
	if err != nil {
		logger.Fatal("failed to build query pipeline", zap.Error(err))
	}

	pageSize := cfg.GetInt("view.default_page_size")
	registry := view.NewRegistry(pipeline,
		cfg.GetInt("view.max_views"),
		cfg.GetDuration("view.ttl"),
		pageSize,
		logger.Named("view"),
	)

	var limiter *rate.Limiter
	if limit := cfg.GetFloat64("server.rate_limit"); limit > 0 {
		limiter = rate.NewLimiter(rate.Limit(limit), max(cfg.GetInt("server.rate_burst"), 1))
	}

	addr := net.JoinHostPort(cfg.GetString("server.host"), cfg.GetString("server.port"))
	srv := server.New(addr, logger.Named("server"), limiter,
		catalog.NewHandler(pipeline, pageSize, logger.Named("catalog")),
		catalog.NewViewHandler(registry, logger.Named("views")),
	)

	// Start server in background
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("ShelfView server ready", zap.String("addr", addr))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("ShelfView server stopped")
}
