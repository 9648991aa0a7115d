// ChessCore - a chess position server with check detection and safe-move
// maps.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hailam/chesscore/internal/config"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/server"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	addr       = flag.String("addr", "", "listen address (overrides config)")
	dataDir    = flag.String("data", "", "database directory (overrides config)")
	inMemory   = flag.Bool("memory", false, "keep games in memory only")
	logBadger  = flag.Bool("log-badger", false, "forward badger logs")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *inMemory {
		cfg.InMemory = true
	}
	if *logBadger {
		cfg.LogBadger = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer store.Close()

	mgr, err := game.NewManager(store, cfg.StartFEN)
	if err != nil {
		log.Fatalf("game manager: %v", err)
	}
	srv := server.NewServer(mgr, cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Listen()
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Printf("http: %v", err)
		}
	case <-ctx.Done():
		log.Printf("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
		<-errc
	}
}

func openStorage(cfg config.Config) (*storage.Storage, error) {
	opts := storage.Options{
		Dir:      cfg.DataDir,
		InMemory: cfg.InMemory,
	}
	if cfg.LogBadger {
		opts.Logger = log.Default()
	}
	return storage.Open(opts)
}
