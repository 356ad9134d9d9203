package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ecoheroes/ecoheroes-go/internal/api"
	"github.com/ecoheroes/ecoheroes-go/internal/engine"
	"github.com/ecoheroes/ecoheroes-go/internal/store"
)

const (
	appConfigDirName = "ecoheroes"
	progressDBName   = "progress.db"
)

// defaultDBPath resolves the per-user save location, falling back to the
// working directory when the OS config dir is unavailable.
func defaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return progressDBName
	}
	return filepath.Join(configDir, appConfigDirName, progressDBName)
}

func main() {
	addr := flag.String("addr", "127.0.0.1:8942", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the progress database")
	flag.Parse()

	logger := log.New(os.Stdout, "[ECOHEROES] ", log.LstdFlags)

	if dir := filepath.Dir(*dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatalf("create data dir: %v", err)
		}
	}

	db, err := store.New(*dbPath)
	if err != nil {
		logger.Fatalf("open progress db: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatalf("migrate progress db: %v", err)
	}

	eng := engine.New(store.NewPlayerStore(db), db)
	eng.Load()

	server := api.NewServer(eng, db)
	httpServer := &http.Server{
		Addr:    *addr,
		Handler: server.Routes(),
	}

	go func() {
		logger.Printf("listening on %s (db: %s)", *addr, *dbPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}

	// Let any in-flight save land before the process exits.
	eng.Flush()
}
