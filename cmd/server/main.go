package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soaringjerry/Oasis/internal/api"
	"github.com/soaringjerry/Oasis/internal/config"
	dbstore "github.com/soaringjerry/Oasis/internal/db"
	"github.com/soaringjerry/Oasis/internal/middleware"
	"github.com/soaringjerry/Oasis/internal/services"
	"github.com/soaringjerry/Oasis/internal/utils"
)

// openKV opens the configured backend, sealed when a passphrase is set.
func openKV(cfg config.Config) (dbstore.KV, error) {
	var (
		kv  dbstore.KV
		err error
	)
	switch cfg.StoreBackend {
	case "badger":
		kv, err = dbstore.OpenBadgerKV(cfg.BadgerDir)
	case "memory":
		kv = dbstore.NewMemoryKV()
	default:
		kv, err = dbstore.OpenSQLiteKV(cfg.SQLitePath, cfg.MigrationsDir)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	if cfg.StorePassphrase == "" {
		return kv, nil
	}
	sealed, err := dbstore.NewSealedKV(kv, cfg.StorePassphrase)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return sealed, nil
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		config.Exitf("config: %v", err)
	}
	for _, w := range cfg.Warnings() {
		log.Print(w)
	}

	kv, err := openKV(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			log.Printf("warning: failed to close store: %v", cerr)
		}
	}()
	repo := dbstore.NewRecordRepository(kv, cfg.StoreKey)
	history := services.NewHistoryService(repo)
	if _, err := ImportLegacyIfNeeded(cfg.LegacySnapshot, repo, history); err != nil {
		log.Printf("legacy import skipped: %v", err)
	}

	tokens := middleware.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL)
	router := api.NewRouter(history, tokens)

	mux := http.NewServeMux()
	router.Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "Oasis API",
			"locale":     locale,
			"msg":        utils.T(locale, "health.ok"),
			"store":      cfg.StoreBackend,
			"commit":     cfg.Commit,
			"build_time": cfg.BuildTime,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     cfg.Commit,
			"build_time": cfg.BuildTime,
		})
	})
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	handler := middleware.Chain(mux,
		middleware.AccessLog,
		middleware.CORS(cfg.CORSOrigin),
		middleware.SecureHeaders,
		middleware.NoStore,
		middleware.Locale(cfg.DefaultLocale),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go router.SweepEvery(ctx, time.Minute, cfg.SessionTTL)

	srv := &http.Server{Addr: cfg.Addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Printf("Oasis server listening on %s (store=%s)", cfg.Addr, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
