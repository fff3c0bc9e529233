package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockboard/internal/api"
	"stockboard/internal/config"
	"stockboard/internal/market"
	"stockboard/internal/portfolio"
	"stockboard/internal/scheduler"
	"stockboard/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stockboard starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init store
	st, err := store.NewSQLiteStore(cfg.Database.SQLitePath, cfg.Portfolio.SeedSymbols)
	if err != nil {
		log.Fatalf("[FATAL] init store: %v", err)
	}
	defer st.Close()

	// Init upstream fetcher
	fetcher := market.NewYahooFetcher(
		cfg.Upstream.ChartBaseURL,
		cfg.Upstream.SearchBaseURL,
		cfg.Proxy,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
	)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init portfolio service
	svc := portfolio.NewService(st, fetcher,
		cfg.Portfolio.Concurrency,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
	)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, svc)
	if err := sched.Register(cfg.Schedule.SummaryCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init HTTP server
	handler := api.NewHandler(svc, st)
	router := api.NewRouter(handler, cfg.Server.StaticDir)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("[INFO] HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] stockboard stopped")
}
