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

	"github.com/go-chi/chi/v5"

	"github.com/Mohithanjan23/crackbank-backend/internal/adapters/corpusfile"
	"github.com/Mohithanjan23/crackbank-backend/internal/adapters/gemini"
	httpadapter "github.com/Mohithanjan23/crackbank-backend/internal/adapters/http"
	"github.com/Mohithanjan23/crackbank-backend/internal/adapters/notify"
	pg "github.com/Mohithanjan23/crackbank-backend/internal/adapters/postgres"
	"github.com/Mohithanjan23/crackbank-backend/internal/config"
	"github.com/Mohithanjan23/crackbank-backend/internal/corpus"
	"github.com/Mohithanjan23/crackbank-backend/internal/metrics"
	"github.com/Mohithanjan23/crackbank-backend/internal/ports"
	"github.com/Mohithanjan23/crackbank-backend/internal/services/breachcheck"
	"github.com/Mohithanjan23/crackbank-backend/internal/services/summarize"
	"github.com/Mohithanjan23/crackbank-backend/internal/workers/notifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Corpus source: postgres when configured, JSON file otherwise.
	var source ports.CorpusSource
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		defer db.Close()
		source = db
	} else {
		source = corpusfile.Loader{Path: cfg.CorpusFile}
	}

	// The corpus is loaded exactly once, before any request is served, and
	// is immutable from here on. A failed load degrades to an empty corpus:
	// the check endpoint stays up and answers "not breached".
	records, err := source.Load(ctx)
	if err != nil {
		log.Printf("corpus load failed, serving empty corpus: %v", err)
		records = nil
	}
	corp := corpus.New(records)
	log.Printf("corpus loaded: %d breach records", corp.Len())

	m := metrics.New()

	dispatcher := notifier.NewDispatcher(notify.NewConsole(), cfg.NotifyQueue)
	dispatcher.Run(ctx, cfg.NotifyWorkers)

	checker := breachcheck.New(corp, dispatcher, breachcheck.SleepDelay(cfg.CheckDelay))
	reporter := summarize.New(gemini.NewClient(cfg.GoogleAPIKey, cfg.GeminiModel))

	srv := httpadapter.New(checker, reporter, m, cfg.AllowedOrigins)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
