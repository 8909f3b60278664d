package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/courtside/internal/api/rest"
	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/fetch"
	"github.com/fortuna/courtside/internal/ingest"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

const (
	appName    = "courtside"
	appVersion = "1.0.0"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <command>

Commands:
  ingest-dir     ingest archived box-score documents from -dir
  ingest-url     fetch and ingest a single box score from -url
  scrape-season  discover and ingest every game of -season
  update         refetch -season through -end-season, patching changed games
  stats          print aggregate counts of everything stored
  serve          run the status HTTP API

Flags:
`, appName)
	flag.PrintDefaults()
}

func main() {
	cfg := config.Load()

	var (
		dsn       = flag.String("dsn", cfg.DatabaseDSN, "PostgreSQL DSN")
		redisURL  = flag.String("redis", cfg.RedisURL, "Redis URL for the seen cache (optional)")
		dir       = flag.String("dir", cfg.ScoresDir, "directory of archived box-score documents")
		url       = flag.String("url", "", "box-score URL for ingest-url")
		season    = flag.Int("season", 0, "season by the site's label, e.g. 2024 for 2023-24")
		endSeason = flag.Int("end-season", 0, "last season for update runs (defaults to -season)")
		workers   = flag.Int("workers", cfg.Workers, "concurrent browser transports for scrape-season")
		port      = flag.String("port", cfg.HTTPPort, "HTTP port for serve")
	)
	flag.Usage = usage
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		usage()
		os.Exit(2)
	}

	cfg.DatabaseDSN = *dsn
	cfg.RedisURL = *redisURL
	cfg.ScoresDir = *dir
	cfg.HTTPPort = *port
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	log.Printf("=== %s v%s ===", appName, appVersion)

	db, err := store.NewDatabase(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	var seen *cache.SeenCache
	if cfg.RedisURL != "" {
		seen, err = cache.NewSeenCache(cfg.RedisURL)
		if err != nil {
			log.Printf("[main] redis unavailable, running without seen cache: %v", err)
			seen = nil
		} else {
			defer seen.Close()
		}
	}

	ingestRepo := repository.NewIngestRepository(db)
	gameRepo := repository.NewGameRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "ingest-dir":
		ingester := ingest.NewDirectoryIngester(ingestRepo, seen)
		report, err := ingester.IngestDirectory(ctx, *dir)
		if err != nil {
			log.Fatalf("ingest-dir: %v (partial: %s)", err, report)
		}

	case "ingest-url":
		if *url == "" {
			log.Fatalf("ingest-url requires -url")
		}
		collector := newCollector(cfg, ingestRepo, seen)
		defer collector.Close()

		var report ingest.Report
		outcome, err := collector.IngestURL(ctx, *url, &report)
		if err != nil {
			log.Fatalf("ingest-url: %v", err)
		}
		log.Printf("%s: %s", *url, outcome)

	case "scrape-season":
		if *season == 0 {
			log.Fatalf("scrape-season requires -season")
		}
		collectors := make([]*ingest.Collector, cfg.Workers)
		for i := range collectors {
			collectors[i] = newCollector(cfg, ingestRepo, seen)
			defer collectors[i].Close()
		}

		urls, err := collectors[0].DiscoverSeason(ctx, *season)
		if err != nil {
			log.Fatalf("discover season %d: %v", *season, err)
		}

		runner := ingest.NewRunner(collectors, ingestRepo, seen)
		runner.Run(ctx, urls)

	case "update":
		if *season == 0 {
			log.Fatalf("update requires -season")
		}
		last := *endSeason
		if last == 0 {
			last = *season
		}
		collector := newCollector(cfg, ingestRepo, seen)
		defer collector.Close()

		refresher := ingest.NewRefresher(collector, gameRepo, ingestRepo)
		report, err := refresher.UpdateRange(ctx, *season, last)
		if err != nil {
			log.Fatalf("update: %v (partial: %s)", err, report)
		}

	case "stats":
		totals, err := ingestRepo.Stats(ctx)
		if err != nil {
			log.Fatalf("stats: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(totals); err != nil {
			log.Fatalf("stats: %v", err)
		}

	case "serve":
		server := rest.NewServer(cfg.HTTPPort, db)
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("[main] shutdown: %v", err)
			}
		}()

		log.Printf("[main] listening on :%s", cfg.HTTPPort)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}

	default:
		usage()
		os.Exit(2)
	}
}

func newCollector(cfg config.Config, repo *repository.IngestRepository, seen *cache.SeenCache) *ingest.Collector {
	browser := fetch.NewBrowser(cfg)
	fetcher := fetch.New(browser, cfg)
	return ingest.NewCollector(fetcher, repo, seen, cfg)
}
