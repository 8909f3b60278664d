package ingest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/fetch"
	"github.com/fortuna/courtside/internal/scrape"
	"github.com/fortuna/courtside/internal/store/repository"
)

// Collector drives the live path: fetch a box-score page, archive the raw
// document, assemble it and hand it to the store. One Collector owns one
// Fetcher and is used from a single goroutine.
type Collector struct {
	fetcher   *fetch.Fetcher
	repo      *repository.IngestRepository
	seen      *cache.SeenCache
	baseURL   string
	scoresDir string
}

// NewCollector creates a collector. seen may be nil.
func NewCollector(fetcher *fetch.Fetcher, repo *repository.IngestRepository, seen *cache.SeenCache, cfg config.Config) *Collector {
	return &Collector{
		fetcher:   fetcher,
		repo:      repo,
		seen:      seen,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		scoresDir: cfg.ScoresDir,
	}
}

// Close releases the collector's fetcher.
func (c *Collector) Close() error {
	return c.fetcher.Close()
}

// IngestURL fetches and stores one box-score page. Games already marked
// in the seen cache are skipped before any network traffic happens.
func (c *Collector) IngestURL(ctx context.Context, url string, report *Report) (repository.Outcome, error) {
	gameID := scrape.GameIDFromURL(url)
	if gameID == "" {
		return repository.OutcomeFailed, fmt.Errorf("not a box-score URL: %s", url)
	}

	if c.seen.AlreadyIngested(ctx, gameID) {
		return repository.OutcomeSkipped, nil
	}

	box, err := c.FetchBoxScore(ctx, url, report)
	if err != nil {
		return repository.OutcomeFailed, err
	}

	outcome, err := c.repo.Ingest(ctx, box)
	if outcome == repository.OutcomeInserted || outcome == repository.OutcomeSkipped {
		if markErr := c.seen.MarkIngested(ctx, gameID); markErr != nil {
			log.Printf("[ingest] failed to mark %s as seen: %v", gameID, markErr)
		}
	}
	return outcome, err
}

// FetchBoxScore fetches, archives and assembles a box-score page without
// storing it.
func (c *Collector) FetchBoxScore(ctx context.Context, url string, report *Report) (*scrape.BoxScore, error) {
	gameID := scrape.GameIDFromURL(url)
	if gameID == "" {
		return nil, fmt.Errorf("not a box-score URL: %s", url)
	}

	html, err := c.fetcher.Fetch(ctx, url, "#content")
	if err != nil {
		return nil, err
	}
	if report != nil {
		report.Fetched++
	}

	c.archive(gameID, html)

	doc, err := scrape.ParseDocument(html)
	if err != nil {
		return nil, err
	}

	box, err := scrape.Assemble(doc, gameID)
	if err != nil {
		return nil, err
	}
	if report != nil {
		report.Parsed++
	}

	return box, nil
}

// archive writes the raw document into the scores directory so the run
// can be replayed offline through the directory ingester. Best effort.
func (c *Collector) archive(gameID, html string) {
	if c.scoresDir == "" {
		return
	}
	if err := os.MkdirAll(c.scoresDir, 0o755); err != nil {
		log.Printf("[ingest] failed to create %s: %v", c.scoresDir, err)
		return
	}
	path := filepath.Join(c.scoresDir, gameID+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		log.Printf("[ingest] failed to archive %s: %v", path, err)
	}
}

// DiscoverSeason walks the season schedule: the league schedule page
// links one sub-page per month, and each of those links the box scores.
// The season argument follows the source site's labeling, the calendar
// year the season ends in (NBA_2024_games.html covers 2023-24).
func (c *Collector) DiscoverSeason(ctx context.Context, season int) ([]string, error) {
	scheduleURL := fmt.Sprintf("%s/leagues/NBA_%d_games.html", c.baseURL, season)
	log.Printf("[ingest] discovering season %d schedule", season)

	html, err := c.fetcher.Fetch(ctx, scheduleURL, "#content .filter")
	if err != nil {
		return nil, err
	}

	doc, err := scrape.ParseDocument(html)
	if err != nil {
		return nil, err
	}
	// monthly sub-pages look like /leagues/NBA_2024_games-october.html
	monthPages := collectLinks(doc, c.baseURL, func(href string) bool {
		return strings.Contains(href, "_games-")
	})

	var gameURLs []string
	for _, pageURL := range monthPages {
		if err := ctx.Err(); err != nil {
			return gameURLs, err
		}

		html, err := c.fetcher.Fetch(ctx, pageURL, "#all_schedule")
		if err != nil {
			log.Printf("[ingest] skipping schedule page %s: %v", pageURL, err)
			continue
		}

		doc, err := scrape.ParseDocument(html)
		if err != nil {
			log.Printf("[ingest] skipping schedule page %s: %v", pageURL, err)
			continue
		}

		gameURLs = append(gameURLs, collectLinks(doc, c.baseURL, func(href string) bool {
			return strings.Contains(href, "boxscore") && strings.Contains(href, ".html")
		})...)
	}

	log.Printf("[ingest] found %d games for season %d", len(gameURLs), season)
	return gameURLs, nil
}

// collectLinks gathers hrefs matching keep, resolved against baseURL.
// Relative site links start with "/"; absolute links pass through.
func collectLinks(doc *goquery.Document, baseURL string, keep func(string) bool) []string {
	var urls []string
	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || !keep(href) {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = baseURL + href
		}
		urls = append(urls, href)
	})
	return urls
}
