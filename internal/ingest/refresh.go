package ingest

import (
	"context"
	"errors"
	"log"

	"github.com/fortuna/courtside/internal/scrape"
	"github.com/fortuna/courtside/internal/store/repository"
)

// Refresher refetches stored seasons and patches games whose scores have
// changed since ingestion (corrections, or games ingested mid-update on
// the source side).
type Refresher struct {
	collector *Collector
	games     *repository.GameRepository
	repo      *repository.IngestRepository
}

// NewRefresher creates a refresher around a single collector.
func NewRefresher(collector *Collector, games *repository.GameRepository, repo *repository.IngestRepository) *Refresher {
	return &Refresher{collector: collector, games: games, repo: repo}
}

// UpdateRange rediscovers every season in [startSeason, endSeason] and
// updates changed games. Unchanged games count as skipped; a game the
// store has never seen is inserted whole.
func (r *Refresher) UpdateRange(ctx context.Context, startSeason, endSeason int) (Report, error) {
	var report Report

	for season := startSeason; season <= endSeason; season++ {
		urls, err := r.collector.DiscoverSeason(ctx, season)
		if err != nil {
			log.Printf("[ingest] season %d discovery failed: %v", season, err)
			report.Failed++
			continue
		}

		for _, url := range urls {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			r.refreshGame(ctx, url, &report)
		}
	}

	log.Printf("[ingest] update run complete: %s", report)
	return report, nil
}

func (r *Refresher) refreshGame(ctx context.Context, url string, report *Report) {
	gameID := scrape.GameIDFromURL(url)
	if gameID == "" {
		log.Printf("[ingest] not a box-score URL: %s", url)
		report.Failed++
		return
	}

	box, err := r.collector.FetchBoxScore(ctx, url, report)
	if err != nil {
		log.Printf("[ingest] %s: %v", url, err)
		report.Failed++
		return
	}

	existing, err := r.games.GetByGameID(ctx, gameID)
	switch {
	case err == nil:
		if existing.HomeScore+existing.AwayScore == box.ScoreSum() {
			report.Skipped++
			return
		}
	case errors.Is(err, repository.ErrNotFound):
		// fall through to Update, which inserts the whole game
	default:
		log.Printf("[ingest] %s: %v", gameID, err)
		report.Failed++
		return
	}

	outcome, err := r.repo.Update(ctx, box)
	if err != nil {
		log.Printf("[ingest] %s: %v", gameID, err)
	}
	report.Record(outcome)
}
