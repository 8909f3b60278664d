package ingest

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/scrape"
	"github.com/fortuna/courtside/internal/store/repository"
)

// DirectoryIngester processes a directory of previously archived
// box-score documents. Per-file failures are counted and logged, never
// fatal; one corrupt file must not sink a ten-thousand-file backfill.
type DirectoryIngester struct {
	repo *repository.IngestRepository
	seen *cache.SeenCache
}

// NewDirectoryIngester creates a directory ingester. seen may be nil.
func NewDirectoryIngester(repo *repository.IngestRepository, seen *cache.SeenCache) *DirectoryIngester {
	return &DirectoryIngester{repo: repo, seen: seen}
}

// IngestDirectory ingests every *.html file in dir, in name order. The
// file stem is the game id.
func (d *DirectoryIngester) IngestDirectory(ctx context.Context, dir string) (Report, error) {
	var report Report

	paths, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return report, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(paths)

	log.Printf("[ingest] processing %d files from %s", len(paths), dir)

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		gameID := strings.TrimSuffix(filepath.Base(path), ".html")
		outcome, err := d.ingestFile(ctx, path, gameID, &report)
		if err != nil {
			log.Printf("[ingest] %s: %v", gameID, err)
		}
		report.Record(outcome)

		if (i+1)%100 == 0 {
			log.Printf("[ingest] progress %d/%d (%s)", i+1, len(paths), report)
		}
	}

	log.Printf("[ingest] directory run complete: %s", report)
	return report, nil
}

func (d *DirectoryIngester) ingestFile(ctx context.Context, path, gameID string, report *Report) (repository.Outcome, error) {
	html, err := scrape.DecodeFile(path)
	if err != nil {
		return repository.OutcomeFailed, err
	}

	doc, err := scrape.ParseDocument(html)
	if err != nil {
		return repository.OutcomeFailed, err
	}

	box, err := scrape.Assemble(doc, gameID)
	if err != nil {
		return repository.OutcomeFailed, err
	}
	report.Parsed++

	outcome, err := d.repo.Ingest(ctx, box)
	if outcome == repository.OutcomeInserted {
		if markErr := d.seen.MarkIngested(ctx, gameID); markErr != nil {
			log.Printf("[ingest] failed to mark %s as seen: %v", gameID, markErr)
		}
	}
	return outcome, err
}
