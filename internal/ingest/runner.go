package ingest

import (
	"context"
	"log"
	"sync"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/scrape"
	"github.com/fortuna/courtside/internal/store/repository"
)

// Runner fans a URL list out over several collectors. Each collector owns
// its own browser transport, so fetching parallelizes cleanly; assembled
// games funnel back into a single ingest loop, which keeps the store
// writer sequential and the shared rate limiters as the only sync points.
type Runner struct {
	collectors []*Collector
	repo       *repository.IngestRepository
	seen       *cache.SeenCache
}

// NewRunner creates a runner over the given collectors. seen may be nil.
func NewRunner(collectors []*Collector, repo *repository.IngestRepository, seen *cache.SeenCache) *Runner {
	return &Runner{collectors: collectors, repo: repo, seen: seen}
}

type fetched struct {
	box    *scrape.BoxScore
	report Report
}

// Run ingests every URL in the list and reports the tallies. Cancelling
// ctx stops feeding new work; in-flight fetches finish or fail on their
// own deadlines.
func (r *Runner) Run(ctx context.Context, urls []string) Report {
	jobs := make(chan string, len(r.collectors))
	results := make(chan fetched, len(r.collectors))

	var wg sync.WaitGroup
	for _, c := range r.collectors {
		wg.Add(1)
		go func(c *Collector) {
			defer wg.Done()
			r.fetchWorker(ctx, c, jobs, results)
		}(c)
	}

	go func() {
		defer close(jobs)
		for _, url := range urls {
			select {
			case jobs <- url:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var report Report
	for f := range results {
		report.Merge(f.report)
		if f.box == nil {
			continue
		}

		outcome, err := r.repo.Ingest(ctx, f.box)
		if err != nil {
			log.Printf("[ingest] %s: %v", f.box.Game.GameID, err)
		}
		if outcome == repository.OutcomeInserted || outcome == repository.OutcomeSkipped {
			if markErr := r.seen.MarkIngested(ctx, f.box.Game.GameID); markErr != nil {
				log.Printf("[ingest] failed to mark %s as seen: %v", f.box.Game.GameID, markErr)
			}
		}
		report.Record(outcome)
	}

	log.Printf("[ingest] run complete: %s", report)
	return report
}

func (r *Runner) fetchWorker(ctx context.Context, c *Collector, jobs <-chan string, results chan<- fetched) {
	for url := range jobs {
		var f fetched

		gameID := scrape.GameIDFromURL(url)
		switch {
		case gameID == "":
			log.Printf("[ingest] not a box-score URL: %s", url)
			f.report.Failed++
		case r.seen.AlreadyIngested(ctx, gameID):
			f.report.Skipped++
		default:
			box, err := c.FetchBoxScore(ctx, url, &f.report)
			if err != nil {
				log.Printf("[ingest] %s: %v", url, err)
				f.report.Failed++
			} else {
				f.box = box
			}
		}

		select {
		case results <- f:
		case <-ctx.Done():
			return
		}
	}
}
