package ingest

import (
	"fmt"

	"github.com/fortuna/courtside/internal/store/repository"
)

// Report counts what happened to every unit of work in a bulk run. It is
// returned alongside any terminal error so partial progress is never lost
// in the error path.
type Report struct {
	Fetched  int
	Parsed   int
	Ingested int
	Updated  int
	Skipped  int
	Failed   int
}

// Record tallies one store outcome.
func (r *Report) Record(outcome repository.Outcome) {
	switch outcome {
	case repository.OutcomeInserted:
		r.Ingested++
	case repository.OutcomeUpdated:
		r.Updated++
	case repository.OutcomeSkipped:
		r.Skipped++
	default:
		r.Failed++
	}
}

// Merge folds another report into this one.
func (r *Report) Merge(other Report) {
	r.Fetched += other.Fetched
	r.Parsed += other.Parsed
	r.Ingested += other.Ingested
	r.Updated += other.Updated
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}

func (r Report) String() string {
	return fmt.Sprintf("fetched=%d parsed=%d ingested=%d updated=%d skipped=%d failed=%d",
		r.Fetched, r.Parsed, r.Ingested, r.Updated, r.Skipped, r.Failed)
}
