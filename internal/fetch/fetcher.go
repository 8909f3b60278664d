package fetch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/fortuna/courtside/internal/config"
)

// Transport is the opaque page-fetching capability the Fetcher wraps.
type Transport interface {
	Fetch(ctx context.Context, url, selector string) (string, error)
	Close() error
}

// Kind classifies a terminal fetch failure.
type Kind int

const (
	// KindTransport covers navigation and protocol failures.
	KindTransport Kind = iota
	// KindTimeout covers deadline expiry, including selector waits.
	KindTimeout
)

func (k Kind) String() string {
	if k == KindTimeout {
		return "timeout"
	}
	return "transport"
}

// Error is a fetch that exhausted its retries. Callers skip the unit of
// work and move on; one dead page must not end a bulk run.
type Error struct {
	URL  string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s failed (%s): %v", e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fetcher wraps a Transport with the site's politeness contract: a shared
// token bucket admitting requests FIFO, and bounded retries with a
// linearly growing pause between attempts.
type Fetcher struct {
	transport  Transport
	limiter    *rate.Limiter
	delay      time.Duration
	maxRetries int
}

// New builds a Fetcher around transport. The limiter starts empty so the
// very first request also waits its turn.
func New(transport Transport, cfg config.Config) *Fetcher {
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	limiter.AllowN(time.Now(), 1)

	return &Fetcher{
		transport:  transport,
		limiter:    limiter,
		delay:      cfg.SettleDelay,
		maxRetries: cfg.MaxRetries,
	}
}

// Fetch retrieves url, waiting on the rate limiter before every attempt.
// Attempt n sleeps delay×n before retrying. Exhaustion returns *Error
// with the last failure's classification.
func (f *Fetcher) Fetch(ctx context.Context, url, selector string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, f.delay*time.Duration(attempt-1)); err != nil {
				return "", &Error{URL: url, Kind: KindTransport, Err: err}
			}
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return "", &Error{URL: url, Kind: KindTransport, Err: err}
		}

		html, err := f.transport.Fetch(ctx, url, selector)
		if err == nil {
			return html, nil
		}

		lastErr = err
		log.Printf("[fetch] attempt %d/%d for %s failed: %v", attempt, f.maxRetries, url, err)
	}

	return "", &Error{URL: url, Kind: classify(lastErr), Err: lastErr}
}

// Close releases the underlying transport.
func (f *Fetcher) Close() error {
	return f.transport.Close()
}

func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return KindTimeout
	}
	return KindTransport
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
