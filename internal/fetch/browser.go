package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/fortuna/courtside/internal/config"
)

// Browser fetches pages through a headless Chrome instance. The source
// site assembles its stat tables with JavaScript, so a plain HTTP GET
// returns commented-out markup; rendering is not optional.
//
// A Browser holds one allocator and must not be shared across goroutines;
// bulk runs create one Browser per worker.
type Browser struct {
	allocCtx     context.Context
	allocCancel  context.CancelFunc
	settleDelay  time.Duration
	selectorWait time.Duration
	timeout      time.Duration
}

// NewBrowser starts a Chrome allocator with the usual scraping flags.
func NewBrowser(cfg config.Config) *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cfg.UserAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Browser{
		allocCtx:     allocCtx,
		allocCancel:  allocCancel,
		settleDelay:  cfg.SettleDelay,
		selectorWait: cfg.SelectorWait,
		timeout:      cfg.FetchTimeout,
	}
}

// Fetch navigates to url, waits for selector to become visible (or for the
// document body when selector is empty), lets the page settle, and returns
// the rendered HTML.
func (b *Browser) Fetch(ctx context.Context, url, selector string) (string, error) {
	tabCtx, tabCancel := chromedp.NewContext(b.allocCtx)
	defer tabCancel()

	runCtx, runCancel := context.WithTimeout(tabCtx, b.timeout)
	defer runCancel()

	// Propagate caller cancellation into the tab context.
	stop := context.AfterFunc(ctx, runCancel)
	defer stop()

	if selector == "" {
		selector = "body"
	}

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		b.waitVisible(selector),
		chromedp.Sleep(b.settleDelay),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	return html, nil
}

// waitVisible bounds the selector wait separately from the overall fetch
// budget, so a page that renders without the target fails fast.
func (b *Browser) waitVisible(selector string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		waitCtx, cancel := context.WithTimeout(ctx, b.selectorWait)
		defer cancel()
		return chromedp.WaitVisible(selector, chromedp.ByQuery).Do(waitCtx)
	})
}

// Close shuts the allocator down.
func (b *Browser) Close() error {
	b.allocCancel()
	return nil
}
