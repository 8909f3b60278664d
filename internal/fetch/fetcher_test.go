package fetch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/config"
)

// fakeTransport fails for the first len(errs) calls, then succeeds.
type fakeTransport struct {
	calls int
	errs  []error
	html  string
}

func (f *fakeTransport) Fetch(ctx context.Context, url, selector string) (string, error) {
	f.calls++
	if f.calls <= len(f.errs) {
		return "", f.errs[f.calls-1]
	}
	return f.html, nil
}

func (f *fakeTransport) Close() error {
	return nil
}

func testConfig() config.Config {
	return config.Config{
		RequestsPerSecond: 1000,
		SettleDelay:       time.Millisecond,
		MaxRetries:        3,
	}
}

func TestFetchFirstAttempt(t *testing.T) {
	transport := &fakeTransport{html: "<html>ok</html>"}
	fetcher := New(transport, testConfig())

	html, err := fetcher.Fetch(context.Background(), "https://example.com/x", "#content")
	require.NoError(t, err)
	require.Equal(t, "<html>ok</html>", html)
	require.Equal(t, 1, transport.calls)
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	transport := &fakeTransport{
		errs: []error{
			fmt.Errorf("net::ERR_CONNECTION_RESET"),
			fmt.Errorf("net::ERR_CONNECTION_RESET"),
		},
		html: "<html>ok</html>",
	}
	fetcher := New(transport, testConfig())

	html, err := fetcher.Fetch(context.Background(), "https://example.com/x", "#content")
	require.NoError(t, err)
	require.Equal(t, "<html>ok</html>", html)
	require.Equal(t, 3, transport.calls)
}

func TestFetchExhaustionTimeout(t *testing.T) {
	transport := &fakeTransport{
		errs: []error{
			context.DeadlineExceeded,
			context.DeadlineExceeded,
			context.DeadlineExceeded,
		},
	}
	fetcher := New(transport, testConfig())

	_, err := fetcher.Fetch(context.Background(), "https://example.com/x", "#content")
	require.Error(t, err)
	require.Equal(t, 3, transport.calls)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, KindTimeout, fetchErr.Kind)
	require.Equal(t, "https://example.com/x", fetchErr.URL)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchExhaustionTransport(t *testing.T) {
	transport := &fakeTransport{
		errs: []error{
			fmt.Errorf("net::ERR_NAME_NOT_RESOLVED"),
			fmt.Errorf("net::ERR_NAME_NOT_RESOLVED"),
			fmt.Errorf("net::ERR_NAME_NOT_RESOLVED"),
		},
	}
	fetcher := New(transport, testConfig())

	_, err := fetcher.Fetch(context.Background(), "https://example.com/x", "#content")
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, KindTransport, fetchErr.Kind)
}

func TestFetchTimeoutByMessage(t *testing.T) {
	// chromedp wraps some deadline failures into plain messages
	require.Equal(t, KindTimeout, classify(fmt.Errorf("waiting for selector: Timeout exceeded")))
	require.Equal(t, KindTransport, classify(fmt.Errorf("connection refused")))
}

func TestFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport := &fakeTransport{html: "<html>ok</html>"}
	fetcher := New(transport, testConfig())

	_, err := fetcher.Fetch(ctx, "https://example.com/x", "#content")
	require.Error(t, err)
	require.Zero(t, transport.calls)
}
