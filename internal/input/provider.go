// Package input supplies personal puzzle inputs: from the local cache
// when present, otherwise downloaded from adventofcode.com with the
// stored session cookie and written through to the cache.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"aoc/internal/ident"
	"aoc/internal/store"
	"aoc/pkg/logx"
)

const defaultBaseURL = "https://adventofcode.com"

var (
	// ErrNotLoggedIn means a download was needed but no session cookie
	// is stored. Run `aoc login` first.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotFound means the server has no input for the requested day.
	ErrNotFound = errors.New("puzzle input not found")
)

// Provider implements the fetch contract the scheduler depends on.
type Provider struct {
	store  *store.Store
	client *http.Client
	log    logx.Logger

	// Serialized downloads keep load on adventofcode.com low; cache
	// hits never touch the limiter.
	limiter *rate.Limiter

	baseURL string
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL redirects downloads, used by tests.
func WithBaseURL(url string) Option {
	return func(p *Provider) { p.baseURL = url }
}

// WithClient replaces the HTTP client.
func WithClient(c *http.Client) Option {
	return func(p *Provider) { p.client = c }
}

func New(st *store.Store, log logx.Logger, opts ...Option) *Provider {
	p := &Provider{
		store:   st,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fetch returns the puzzle input for a day, checking the cache before
// any network access. On a cache miss it downloads with the stored
// session cookie and caches the result.
func (p *Provider) Fetch(ctx context.Context, y ident.Year, d ident.Day) (string, error) {
	yd := ident.YearDay{Year: y, Day: d}

	cached, ok, err := p.store.ReadPuzzleInput(y, d)
	if err != nil {
		return "", err
	}
	if ok {
		p.log.Debug("input.cached", logx.Stringer("puzzle", yd))
		return cached, nil
	}

	input, err := p.download(ctx, y, d)
	if err != nil {
		return "", err
	}

	if err := p.store.SavePuzzleInput(y, d, input); err != nil {
		return "", err
	}
	return input, nil
}

func (p *Provider) download(ctx context.Context, y ident.Year, d ident.Day) (string, error) {
	yd := ident.YearDay{Year: y, Day: d}

	cookie, ok, err := p.store.SessionCookie()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotLoggedIn
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", p.baseURL, int(y), int(d))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Cookie", "session="+cookie)

	start := time.Now()
	p.log.Debug("input.download", logx.Stringer("puzzle", yd))

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download input for %s: %w", yd, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, yd)
	case resp.StatusCode != http.StatusOK:
		// adventofcode.com sends HTTP 400 instead of HTTP 401, so a
		// stale cookie is indistinguishable from other client errors.
		return "", fmt.Errorf("download for %s failed with HTTP %d (are you logged in?)",
			yd, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read input for %s: %w", yd, err)
	}

	p.log.Info("input.downloaded",
		logx.Stringer("puzzle", yd),
		logx.Int("bytes", len(body)),
		logx.Duration("took", time.Since(start)))

	return string(body), nil
}
