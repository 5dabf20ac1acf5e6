// Package fetch retrieves article pages over HTTP and extracts the title
// and body text for analysis.
package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pvoronin/newsgauge/internal/cache"
	"github.com/pvoronin/newsgauge/internal/model"
	"github.com/pvoronin/newsgauge/internal/util"
	"github.com/pvoronin/newsgauge/internal/worker"
)

// ErrRobotsDisallowed is returned when robots.txt forbids fetching the URL.
var ErrRobotsDisallowed = fmt.Errorf("disallowed by robots.txt")

// Fetcher downloads article HTML. It honors robots.txt when configured,
// rate-limits per domain and serves repeat fetches from cache.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	store      cache.Cache
	cacheTTL   time.Duration
}

// NewFetcher builds a fetcher from the HTTP config. Both store and the
// robots checker are optional; pass nil to disable them.
func NewFetcher(cfg model.HTTPConfig, store cache.Cache, cacheTTL time.Duration) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, ""),
	}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		limiter:   worker.NewLimiter(1, 2),
		store:     store,
		cacheTTL:  cacheTTL,
	}
	if cfg.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}
	return f
}

// Result carries the fetched page plus the metadata needed to attribute
// the article to its source.
type Result struct {
	HTML     string
	FinalURL string
	Status   int
}

// Fetch retrieves the page at rawURL. Cached pages bypass robots and
// rate-limit checks since no request leaves the process.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	key := cache.Key(rawURL)
	if f.store != nil {
		if body, ok := f.store.Get(key); ok {
			return &Result{HTML: string(body), FinalURL: rawURL, Status: http.StatusOK}, nil
		}
	}

	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s", ErrRobotsDisallowed, rawURL)
		}
		if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return nil, err
		}
	} else if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if f.store != nil {
		_ = f.store.Set(key, body, f.cacheTTL)
	}

	return &Result{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
		Status:   resp.StatusCode,
	}, nil
}

// FetchArticle fetches the page and extracts title, body text and site
// name into an Article ready for analysis.
func (f *Fetcher) FetchArticle(ctx context.Context, rawURL string) (model.Article, error) {
	res, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return model.Article{}, err
	}
	article, err := ExtractArticle(res.HTML, res.FinalURL)
	if err != nil {
		return model.Article{}, err
	}
	article.URL = res.FinalURL
	return article, nil
}
