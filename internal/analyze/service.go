package analyze

import (
	"context"
	"fmt"
	"io"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/cache"
	"github.com/pvoronin/newsgauge/internal/fetch"
	"github.com/pvoronin/newsgauge/internal/geo"
	"github.com/pvoronin/newsgauge/internal/lexicon"
	"github.com/pvoronin/newsgauge/internal/model"
)

// Service bundles the fetcher and the analyzer into the full
// URL-to-report flow consumed by the CLI and the batch processor.
type Service struct {
	fetcher  *fetch.Fetcher
	analyzer *Analyzer
}

// NewService assembles the whole stack from config. logw receives
// diagnostic warnings; pass io.Discard to silence them.
func NewService(cfg *model.Config, logw io.Writer) (*Service, error) {
	provider, err := annotate.NewProvider(cfg.Annotate, lexicon.NewStopwords())
	if err != nil {
		return nil, fmt.Errorf("annotation engine: %w", err)
	}

	var geocoder geo.Geocoder
	if cfg.Geo.Enabled {
		geocoder = geo.NewNominatim(cfg.Geo)
	}

	store := cache.New(cfg.Cache)
	return &Service{
		fetcher:  fetch.NewFetcher(cfg.HTTP, store, cfg.Cache.DiskTTL),
		analyzer: New(provider, geocoder, cfg.Analysis, logw),
	}, nil
}

// Analyzer exposes the underlying analyzer for direct text analysis.
func (s *Service) Analyzer() *Analyzer {
	return s.analyzer
}

// AnalyzeURL fetches the article behind url and analyzes it.
func (s *Service) AnalyzeURL(ctx context.Context, url string) (*model.Report, error) {
	article, err := s.fetcher.FetchArticle(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	return s.Analyze(ctx, article)
}

// Analyze runs the full analysis on an already-extracted article.
func (s *Service) Analyze(ctx context.Context, article model.Article) (*model.Report, error) {
	return s.analyzer.Analyze(ctx, article)
}
