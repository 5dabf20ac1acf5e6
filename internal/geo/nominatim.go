package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/pvoronin/newsgauge/internal/model"
)

// Nominatim is a geocoder backed by the OpenStreetMap Nominatim search
// API. Lookups are rate-limited per the service usage policy and results
// (including misses) are cached.
type Nominatim struct {
	client  *resty.Client
	limiter *rate.Limiter
	cache   *gocache.Cache
	timeout time.Duration
}

type nominatimResult struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address struct {
		Country string `json:"country"`
	} `json:"address"`
}

// NewNominatim creates the client from configuration.
func NewNominatim(cfg model.GeoConfig) *Nominatim {
	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", cfg.UserAgent)
	return &Nominatim{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cache:   gocache.New(cacheTTL, 10*time.Minute),
		timeout: timeout,
	}
}

// Geocode resolves a place name. The per-lookup timeout bounds the
// combined wait for the rate limiter and the HTTP round trip.
func (g *Nominatim) Geocode(ctx context.Context, name string) (*Place, error) {
	if cached, found := g.cache.Get(name); found {
		if cached == nil {
			return nil, ErrNotFound
		}
		place := cached.(Place)
		return &place, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":              name,
			"format":         "json",
			"addressdetails": "1",
			"limit":          "1",
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geocode %q: HTTP %d", name, resp.StatusCode())
	}

	var results []nominatimResult
	if err := json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("geocode %q: decode: %w", name, err)
	}
	if len(results) == 0 {
		g.cache.SetDefault(name, nil)
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: bad latitude: %w", name, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: bad longitude: %w", name, err)
	}

	place := Place{Latitude: lat, Longitude: lon, Country: results[0].Address.Country}
	g.cache.SetDefault(name, place)
	return &place, nil
}
