// Package geo aggregates the geographic footprint of an article:
// deduplicated location mentions, geocoded coordinates, countries and ISO
// codes.
package geo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the geocoder has no result for a name.
var ErrNotFound = errors.New("location not found")

// Place is one geocoding result. Country is empty when the provider's
// structured address carries no country field.
type Place struct {
	Latitude  float64
	Longitude float64
	Country   string
}

// Geocoder resolves a place name to coordinates and a country. Lookups
// must honor the context deadline.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (*Place, error)
}
