package geo

import (
	"context"
	"fmt"
	"io"

	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/model"
)

// Aggregator folds place-type entity mentions into a GeoSummary.
type Aggregator struct {
	geocoder Geocoder
	logger   io.Writer // nil silences per-location failures
}

// NewAggregator creates the aggregator. A nil geocoder disables lookups:
// mentions are still collected, coordinates stay empty.
func NewAggregator(geocoder Geocoder, logger io.Writer) *Aggregator {
	return &Aggregator{geocoder: geocoder, logger: logger}
}

// Summarize collects the geographic footprint of an annotated document.
//
// Every place-type mention lands in MentionedLocations. Geocoding runs
// once per unique surface string (case-sensitive, first-mention order); a
// failed lookup is logged and skipped, leaving the location without a
// coordinate entry and contributing no country. Code conversion degrades
// all-or-nothing: one unknown country omits CountryCodes entirely while
// the rest of the summary stays intact.
func (a *Aggregator) Summarize(ctx context.Context, doc *annotate.Doc) model.GeoSummary {
	summary := model.GeoSummary{
		MentionedLocations: []string{},
		Coordinates:        map[string]model.Coordinates{},
		Countries:          []string{},
	}

	var unique []string
	seen := make(map[string]struct{})
	for _, ent := range doc.Entities {
		if ent.Label != annotate.LabelGPE && ent.Label != annotate.LabelLocation {
			continue
		}
		summary.MentionedLocations = append(summary.MentionedLocations, ent.Text)
		if _, dup := seen[ent.Text]; !dup {
			seen[ent.Text] = struct{}{}
			unique = append(unique, ent.Text)
		}
	}

	if a.geocoder != nil {
		countrySeen := make(map[string]struct{})
		for _, loc := range unique {
			place, err := a.geocoder.Geocode(ctx, loc)
			if err != nil {
				a.logf("could not geocode location %q: %v", loc, err)
				continue
			}
			summary.Coordinates[loc] = model.Coordinates{
				Latitude:  place.Latitude,
				Longitude: place.Longitude,
			}
			if place.Country != "" {
				if _, dup := countrySeen[place.Country]; !dup {
					countrySeen[place.Country] = struct{}{}
					summary.Countries = append(summary.Countries, place.Country)
				}
			}
		}
	}

	if len(summary.Countries) > 0 {
		codes := make(map[string]string, len(summary.Countries))
		for _, country := range summary.Countries {
			code, err := CountryCode(country)
			if err != nil {
				a.logf("could not convert country codes: %v", err)
				codes = nil
				break
			}
			codes[country] = code
		}
		if codes != nil {
			summary.CountryCodes = codes
		}
	}

	return summary
}

func (a *Aggregator) logf(format string, args ...any) {
	if a.logger != nil {
		fmt.Fprintf(a.logger, format+"\n", args...)
	}
}
