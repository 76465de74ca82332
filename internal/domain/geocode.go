package domain

import (
	"context"
	"log/slog"
)

// EnrichLocation attempts to attach place details to an annotation.
// If geocoder is nil the location is returned untouched; on failure GeoSource
// is set to "failed" and the original coordinates are kept.
func EnrichLocation(ctx context.Context, loc Location, geocoder Geocoder, logger *slog.Logger) Location {
	if geocoder == nil {
		return loc
	}

	result, err := geocoder.ReverseGeocode(ctx, loc.Geo.Lat, loc.Geo.Lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"title", loc.Title,
			"lat", loc.Geo.Lat,
			"lon", loc.Geo.Lon,
			"error", err,
		)
		loc.GeoSource = "failed"
		return loc
	}
	if result.FormattedAddress == "" {
		loc.GeoSource = "original"
		return loc
	}

	loc.FormattedAddress = result.FormattedAddress
	loc.PlaceName = result.PlaceName
	loc.GeoConfidence = result.Confidence
	loc.GeoSource = "reverse"
	return loc
}

// EnrichLocations enriches each location in order.
func EnrichLocations(ctx context.Context, locs []Location, geocoder Geocoder, logger *slog.Logger) []Location {
	out := make([]Location, len(locs))
	for i, loc := range locs {
		out[i] = EnrichLocation(ctx, loc, geocoder, logger)
	}
	return out
}
