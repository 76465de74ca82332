package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- mock geocoder ---

type mockGeocoder struct {
	result GeocodingResult
	err    error
	calls  int
}

func (m *mockGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (GeocodingResult, error) {
	m.calls++
	return m.result, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- tests ---

func TestEnrichLocation_NilGeocoder(t *testing.T) {
	loc := FixedLocations()[0]

	result := EnrichLocation(context.Background(), loc, nil, discardLogger())

	assert.Equal(t, loc, result)
}

func TestEnrichLocation_Reverse(t *testing.T) {
	geo := &mockGeocoder{
		result: GeocodingResult{
			FormattedAddress: "Piccadilly Circus, London W1, United Kingdom",
			PlaceName:        "Piccadilly Circus",
			Confidence:       0.97,
		},
	}

	result := EnrichLocation(context.Background(), FixedLocations()[0], geo, discardLogger())

	assert.Equal(t, "Piccadilly Circus", result.PlaceName)
	assert.Equal(t, "Piccadilly Circus, London W1, United Kingdom", result.FormattedAddress)
	assert.Equal(t, 0.97, result.GeoConfidence)
	assert.Equal(t, "reverse", result.GeoSource)
	assert.Equal(t, 51.50998, result.Geo.Lat)
	assert.Equal(t, 1, geo.calls)
}

func TestEnrichLocation_ErrorGracefulDegradation(t *testing.T) {
	geo := &mockGeocoder{err: errors.New("rate limited")}

	result := EnrichLocation(context.Background(), FixedLocations()[2], geo, discardLogger())

	assert.Equal(t, "failed", result.GeoSource)
	assert.Empty(t, result.FormattedAddress)
	assert.Equal(t, 35.700691, result.Geo.Lat)
}

func TestEnrichLocation_EmptyResult(t *testing.T) {
	geo := &mockGeocoder{}

	result := EnrichLocation(context.Background(), FixedLocations()[1], geo, discardLogger())

	assert.Equal(t, "original", result.GeoSource)
}

func TestEnrichLocations(t *testing.T) {
	geo := &mockGeocoder{result: GeocodingResult{FormattedAddress: "Somewhere", PlaceName: "Somewhere"}}

	result := EnrichLocations(context.Background(), FixedLocations(), geo, discardLogger())

	assert.Len(t, result, 3)
	assert.Equal(t, 3, geo.calls)
	for _, loc := range result {
		assert.Equal(t, "reverse", loc.GeoSource)
	}
}
