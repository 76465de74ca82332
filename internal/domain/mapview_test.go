package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestMapController() *MapController {
	return NewMapController(StringsFor(language.English), FixedLocations())
}

func TestMapTypeForSegment(t *testing.T) {
	tests := []struct {
		segment  int
		expected MapType
		ok       bool
	}{
		{0, MapTypeStandard, true},
		{1, MapTypeHybrid, true},
		{2, MapTypeSatellite, true},
		{3, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := MapTypeForSegment(tt.segment)
		assert.Equal(t, tt.expected, got, "segment %d", tt.segment)
		assert.Equal(t, tt.ok, ok, "segment %d", tt.segment)
	}
}

func TestMapController_SelectMapType(t *testing.T) {
	m := newTestMapController()
	assert.Equal(t, MapTypeStandard, m.Type())

	assert.Equal(t, MapTypeSatellite, m.SelectMapType(2))
	assert.Equal(t, MapTypeSatellite, m.SelectMapType(7), "unknown segment keeps the current type")
	assert.Equal(t, MapTypeHybrid, m.SelectMapType(1))
}

func TestMapController_NextAnnotationCycles(t *testing.T) {
	m := newTestMapController()

	var titles []string
	for range 4 {
		loc, cam, ok := m.NextAnnotation()
		require.True(t, ok)
		assert.Equal(t, loc.Geo, cam.Center)
		assert.Equal(t, AnnotationCameraDistance, cam.Distance)
		assert.Zero(t, cam.Pitch)
		assert.Zero(t, cam.Heading)
		titles = append(titles, loc.Title)
	}

	want := []string{"Born location", "Current location", "Favorite location", "Born location"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("annotation order mismatch (-want +got):\n%s", diff)
	}

	st := m.State()
	require.NotNil(t, st.CurrentAnnotation)
	assert.Equal(t, "Born location", st.CurrentAnnotation.Title)
	require.NotNil(t, st.Camera)
	assert.Equal(t, 51.50998, st.Camera.Center.Lat)
}

func TestMapController_NextAnnotationEmpty(t *testing.T) {
	m := NewMapController(StringsFor(language.English), nil)
	_, _, ok := m.NextAnnotation()
	assert.False(t, ok)
}

func TestMapController_ToggleTracking(t *testing.T) {
	t.Run("unauthorized shows alert", func(t *testing.T) {
		m := newTestMapController()

		res := m.ToggleTracking()
		assert.Equal(t, TrackingNone, res.Mode)
		assert.Equal(t, "Enable your location", res.ButtonTitle)
		require.NotNil(t, res.Alert)
		assert.Equal(t, "User Location not authorized", res.Alert.Title)
		assert.Equal(t, "OK", res.Alert.Action)
	})

	t.Run("when in use is not enough", func(t *testing.T) {
		m := newTestMapController()
		m.SetAuthorization(AuthorizationAuthorizedWhenInUse)

		res := m.ToggleTracking()
		assert.Equal(t, TrackingNone, res.Mode)
		assert.NotNil(t, res.Alert)
	})

	t.Run("authorized toggles on and off", func(t *testing.T) {
		m := newTestMapController()
		m.SetAuthorization(AuthorizationAuthorizedAlways)

		res := m.ToggleTracking()
		assert.Equal(t, TrackingFollow, res.Mode)
		assert.Equal(t, "Disable your location", res.ButtonTitle)
		assert.Nil(t, res.Alert)

		res = m.ToggleTracking()
		assert.Equal(t, TrackingNone, res.Mode)
		assert.Equal(t, "Enable your location", res.ButtonTitle)
	})

	t.Run("stopping never needs authorization", func(t *testing.T) {
		m := newTestMapController()
		m.SetAuthorization(AuthorizationAuthorizedAlways)
		m.ToggleTracking()
		m.SetAuthorization(AuthorizationDenied)

		res := m.ToggleTracking()
		assert.Equal(t, TrackingNone, res.Mode)
		assert.Nil(t, res.Alert)
	})
}

func TestMapController_StateLocalized(t *testing.T) {
	m := NewMapController(StringsFor(language.French), FixedLocations())

	st := m.State()
	assert.Equal(t, []string{"Standard", "Satellite", "Mixte"}, st.Segments)
	assert.Equal(t, "Activer votre position", st.LocationButton)
	assert.Len(t, st.Annotations, 3)
	assert.Nil(t, st.Camera)
}

func TestParseAuthorizationStatus(t *testing.T) {
	st, err := ParseAuthorizationStatus("authorized_always")
	require.NoError(t, err)
	assert.Equal(t, AuthorizationAuthorizedAlways, st)

	_, err = ParseAuthorizationStatus("sometimes")
	require.ErrorIs(t, err, ErrUnknownAuthorization)
}

func TestFixedLocationsIsACopy(t *testing.T) {
	locs := FixedLocations()
	locs[0].Title = "changed"

	assert.Equal(t, "Born location", FixedLocations()[0].Title)
}
