package mapbox

import (
	"net/url"
	"testing"

	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	assert.Equal(t, "streets-v12", Style(domain.MapTypeStandard))
	assert.Equal(t, "satellite-streets-v12", Style(domain.MapTypeHybrid))
	assert.Equal(t, "satellite-v9", Style(domain.MapTypeSatellite))
	assert.Equal(t, "streets-v12", Style("unknown"))
}

func TestZoomForDistance(t *testing.T) {
	assert.Equal(t, 5.32, ZoomForDistance(domain.AnnotationCameraDistance))
	assert.Equal(t, 0.0, ZoomForDistance(1e9))
	assert.Equal(t, 22.0, ZoomForDistance(0))
	assert.Equal(t, 22.0, ZoomForDistance(1))
}

func TestStaticImageURL(t *testing.T) {
	s := NewStaticMaps(testToken)
	cam := domain.CameraLookingAt(domain.Geo{Lat: 35.700691, Lon: 139.7753269})

	raw := s.StaticImageURL(cam, domain.MapTypeHybrid)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "api.mapbox.com", u.Host)
	assert.Equal(t, "/styles/v1/mapbox/satellite-streets-v12/static/139.775327,35.700691,5.32,0,0/600x400", u.Path)
	assert.Equal(t, testToken, u.Query().Get("access_token"))
}

func TestStaticImageURL_ClampsPitchAndHeading(t *testing.T) {
	s := NewStaticMaps(testToken)
	cam := domain.Camera{
		Center:   domain.Geo{Lat: 1, Lon: 2},
		Distance: domain.AnnotationCameraDistance,
		Pitch:    80,
		Heading:  -90,
	}

	u, err := url.Parse(s.StaticImageURL(cam, domain.MapTypeStandard))
	require.NoError(t, err)
	assert.Equal(t, "/styles/v1/mapbox/streets-v12/static/2.000000,1.000000,5.32,270,60/600x400", u.Path)
}
