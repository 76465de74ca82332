package mapbox

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/couchcryptid/worldtrotter-service/internal/domain"
)

const (
	staticBaseURL = "https://api.mapbox.com/styles/v1/mapbox"

	earthCircumference = 40_075_016.686 // meters at the equator
	maxZoom            = 22.0
	maxPitch           = 60.0

	defaultWidth  = 600
	defaultHeight = 400
)

// styles maps map types to Mapbox style ids.
var styles = map[domain.MapType]string{
	domain.MapTypeStandard:  "streets-v12",
	domain.MapTypeHybrid:    "satellite-streets-v12",
	domain.MapTypeSatellite: "satellite-v9",
}

// StaticMaps builds Mapbox Static Images API URLs for map snapshots.
type StaticMaps struct {
	token   string
	baseURL string
	width   int
	height  int
}

// NewStaticMaps creates a URL builder for 600x400 snapshots.
func NewStaticMaps(token string) *StaticMaps {
	return &StaticMaps{
		token:   token,
		baseURL: staticBaseURL,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Style returns the Mapbox style id for t, defaulting to streets.
func Style(t domain.MapType) string {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[domain.MapTypeStandard]
}

// ZoomForDistance approximates the web mercator zoom level that shows the
// ground seen from distance meters above it.
func ZoomForDistance(distance float64) float64 {
	if distance <= 0 {
		return maxZoom
	}
	z := math.Log2(earthCircumference / distance)
	z = math.Max(0, math.Min(maxZoom, z))
	return math.Round(z*100) / 100
}

// StaticImageURL renders cam with the style for t.
func (s *StaticMaps) StaticImageURL(cam domain.Camera, t domain.MapType) string {
	pitch := math.Max(0, math.Min(maxPitch, cam.Pitch))
	bearing := math.Mod(cam.Heading, 360)
	if bearing < 0 {
		bearing += 360
	}

	position := fmt.Sprintf("%s,%s,%s,%s,%s",
		formatCoord(cam.Center.Lon),
		formatCoord(cam.Center.Lat),
		strconv.FormatFloat(ZoomForDistance(cam.Distance), 'f', -1, 64),
		strconv.FormatFloat(bearing, 'f', -1, 64),
		strconv.FormatFloat(pitch, 'f', -1, 64),
	)
	params := url.Values{"access_token": {s.token}}

	return fmt.Sprintf("%s/%s/static/%s/%dx%d?%s",
		s.baseURL, Style(t), position, s.width, s.height, params.Encode())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
