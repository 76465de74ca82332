package domain

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location is a titled map annotation.
type Location struct {
	Geo      Geo    `json:"geo"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`

	// Geocoding enrichment fields.
	FormattedAddress string  `json:"formatted_address,omitempty"`
	PlaceName        string  `json:"place_name,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"
}

// fixedLocations are the annotations dropped on the map at load time.
var fixedLocations = []Location{
	// London
	{Geo: Geo{Lat: 51.50998, Lon: -0.1337}, Title: "Born location"},
	// Johannesburg
	{Geo: Geo{Lat: -26.20401028, Lon: 28.0473051}, Title: "Current location", Subtitle: "Welcome to my house"},
	// Tokyo
	{Geo: Geo{Lat: 35.700691, Lon: 139.7753269}, Title: "Favorite location", Subtitle: "Dream on Earth"},
}

// FixedLocations returns a copy of the map annotations.
func FixedLocations() []Location {
	out := make([]Location, len(fixedLocations))
	copy(out, fixedLocations)
	return out
}

// AnnotationCameraDistance is how far above an annotation the camera sits,
// in meters.
const AnnotationCameraDistance = 1_000_000.0

// Camera is a map viewpoint.
type Camera struct {
	Center   Geo     `json:"center"`
	Distance float64 `json:"distance"` // meters above the center
	Pitch    float64 `json:"pitch"`
	Heading  float64 `json:"heading"`
}

// CameraLookingAt returns a top-down camera centered on g.
func CameraLookingAt(g Geo) Camera {
	return Camera{Center: g, Distance: AnnotationCameraDistance}
}

// WorldCamera is the initial viewpoint before any annotation is shown: the
// whole globe, seen from one earth circumference away.
func WorldCamera() Camera {
	return Camera{Distance: 40_075_016.686}
}
