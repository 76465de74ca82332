package domain

import (
	"errors"
	"fmt"
)

// MapType is the rendering style of the map.
type MapType string

const (
	MapTypeStandard  MapType = "standard"
	MapTypeHybrid    MapType = "hybrid"
	MapTypeSatellite MapType = "satellite"
)

// MapTypeForSegment maps a segmented control index to a map type. The second
// return value is false for indices outside the control.
func MapTypeForSegment(segment int) (MapType, bool) {
	switch segment {
	case 0:
		return MapTypeStandard, true
	case 1:
		return MapTypeHybrid, true
	case 2:
		return MapTypeSatellite, true
	default:
		return "", false
	}
}

// TrackingMode says whether the map follows the user's position.
type TrackingMode string

const (
	TrackingNone   TrackingMode = "none"
	TrackingFollow TrackingMode = "follow"
)

// AuthorizationStatus is the user's location permission.
type AuthorizationStatus string

const (
	AuthorizationNotDetermined       AuthorizationStatus = "not_determined"
	AuthorizationRestricted          AuthorizationStatus = "restricted"
	AuthorizationDenied              AuthorizationStatus = "denied"
	AuthorizationAuthorizedAlways    AuthorizationStatus = "authorized_always"
	AuthorizationAuthorizedWhenInUse AuthorizationStatus = "authorized_when_in_use"
)

// ErrUnknownAuthorization is returned for an unrecognized authorization status.
var ErrUnknownAuthorization = errors.New("unknown authorization status")

// ParseAuthorizationStatus validates s as an AuthorizationStatus.
func ParseAuthorizationStatus(s string) (AuthorizationStatus, error) {
	switch st := AuthorizationStatus(s); st {
	case AuthorizationNotDetermined, AuthorizationRestricted, AuthorizationDenied,
		AuthorizationAuthorizedAlways, AuthorizationAuthorizedWhenInUse:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAuthorization, s)
	}
}

// Alert is a message the user must acknowledge.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// TrackingResult is the outcome of tapping the location button.
type TrackingResult struct {
	Mode        TrackingMode `json:"mode"`
	ButtonTitle string       `json:"button_title"`
	Alert       *Alert       `json:"alert,omitempty"`
}

// MapState is a snapshot of the map screen.
type MapState struct {
	Type              MapType             `json:"type"`
	Segments          []string            `json:"segments"`
	Tracking          TrackingMode        `json:"tracking"`
	Authorization     AuthorizationStatus `json:"authorization"`
	LocationButton    string              `json:"location_button"`
	AnnotationButton  string              `json:"annotation_button"`
	Camera            *Camera             `json:"camera,omitempty"`
	Annotations       []Location          `json:"annotations"`
	CurrentAnnotation *Location           `json:"current_annotation,omitempty"`
}

// MapController holds the map screen state. It is not safe for concurrent use.
type MapController struct {
	strings       Strings
	locations     []Location
	mapType       MapType
	tracking      TrackingMode
	authorization AuthorizationStatus
	nextIndex     int
	current       *Location
	camera        *Camera
}

// NewMapController creates a standard map showing locations, with tracking
// off and authorization not yet determined.
func NewMapController(s Strings, locations []Location) *MapController {
	return &MapController{
		strings:       s,
		locations:     locations,
		mapType:       MapTypeStandard,
		tracking:      TrackingNone,
		authorization: AuthorizationNotDetermined,
	}
}

// SelectMapType switches the map type for a segment index. Unknown indices
// leave the type unchanged.
func (m *MapController) SelectMapType(segment int) MapType {
	if t, ok := MapTypeForSegment(segment); ok {
		m.mapType = t
	}
	return m.mapType
}

// NextAnnotation recenters the camera on the next annotation, wrapping to the
// first one after the last. ok is false when there are no annotations.
func (m *MapController) NextAnnotation() (loc Location, cam Camera, ok bool) {
	if len(m.locations) == 0 {
		return Location{}, Camera{}, false
	}
	if m.nextIndex >= len(m.locations) {
		m.nextIndex = 0
	}

	loc = m.locations[m.nextIndex]
	m.nextIndex++

	cam = CameraLookingAt(loc.Geo)
	m.current = &loc
	m.camera = &cam
	return loc, cam, true
}

// SetAuthorization records the user's location permission.
func (m *MapController) SetAuthorization(status AuthorizationStatus) {
	m.authorization = status
}

// ToggleTracking starts or stops following the user. Starting requires
// "always" authorization; without it the mode is unchanged and an alert is
// returned.
func (m *MapController) ToggleTracking() TrackingResult {
	if m.tracking == TrackingFollow {
		m.tracking = TrackingNone
		return TrackingResult{Mode: m.tracking, ButtonTitle: m.locationButtonTitle()}
	}

	if m.authorization != AuthorizationAuthorizedAlways {
		return TrackingResult{
			Mode:        m.tracking,
			ButtonTitle: m.locationButtonTitle(),
			Alert: &Alert{
				Title:   m.strings.AlertTitle,
				Message: m.strings.AlertMessage,
				Action:  m.strings.AlertOK,
			},
		}
	}

	m.tracking = TrackingFollow
	return TrackingResult{Mode: m.tracking, ButtonTitle: m.locationButtonTitle()}
}

// Type returns the current map type.
func (m *MapController) Type() MapType { return m.mapType }

// Tracking returns the current tracking mode.
func (m *MapController) Tracking() TrackingMode { return m.tracking }

// State returns a snapshot of the screen.
func (m *MapController) State() MapState {
	st := MapState{
		Type:             m.mapType,
		Segments:         m.strings.Segments(),
		Tracking:         m.tracking,
		Authorization:    m.authorization,
		LocationButton:   m.locationButtonTitle(),
		AnnotationButton: m.strings.ShowAnnotation,
		Annotations:      append([]Location(nil), m.locations...),
	}
	if m.camera != nil {
		cam := *m.camera
		st.Camera = &cam
	}
	if m.current != nil {
		loc := *m.current
		st.CurrentAnnotation = &loc
	}
	return st
}

func (m *MapController) locationButtonTitle() string {
	if m.tracking == TrackingFollow {
		return m.strings.DisableLocation
	}
	return m.strings.EnableLocation
}
