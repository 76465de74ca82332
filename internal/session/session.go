// Package session keeps per-user screen state for the HTTP service. A
// session owns one conversion form and one map controller; its methods
// serialize access so events for one user apply in order.
package session

import (
	"sync"

	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"golang.org/x/text/language"
)

// Session is one user's conversion and map screens.
type Session struct {
	ID     string
	Locale language.Tag

	mu         sync.Mutex
	strings    domain.Strings
	conversion *domain.Conversion
	mapView    *domain.MapController
}

// ConversionState is the conversion screen as reported to clients.
type ConversionState struct {
	domain.EditResult
	State            domain.ConversionState `json:"state"`
	DecimalSeparator string                 `json:"decimal_separator"`
}

// Snapshot is the full session state.
type Snapshot struct {
	ID         string            `json:"id"`
	Locale     string            `json:"locale"`
	Conversion ConversionState   `json:"conversion"`
	Map        domain.MapState   `json:"map"`
	Background domain.Background `json:"background"`
}

func newSession(id string, tag language.Tag, locations []domain.Location) *Session {
	s := domain.StringsFor(tag)
	return &Session{
		ID:         id,
		Locale:     tag,
		strings:    s,
		conversion: domain.NewConversion(domain.NewNumberFormat(tag)),
		mapView:    domain.NewMapController(s, locations),
	}
}

// Edit applies one text edit to the conversion form.
func (s *Session) Edit(r domain.EditRange, replacement string) (domain.EditResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversion.Edit(r, replacement)
}

// SelectMapType switches the map type for a segment index.
func (s *Session) SelectMapType(segment int) domain.MapType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapView.SelectMapType(segment)
}

// NextAnnotation recenters the map on the next annotation.
func (s *Session) NextAnnotation() (domain.Location, domain.Camera, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapView.NextAnnotation()
}

// SetAuthorization records the user's location permission.
func (s *Session) SetAuthorization(status domain.AuthorizationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapView.SetAuthorization(status)
}

// ToggleTracking taps the location button.
func (s *Session) ToggleTracking() domain.TrackingResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapView.ToggleTracking()
}

// MapState returns the map screen.
func (s *Session) MapState() domain.MapState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapView.State()
}

// Snapshot returns the state of every screen.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:     s.ID,
		Locale: s.Locale.String(),
		Conversion: ConversionState{
			EditResult:       s.conversion.Result(),
			State:            s.conversion.State(),
			DecimalSeparator: s.conversion.NumberFormat().DecimalSeparator(),
		},
		Map:        s.mapView.State(),
		Background: domain.CurrentBackground(),
	}
}
