package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/couchcryptid/worldtrotter-service/internal/adapter/mapbox"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"github.com/couchcryptid/worldtrotter-service/internal/session"
	"github.com/gorilla/mux"
)

// maxBodyBytes bounds request bodies; every request body is a tiny JSON object.
const maxBodyBytes = 4 << 10

type editRequest struct {
	Location    int    `json:"location"`
	Length      int    `json:"length"`
	Replacement string `json:"replacement"`
}

type mapTypeRequest struct {
	Segment *int `json:"segment"`
}

type authorizationRequest struct {
	Status string `json:"status"`
}

type annotationResponse struct {
	Annotation domain.Location `json:"annotation"`
	Camera     domain.Camera   `json:"camera"`
}

type snapshotResponse struct {
	Map      domain.MapState `json:"map"`
	Style    string          `json:"style"`
	Zoom     float64         `json:"zoom"`
	ImageURL string          `json:"image_url,omitempty"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	tag := domain.ParseLocale(r.Header.Get("Accept-Language"), s.opts.DefaultLocale)
	sess := s.opts.Sessions.Create(tag)

	w.Header().Set("Location", "/v1/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req editRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := sess.Edit(domain.EditRange{Location: req.Location, Length: req.Length}, req.Replacement)
	if err != nil {
		s.metrics.Edits.WithLabelValues("invalid_range").Inc()
		s.writeDomainError(w, err)
		return
	}

	if res.Accepted {
		s.metrics.Edits.WithLabelValues("accepted").Inc()
	} else {
		s.metrics.Edits.WithLabelValues("rejected").Inc()
	}
	if s.opts.Publisher != nil {
		s.opts.Publisher.Publish(domain.NewConversionEvent(sess.ID, sess.Locale.String(), res))
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleMapType(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req mapTypeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Segment == nil {
		writeError(w, http.StatusBadRequest, "segment is required")
		return
	}
	if _, valid := domain.MapTypeForSegment(*req.Segment); !valid {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown segment %d", *req.Segment))
		return
	}

	sess.SelectMapType(*req.Segment)
	writeJSON(w, http.StatusOK, sess.MapState())
}

func (s *Server) handleNextAnnotation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	loc, cam, found := sess.NextAnnotation()
	if !found {
		writeError(w, http.StatusNotFound, "no annotations")
		return
	}
	s.metrics.AnnotationsCycled.Inc()
	writeJSON(w, http.StatusOK, annotationResponse{Annotation: loc, Camera: cam})
}

func (s *Server) handleAuthorization(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req authorizationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	status, err := domain.ParseAuthorizationStatus(req.Status)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	sess.SetAuthorization(status)
	writeJSON(w, http.StatusOK, sess.MapState())
}

func (s *Server) handleTracking(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	res := sess.ToggleTracking()
	if res.Alert != nil {
		s.metrics.TrackingToggles.WithLabelValues("unauthorized").Inc()
	} else {
		s.metrics.TrackingToggles.WithLabelValues(string(res.Mode)).Inc()
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	state := sess.MapState()
	cam := domain.WorldCamera()
	if state.Camera != nil {
		cam = *state.Camera
	}

	resp := snapshotResponse{
		Map:   state,
		Style: mapbox.Style(state.Type),
		Zoom:  mapbox.ZoomForDistance(cam.Distance),
	}
	if s.opts.Snapshots != nil {
		resp.ImageURL = s.opts.Snapshots.StaticImageURL(cam, state.Type)
	}
	s.metrics.MapSnapshotsServed.Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnnotations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]domain.Location{"annotations": s.opts.Annotations})
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	page, err := s.opts.Book.Load(r.Context(), s.opts.BookURL)
	s.metrics.BookLoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.BookLoads.WithLabelValues("error").Inc()
		s.logger.Warn("book page load failed", "url", s.opts.BookURL, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.metrics.BookLoads.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, page)
}

// lookup resolves the {id} route variable, writing a 404 when it is unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.opts.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeDomainError(w, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrRangeOutOfBounds), errors.Is(err, domain.ErrUnknownAuthorization):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
