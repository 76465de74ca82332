package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"github.com/couchcryptid/worldtrotter-service/internal/observability"
	"github.com/couchcryptid/worldtrotter-service/internal/session"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"
)

// EventPublisher receives conversion events for asynchronous delivery.
type EventPublisher interface {
	Publish(event domain.ConversionEvent)
}

// PageLoader fetches the book web page.
type PageLoader interface {
	Load(ctx context.Context, url string) (domain.Page, error)
}

// SnapshotRenderer turns a map viewpoint into a static image URL.
type SnapshotRenderer interface {
	StaticImageURL(cam domain.Camera, t domain.MapType) string
}

// Options wires the server to the rest of the service. Publisher and
// Snapshots may be nil.
type Options struct {
	Addr          string
	Sessions      *session.Store
	Annotations   []domain.Location
	DefaultLocale language.Tag
	Publisher     EventPublisher
	Book          PageLoader
	BookURL       string
	Snapshots     SnapshotRenderer
	Ready         sharedobs.ReadinessChecker
	Metrics       *observability.Metrics
	Logger        *slog.Logger
}

// Server exposes the session API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	opts       Options
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with the /v1 API and /healthz, /readyz,
// and /metrics routes.
func NewServer(opts Options) *Server {
	r := mux.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		opts:    opts,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}

	r.HandleFunc("/healthz", sharedobs.LivenessHandler()).Methods(http.MethodGet)
	r.HandleFunc("/readyz", sharedobs.ReadinessHandler(opts.Ready)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/sessions", s.handleCreateSession).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id}/conversion/edits", s.handleEdit).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/map/type", s.handleMapType).Methods(http.MethodPut)
	v1.HandleFunc("/sessions/{id}/map/annotations/next", s.handleNextAnnotation).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/map/authorization", s.handleAuthorization).Methods(http.MethodPut)
	v1.HandleFunc("/sessions/{id}/map/tracking", s.handleTracking).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/map/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	v1.HandleFunc("/annotations", s.handleAnnotations).Methods(http.MethodGet)
	v1.HandleFunc("/book", s.handleBook).Methods(http.MethodGet)

	// Subrouters keep their own fallbacks, so both need the JSON handlers.
	for _, router := range []*mux.Router{r, v1} {
		router.NotFoundHandler = http.HandlerFunc(notFound)
		router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	}

	return s
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
