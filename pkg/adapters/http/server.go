package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/dpda"
	"github.com/aretw0/dpda/internal/logging"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/aretw0/dpda/pkg/ports"
	"github.com/aretw0/dpda/pkg/session"
	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server implements the generated ServerInterface on top of a session.Manager.
type Server struct {
	Sessions *session.Manager

	logger      *slog.Logger
	metricsPath string
	gatherer    prometheus.Gatherer
	onVerdict   func(domain.Verdict)
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics serves the gatherer's metrics at path.
func WithMetrics(path string, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metricsPath = path
		s.gatherer = gatherer
	}
}

// WithVerdictObserver is called with the verdict of every input answer.
func WithVerdictObserver(fn func(domain.Verdict)) Option {
	return func(s *Server) {
		s.onVerdict = fn
	}
}

// NewHandler creates the HTTP handler for sessions.
func NewHandler(sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		Sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			s.logger.Error("failed to load OpenAPI spec", "error", err)
			http.Error(w, "failed to load spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})
	if s.gatherer != nil {
		r.Handle(s.metricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	handler := HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>DPDA API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, http.StatusOK, Info{
		App:        "dpda-http",
		Version:    strings.TrimSpace(dpda.Version),
		ApiVersion: apiVersion,
	})
}

// GetTopology handles GET /topology.
func (s *Server) GetTopology(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, mapTopology(s.Sessions.Automaton().Describe()))
}

// StartSession handles POST /sessions.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	report, err := s.Sessions.Start(r.Context())
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	s.writeJSON(w, http.StatusCreated, mapReport(report))
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Sessions.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id string) {
	report, err := s.Sessions.Status(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, mapReport(report))
}

// ReadInput handles POST /sessions/{id}/input.
func (s *Server) ReadInput(w http.ResponseWriter, r *http.Request, id string) {
	var body ReadInputJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("ReadInput: invalid request body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	report, err := s.Sessions.Read(r.Context(), id, body.Input)
	if report != nil && s.onVerdict != nil {
		s.onVerdict(report.Verdict)
	}
	if err != nil {
		s.writeError(w, r, err, report)
		return
	}
	s.writeJSON(w, http.StatusOK, mapReport(report))
}

// ResetSession handles POST /sessions/{id}/reset.
func (s *Server) ResetSession(w http.ResponseWriter, r *http.Request, id string) {
	report, err := s.Sessions.Reset(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, mapReport(report))
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StatusCode maps engine and session errors to HTTP status codes.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSessionID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSymbol):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ports.ErrLockAcquire):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// paramError answers requests whose path parameters cannot be bound.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, report *session.Report) {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "status", code, "error", err)
	}

	resp := ErrorResponse{Error: err.Error()}
	if report != nil {
		mapped := mapReport(report)
		resp.Session = &mapped
	}
	s.writeJSON(w, code, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func mapReport(r *session.Report) Report {
	return Report{
		SessionId: r.SessionID,
		Status:    r.Status,
		State:     r.State,
		Stack:     r.Stack,
		Trapped:   r.Trapped,
		Steps:     r.Steps,
		Accepted:  r.Accepted,
		Verdict:   string(r.Verdict),
	}
}

func mapTopology(d automaton.Description) Topology {
	t := Topology{
		States:      d.States,
		Alphabet:    d.Alphabet,
		FinalStates: d.FinalStates,
		Transitions: make([]Edge, 0, len(d.Transitions)),
	}
	if t.FinalStates == nil {
		t.FinalStates = []int{}
	}
	for _, e := range d.Transitions {
		t.Transitions = append(t.Transitions, Edge{
			Source:   e.Source,
			Target:   e.Target,
			Consumed: e.Consumed,
			Pop:      e.Pop,
			Push:     e.Push,
		})
	}
	return t
}
