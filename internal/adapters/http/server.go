package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mohithanjan23/crackbank-backend/internal/digest"
	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
	"github.com/Mohithanjan23/crackbank-backend/internal/metrics"
	"github.com/Mohithanjan23/crackbank-backend/internal/ports"
	"github.com/Mohithanjan23/crackbank-backend/internal/services/summarize"
)

// Server exposes the breach-check engine over HTTP. Paths, request bodies
// and error shapes ({"detail": ...}) stay wire-compatible with the deployed
// frontend; don't rename fields here without coordinating a frontend
// release.
type Server struct {
	checker  ports.Checker
	reporter ports.Reporter
	metrics  *metrics.Metrics
	origins  []string
}

func New(checker ports.Checker, reporter ports.Reporter, m *metrics.Metrics, origins []string) *Server {
	return &Server{checker: checker, reporter: reporter, metrics: m, origins: origins}
}

// Routes returns the chi router for the service.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(corsMiddleware(s.origins))
	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Post("/check-breach-hash", s.handleCheckBreach)
	r.Post("/summarize-breach", s.handleSummarize)
	return r
}

type checkRequest struct {
	Hash  string  `json:"hash"`
	Last4 *string `json:"last4,omitempty"`
	Email *string `json:"email,omitempty"`
}

type summarizeRequest struct {
	BreachData []domain.BreachRecord `json:"breach_data"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "Crack Bank API is running"})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Server) handleCheckBreach(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	target := ""
	if req.Email != nil {
		target = *req.Email
	}

	s.metrics.ChecksTotal.Inc()
	result, err := s.checker.Check(r.Context(), req.Hash, target)
	if err != nil {
		if errors.Is(err, digest.ErrInvalidFormat) {
			s.metrics.InvalidDigests.Inc()
			writeDetail(w, http.StatusBadRequest, "Invalid SHA-1 hash provided.")
			return
		}
		writeDetail(w, http.StatusInternalServerError, "Internal error.")
		return
	}
	if result.Breached {
		s.metrics.BreachesFound.Inc()
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	text, err := s.reporter.SummarizeMatches(r.Context(), req.BreachData)
	if err != nil {
		switch {
		case errors.Is(err, summarize.ErrNoData):
			writeDetail(w, http.StatusBadRequest, "No breach data provided.")
		case errors.Is(err, ports.ErrMissingCredential):
			s.metrics.SummaryFailures.Inc()
			writeDetail(w, http.StatusInternalServerError, "Google API key not configured.")
		case errors.Is(err, ports.ErrSummarizerUnavailable):
			s.metrics.SummaryFailures.Inc()
			writeDetail(w, http.StatusServiceUnavailable, "Error communicating with AI service: "+err.Error())
		default:
			s.metrics.SummaryFailures.Inc()
			writeDetail(w, http.StatusInternalServerError, "Internal error.")
		}
		return
	}
	s.metrics.SummariesTotal.Inc()
	writeJSON(w, http.StatusOK, summaryResponse{Summary: text})
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, detailResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
