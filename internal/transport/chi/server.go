package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/taskmatch/internal/domain"
	"github.com/kailas-cloud/taskmatch/internal/domain/candidate"
	"github.com/kailas-cloud/taskmatch/internal/domain/recommendation"
	logpkg "github.com/kailas-cloud/taskmatch/internal/logger"
	healthuc "github.com/kailas-cloud/taskmatch/internal/usecase/health"
	"github.com/kailas-cloud/taskmatch/internal/version"
)

const (
	defaultMaxBodyBytes  = 1 << 20
	defaultMaxCandidates = 1000
)

// Ranker orders candidates by relevance to a task.
type Ranker interface {
	Rank(ctx context.Context, task string, candidates []candidate.Candidate) (recommendation.Recommendation, error)
}

// HealthReporter aggregates component health.
type HealthReporter interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the recommendation HTTP API.
type Server struct {
	ranker        Ranker
	health        HealthReporter
	logger        *zap.Logger
	validate      *validator.Validate
	maxBodyBytes  int64
	maxCandidates int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(ranker Ranker, health HealthReporter, logger *zap.Logger) *Server {
	s := &Server{
		ranker:        ranker,
		health:        health,
		logger:        logger,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes:  defaultMaxBodyBytes,
		maxCandidates: defaultMaxCandidates,
	}
	s.errorHandlers = []errorHandler{
		wrappedHandler(domain.ErrInvalidInput, http.StatusBadRequest, ErrorCodeInvalidInput),
		sentinelHandler(context.Canceled, http.StatusServiceUnavailable, ErrorCodeUnavailable),
		sentinelHandler(context.DeadlineExceeded, http.StatusServiceUnavailable, ErrorCodeUnavailable),
	}
	return s
}

// WithLimits overrides the request body and candidate count limits.
// Non-positive values keep the current limit.
func (s *Server) WithLimits(maxBodyBytes int64, maxCandidates int) *Server {
	if maxBodyBytes > 0 {
		s.maxBodyBytes = maxBodyBytes
	}
	if maxCandidates > 0 {
		s.maxCandidates = maxCandidates
	}
	return s
}

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HomeResponse{
		Status:  "taskmatch is running",
		Version: version.String(),
		Endpoints: map[string]string{
			"POST /recommend": "Rank potential assignees for a task",
			"GET /test":       "Service smoke test",
			"GET /health":     "Component health",
			"GET /metrics":    "Prometheus metrics",
		},
	})
}

// Test handles GET /test.
func (s *Server) Test(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, TestResponse{
		Status:  "success",
		Message: "taskmatch is working",
	})
}

// Recommend handles POST /recommend.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.PotentialAssignees) > s.maxCandidates {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed,
			fmt.Sprintf("At most %d potential assignees are allowed", s.maxCandidates))
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, validationMessage(err))
		return
	}

	cands, err := req.candidates()
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	rec, err := s.ranker.Rank(r.Context(), req.TaskDescription, cands)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendationToResponse(rec))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// validationMessage flattens validator errors into a single readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %q", strings.TrimPrefix(fe.Namespace(), "RecommendRequest."), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// sentinelHandler matches a sentinel and responds with the sentinel's own text.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// wrappedHandler matches a sentinel and responds with the full wrapped message.
// Only for sentinels whose wrapping context is safe to expose.
func wrappedHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
