package chi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/taskmatch/internal/domain/candidate"
	"github.com/kailas-cloud/taskmatch/internal/domain/recommendation"
)

// ErrorCode is a machine-readable error identifier returned in error responses.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeInvalidInput     ErrorCode = "invalid_input"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodePayloadTooLarge  ErrorCode = "payload_too_large"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeForbidden        ErrorCode = "forbidden"
	ErrorCodeUnavailable      ErrorCode = "service_unavailable"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	TaskDescription    string     `json:"task_description"`
	PotentialAssignees []Assignee `json:"potential_assignees" validate:"dive"`
}

// Assignee is a candidate as sent by the caller. The id is opaque JSON
// (string or number) and is echoed back untouched.
type Assignee struct {
	ID     json.RawMessage `json:"id" validate:"required"`
	Name   string          `json:"name" validate:"required"`
	Skills []string        `json:"skills"`
}

// RecommendResponse is the body of a successful POST /recommend.
type RecommendResponse struct {
	Task            string               `json:"task"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

// RecommendationItem is one ranked candidate.
type RecommendationItem struct {
	User   UserRef  `json:"user"`
	Score  float64  `json:"score"`
	Skills []string `json:"skills"`
}

// UserRef identifies a recommended candidate.
type UserRef struct {
	ID   json.RawMessage `json:"id"`
	Name string          `json:"name"`
}

// HomeResponse is the body of GET /.
type HomeResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// TestResponse is the body of GET /test.
type TestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// candidates converts the assignees into domain candidates, keeping input order.
func (r *RecommendRequest) candidates() ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, len(r.PotentialAssignees))
	for i, a := range r.PotentialAssignees {
		id := bytes.TrimSpace(a.ID)
		if len(id) == 0 || bytes.Equal(id, []byte("null")) {
			return nil, fmt.Errorf("potential_assignees[%d].id is required", i)
		}
		out[i] = candidate.New(string(id), a.Name, a.Skills)
	}
	return out, nil
}

func recommendationToResponse(rec recommendation.Recommendation) RecommendResponse {
	items := make([]RecommendationItem, rec.Len())
	for i, it := range rec.Items() {
		items[i] = RecommendationItem{
			User: UserRef{
				ID:   json.RawMessage(it.ID()),
				Name: it.Name(),
			},
			Score:  it.Score(),
			Skills: it.Skills(),
		}
	}
	return RecommendResponse{Task: rec.Task(), Recommendations: items}
}
