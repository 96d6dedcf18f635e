package taskmatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ID is an opaque assignee identifier. It round-trips both JSON strings and numbers.
type ID struct {
	raw json.RawMessage
}

// StringID creates a string identifier.
func StringID(s string) ID {
	b, _ := json.Marshal(s)
	return ID{raw: b}
}

// IntID creates a numeric identifier.
func IntID(n int64) ID {
	return ID{raw: json.RawMessage(strconv.FormatInt(n, 10))}
}

// IsZero reports whether the id was never set.
func (id ID) IsZero() bool { return len(id.raw) == 0 }

// String returns the id without JSON quoting.
func (id ID) String() string {
	var s string
	if err := json.Unmarshal(id.raw, &s); err == nil {
		return s
	}
	return string(id.raw)
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	return id.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler. Only strings and numbers are accepted.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("taskmatch: empty id")
	}
	switch c := data[0]; {
	case c == '"', c == '-', c >= '0' && c <= '9':
		id.raw = append(json.RawMessage(nil), data...)
		return nil
	case bytes.Equal(data, []byte("null")):
		id.raw = nil
		return nil
	}
	return errors.New("taskmatch: id must be a string or a number")
}

// Assignee is a candidate for a task.
type Assignee struct {
	ID     ID       `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Request is the payload of a recommendation call.
type Request struct {
	TaskDescription    string     `json:"task_description"`
	PotentialAssignees []Assignee `json:"potential_assignees"`
}

// User identifies a recommended assignee.
type User struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Recommendation is one ranked assignee.
type Recommendation struct {
	User   User     `json:"user"`
	Score  float64  `json:"score"`
	Skills []string `json:"skills"`
}

// Response is the ranked result, best match first.
type Response struct {
	Task            string           `json:"task"`
	Recommendations []Recommendation `json:"recommendations"`
}
