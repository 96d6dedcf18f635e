package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	taskmatch "github.com/kailas-cloud/taskmatch/pkg/sdk"
)

func sampleResponse() taskmatch.Response {
	return taskmatch.Response{
		Task: "python backend",
		Recommendations: []taskmatch.Recommendation{
			{User: taskmatch.User{ID: taskmatch.StringID("u-2"), Name: "Bob"}, Score: 0.81649658, Skills: []string{"python", "backend"}},
			{User: taskmatch.User{ID: taskmatch.IntID(1), Name: "Alice"}, Score: 0, Skills: []string{"design", "figma"}},
		},
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatTable, sampleResponse()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Task: python backend", "Bob", "u-2", "0.8165", "python, backend", "Alice", "0.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Bob") > strings.Index(out, "Alice") {
		t.Error("rows must keep response order")
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, taskmatch.Response{Task: "x"}); err != nil {
		t.Fatalf("Table: %v", err)
	}
	if !strings.Contains(buf.String(), "No candidates.") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, sampleResponse()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got taskmatch.Response
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got.Recommendations) != 2 || got.Recommendations[1].User.ID.String() != "1" {
		t.Errorf("decoded = %+v", got)
	}
	if !strings.Contains(buf.String(), `"id": 1`) {
		t.Errorf("numeric id must stay numeric:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "yaml", sampleResponse()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate(strings.Repeat("é", 20), 10); got != strings.Repeat("é", 7)+"..." {
		t.Errorf("truncate = %q", got)
	}
}
