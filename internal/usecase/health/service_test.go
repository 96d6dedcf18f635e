package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockChecker struct {
	err    error
	called bool
}

func (m *mockChecker) HealthCheck(_ context.Context) error {
	m.called = true
	return m.err
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	ranker := &mockChecker{}
	svc := New().With("ranker", ranker)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["ranker"] != CheckOK {
		t.Errorf("expected ranker %q, got %q", CheckOK, r.Checks["ranker"])
	}
	if !ranker.called {
		t.Error("expected ranker check to run")
	}
}

func TestCheck_PartialFailure(t *testing.T) {
	svc := New().
		With("ranker", &mockChecker{}).
		With("canary", &mockChecker{err: errors.New("wrong order")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["ranker"] != CheckOK {
		t.Errorf("expected ranker %q, got %q", CheckOK, r.Checks["ranker"])
	}
	if r.Checks["canary"] != CheckError {
		t.Errorf("expected canary %q, got %q", CheckError, r.Checks["canary"])
	}
}

func TestCheck_AllFail(t *testing.T) {
	svc := New().With("ranker", &mockChecker{err: errors.New("broken")})
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["ranker"] != CheckError {
		t.Error("expected ranker error")
	}
}

func TestCheck_NoChecks(t *testing.T) {
	r := New().Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if len(r.Checks) != 0 {
		t.Errorf("expected no checks, got %v", r.Checks)
	}
}

func TestWith_NilCheckerIgnored(t *testing.T) {
	svc := New().With("ranker", nil)
	if names := svc.Names(); len(names) != 0 {
		t.Errorf("expected nil checker to be ignored, got %v", names)
	}
}

func TestNames_Sorted(t *testing.T) {
	svc := New().With("zeta", &mockChecker{}).With("alpha", &mockChecker{})
	names := svc.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("expected [alpha zeta], got %v", names)
	}
}
