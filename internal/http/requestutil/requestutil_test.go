package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValid(t *testing.T) {
	valid := []string{"abc", "req-123", "A_b-9"}
	for _, id := range valid {
		if got := SanitizeRequestID(id); got != id {
			t.Fatalf("SanitizeRequestID(%q) = %q, want unchanged", id, got)
		}
	}
}

func TestSanitizeRequestIDReplacesInvalid(t *testing.T) {
	invalid := []string{"", "has space", "slash/inject", string(make([]byte, 100))}
	for _, id := range invalid {
		got := SanitizeRequestID(id)
		if got == id || got == "" {
			t.Fatalf("SanitizeRequestID(%q) = %q, want fresh id", id, got)
		}
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("ClientIP = %q, want remote addr", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("ClientIP = %q, want first forwarded entry", got)
	}

	if got := ClientIP(nil); got != "" {
		t.Fatalf("ClientIP(nil) = %q, want empty", got)
	}
}
