package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func authedEcho(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Fatal("identity missing from context")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": ident.ID, "email": ident.Email})
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", time.Hour)
	h := RequireAuth(j)(authedEcho(t))

	for _, header := range []string{"", "Token abc", "bearer abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, rec.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid envelope: %v", err)
		}
		if body["success"] != false {
			t.Fatalf("envelope success = %v, want false", body["success"])
		}
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", time.Hour)
	h := RequireAuth(j)(authedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", time.Hour)
	tok, err := j.Sign(&User{ID: 9, Email: "jo@example.com", Name: "Jo"})
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	h := RequireAuth(j)(authedEcho(t))
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["id"] != float64(9) || body["email"] != "jo@example.com" {
		t.Fatalf("unexpected identity payload: %v", body)
	}
}
