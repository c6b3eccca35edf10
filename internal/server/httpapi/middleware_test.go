package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/avasquez/softjobs/internal/server/auth"
)

func TestRequireAuth_HeaderVariants(t *testing.T) {
	_, r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/usuarios",
		`{"email":"a@b.com","password":"secret1","rol":"Backend Developer","lenguaje":"Python"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: want 201, got %d", w.Code)
	}

	valid, err := auth.GenerateToken("a@b.com", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	expired, err := auth.GenerateToken("a@b.com", []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	foreign, err := auth.GenerateToken("a@b.com", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"no header", "", http.StatusUnauthorized, "token not provided"},
		{"empty bearer", "Bearer", http.StatusUnauthorized, "token not provided"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "token not provided"},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, "invalid token"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "invalid token"},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, "invalid token"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, ""},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := http.Header{}
			if tc.header != "" {
				h.Set("Authorization", tc.header)
			}

			w := doJSON(t, r, http.MethodGet, "/usuarios", "", h)
			if w.Code != tc.wantStatus {
				t.Fatalf("want %d, got %d body=%s", tc.wantStatus, w.Code, w.Body.String())
			}
			if tc.wantError != "" {
				body := decodeBody(t, w)
				if body["error"] != tc.wantError {
					t.Fatalf("want error %q, got %v", tc.wantError, body["error"])
				}
			}
		})
	}
}

func TestTokenAcceptedBeforeExpiryRejectedAfter(t *testing.T) {
	_, r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/usuarios",
		`{"email":"a@b.com","password":"secret1","rol":"Backend Developer","lenguaje":"Python"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: want 201, got %d", w.Code)
	}

	shortLived, err := auth.GenerateToken("a@b.com", []byte(testSecret), 2*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+shortLived)

	if w := doJSON(t, r, http.MethodGet, "/usuarios", "", h); w.Code != http.StatusOK {
		t.Fatalf("before expiry: want 200, got %d", w.Code)
	}

	time.Sleep(3 * time.Second)

	if w := doJSON(t, r, http.MethodGet, "/usuarios", "", h); w.Code != http.StatusUnauthorized {
		t.Fatalf("after expiry: want 401, got %d", w.Code)
	}
}
