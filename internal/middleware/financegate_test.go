package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesops/internal/domain"
)

func TestFinanceTokenRoundTrip(t *testing.T) {
	token := IssueFinanceToken("secret", time.Minute)
	if err := VerifyFinanceToken("secret", token); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if err := VerifyFinanceToken("other", token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("wrong-secret rejection = %v, want unauthorized", err)
	}
	if err := VerifyFinanceToken("secret", "not.a.token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("garbage token rejection = %v, want unauthorized", err)
	}
}

func TestFinanceTokenExpiry(t *testing.T) {
	token := IssueFinanceToken("secret", -time.Minute)
	if err := VerifyFinanceToken("secret", token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestFinanceGate(t *testing.T) {
	var reached bool
	handler := FinanceGate("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + IssueFinanceToken("secret", time.Minute), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest("GET", "/v1/finance/summary", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
			if (tc.want == http.StatusOK) != reached {
				t.Fatalf("handler reached = %v", reached)
			}
		})
	}
}
