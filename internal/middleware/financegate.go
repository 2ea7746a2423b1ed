package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"salesops/internal/domain"
)

// The finance view sits behind a single shared password. A successful unlock
// exchanges the password for a short-lived HMAC-signed token; finance routes
// then require it as a bearer token. Two states only: locked or unlocked.

type gateClaims struct {
	Scope string `json:"scope"`
	Exp   int64  `json:"exp"`
}

const financeScope = "finance"

// IssueFinanceToken signs an unlock token valid for ttl.
func IssueFinanceToken(secret string, ttl time.Duration) string {
	claims := gateClaims{Scope: financeScope, Exp: time.Now().Add(ttl).Unix()}
	payload, _ := json.Marshal(claims)
	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + sign(secret, body)
}

func sign(secret, data string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyFinanceToken checks signature, scope and expiry. Every rejection
// wraps domain.ErrUnauthorized.
func VerifyFinanceToken(secret, token string) error {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: malformed token", domain.ErrUnauthorized)
	}
	if !hmac.Equal([]byte(sign(secret, parts[0])), []byte(parts[1])) {
		return fmt.Errorf("%w: bad signature", domain.ErrUnauthorized)
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	var claims gateClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.Scope != financeScope {
		return fmt.Errorf("%w: wrong scope", domain.ErrUnauthorized)
	}
	if claims.Exp != 0 && time.Now().Unix() > claims.Exp {
		return fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
	}
	return nil
}

// FinanceGate guards finance routes with the unlock token.
func FinanceGate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "invalid authorization", http.StatusUnauthorized)
				return
			}
			if err := VerifyFinanceToken(secret, parts[1]); err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
