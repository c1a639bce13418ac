package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	jwt "github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// Principal is the authenticated back-office user.
type Principal struct {
	Name string
	Role string
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

type adminClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ParseAdminToken validates an HS256 token and returns its principal.
func ParseAdminToken(tokenStr, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &adminClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, err
	}

	c, ok := tok.Claims.(*adminClaims)
	if !ok || !tok.Valid || c.Name == "" {
		return Principal{}, errors.New("invalid claims")
	}
	return Principal{Name: c.Name, Role: strings.ToLower(c.Role)}, nil
}

// SignAdminToken is used by the admin tooling and tests.
func SignAdminToken(secret, name, role string, claims jwt.RegisteredClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		Name:             name,
		Role:             role,
		RegisteredClaims: claims,
	}).SignedString([]byte(secret))
}

// AdminAuth requires a bearer JWT with the admin role.
func AdminAuth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			p, err := ParseAdminToken(strings.TrimSpace(token), secret)
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if p.Role != RoleAdmin {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// APIKey compares a shared secret header in constant time.
func APIKey(header, key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(header)
			if got == "" || key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
