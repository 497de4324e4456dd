// internal/httpserver/auth.go
//
// Operator authentication for the admin routes.
//   - POST /auth/login   {password} → HS256 JWT in an HttpOnly cookie (and body)
//   - POST /auth/logout  clears the cookie
//   - GET  /admin/puzzle current puzzle including the solution
//   - POST /admin/reload reload the word list from disk
//
// There is a single operator account; its bcrypt hash comes from
// ADMIN_PASSWORD_HASH. Without a hash every login is rejected.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

type loginReq struct {
	Password string `json:"password"`
}

// mountAuthRoutes registers login/logout and the gated /admin routes.
func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	s.r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Get("/puzzle", s.handleAdminPuzzle)
		r.Post("/reload", s.handleAdminReload)
	})
}

// handleLogin verifies the operator password and issues a token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if !checkPassword(s.opts.AdminPasswordHash, body.Password) {
		writeError(w, http.StatusUnauthorized, "invalid_password")
		return
	}
	tok, exp, err := s.signJWT()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setAuthCookie(w, tok, exp)
	writeJSON(w, map[string]any{"token": tok, "expiresAt": exp.UTC()})
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.setAuthCookie(w, "", time.Time{})
	writeJSON(w, map[string]bool{"ok": true})
}

// handleAdminPuzzle returns the current puzzle with its solution.
func (s *Server) handleAdminPuzzle(w http.ResponseWriter, r *http.Request) {
	at, _, ok := s.instant(w, r)
	if !ok {
		return
	}
	p, err := s.svc.At(at)
	if err != nil {
		s.puzzleError(w, err)
		return
	}
	writeJSON(w, p)
}

// handleAdminReload reloads the word list through Options.Reload.
func (s *Server) handleAdminReload(w http.ResponseWriter, r *http.Request) {
	if s.opts.Reload == nil {
		writeError(w, http.StatusNotImplemented, "reload_disabled")
		return
	}
	if err := s.opts.Reload(); err != nil {
		log.Error().Err(err).Msg("admin reload")
		writeError(w, http.StatusUnprocessableEntity, "reload_failed")
		return
	}
	a, g := s.svc.List().Stats()
	writeJSON(w, map[string]any{"answers": a, "allowed": g, "version": s.svc.List().Version()})
}

// ------------------------------ JWT & cookies ------------------------------

// checkPassword is a bcrypt verifier; an empty hash never matches.
func checkPassword(hash, pw string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// signJWT creates an HS256 JWT for the operator.
func (s *Server) signJWT() (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.JWTExpiry)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp, err
}

// setAuthCookie writes (or, with an empty token, deletes) the auth cookie.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.Production {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	c := &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Production,
		SameSite: sameSite,
		Expires:  exp,
	}
	if token == "" {
		c.MaxAge = -1
		c.Expires = time.Time{}
	}
	http.SetCookie(w, c)
}

// bearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.opts.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// requireAuth enforces a valid operator JWT.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := s.bearerOrCookie(r)
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(s.opts.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid || claims.Subject != adminSubject {
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
