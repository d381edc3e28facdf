// Package server is the HTTP layer: read endpoints over the service
// facades, plus the admin-gated Pocket OAuth linking flow. Requests never
// reach the upstream APIs; everything is served from the store.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"

	"homeboard/internal/service"
)

const pocketAuthorizeURL = "https://getpocket.com/auth/authorize"

// Config holds HTTP layer configuration.
type Config struct {
	AdminPassword string
	SessionSecret string
}

type Server struct {
	router        *httprouter.Router
	logger        *slog.Logger
	sessions      *sessionStore
	adminPassword string

	lastfm   *service.LastfmService
	pinboard *service.PinboardService
	pocket   *service.PocketService
}

func New(cfg Config, lastfm *service.LastfmService, pinboard *service.PinboardService, pocket *service.PocketService, metricsHandler http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		router:        httprouter.New(),
		logger:        logger,
		sessions:      newSessionStore(cfg.SessionSecret),
		adminPassword: cfg.AdminPassword,
		lastfm:        lastfm,
		pinboard:      pinboard,
		pocket:        pocket,
	}

	s.router.GET("/", s.handleHome)
	s.router.POST("/login", s.handleLogin)
	s.router.GET("/logout", s.handleLogout)
	s.router.GET("/admin", s.requireAdmin(s.handleAdmin))

	s.router.GET("/lastfm", s.handleLastfm)
	s.router.GET("/pinboard", s.handlePinboard)
	s.router.GET("/pocket", s.handlePocket)

	s.router.GET("/pocket/authorize", s.requireAdmin(s.handlePocketAuthorize))
	s.router.GET("/pocket/authorize/callback", s.requireAdmin(s.handlePocketCallback))
	s.router.GET("/pocket/unlink", s.requireAdmin(s.handlePocketUnlink))

	if metricsHandler != nil {
		s.router.Handler(http.MethodGet, "/metrics", metricsHandler)
	}

	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if r.FormValue("password") != s.adminPassword {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	value, sess := s.sessions.create()
	sess.authenticate()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.sessions.destroy(r)
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	auth, err := s.pocket.Authorization(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}

	status := struct {
		PocketUsername string `json:"pocketUsername,omitempty"`
	}{}
	if auth != nil {
		status.PocketUsername = auth.Username
	}

	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleLastfm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tracks, err := s.lastfm.RecentTracks(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}

	skip, limit := parsePaging(r)
	writeJSON(w, http.StatusOK, nonNil(Page(tracks, skip, limit)))
}

func (s *Server) handlePinboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	posts, err := s.pinboard.Posts(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}

	skip, limit := parsePaging(r)
	writeJSON(w, http.StatusOK, nonNil(Page(posts, skip, limit)))
}

func (s *Server) handlePocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	articles, err := s.pocket.Articles(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}

	skip, limit := parsePaging(r)
	writeJSON(w, http.StatusOK, nonNil(Page(articles, skip, limit)))
}

func (s *Server) handlePocketAuthorize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	redirectURI := s.callbackURI(r)

	token, err := s.pocket.RequestToken(r.Context(), redirectURI)
	if err != nil {
		s.serverError(w, err)
		return
	}

	s.sessions.get(r).setRequestToken(token)

	authorize := fmt.Sprintf("%s?request_token=%s&redirect_uri=%s",
		pocketAuthorizeURL, url.QueryEscape(token), url.QueryEscape(redirectURI))
	http.Redirect(w, r, authorize, http.StatusFound)
}

func (s *Server) handlePocketCallback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := s.sessions.get(r).takeRequestToken()
	if token == "" {
		s.serverError(w, fmt.Errorf("no pending pocket request token"))
		return
	}

	auth, err := s.pocket.AccessToken(r.Context(), token)
	if err != nil {
		s.serverError(w, err)
		return
	}

	if err := s.pocket.SetAuthorization(r.Context(), *auth); err != nil {
		s.serverError(w, err)
		return
	}

	if err := s.pocket.StartWorker(); err != nil {
		s.serverError(w, err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (s *Server) handlePocketUnlink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := s.pocket.RemoveAuthorization(r.Context()); err != nil {
		s.serverError(w, err)
		return
	}

	if err := s.pocket.RemoveArticles(r.Context()); err != nil {
		s.serverError(w, err)
		return
	}

	s.pocket.StopWorker()
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (s *Server) requireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		sess := s.sessions.get(r)
		if sess == nil || !sess.isAuthenticated() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r, params)
	}
}

// callbackURI builds the absolute URI Pocket redirects back to after the
// user grants or denies access.
func (s *Server) callbackURI(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/pocket/authorize/callback", scheme, r.Host)
}

// serverError logs the error and responds with a clean 500 body. Stack
// traces and error details never reach the client.
func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("internal server error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// nonNil maps a nil slice to an empty one, so cold caches serialize as []
// rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
