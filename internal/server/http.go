package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Evasive-6/TriviaSwift/internal/config"
	"github.com/Evasive-6/TriviaSwift/internal/game"
	"github.com/Evasive-6/TriviaSwift/internal/question"
	"github.com/Evasive-6/TriviaSwift/internal/score"
	"github.com/Evasive-6/TriviaSwift/internal/user"
	userjwt "github.com/Evasive-6/TriviaSwift/internal/user/jwt"
)

// Handlers groups the per-domain HTTP handlers mounted on the API server.
// userHandlers may be nil when authentication is not configured.
type Handlers struct {
	Game     *game.HTTPHandlers
	Question *question.HTTPHandlers
	Score    *score.HTTPHandlers
	User     *user.HTTPHandlers
	TokenMgr *userjwt.Manager
}

// NewHTTPServer wires health, metrics and the REST API routes.
func NewHTTPServer(cfg *config.App, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	// Game sessions
	mux.HandleFunc("POST /api/game/start", h.Game.Start)
	mux.HandleFunc("POST /api/game/answer", h.Game.Answer)
	mux.HandleFunc("GET /api/game/{gameId}", h.Game.Get)
	mux.HandleFunc("DELETE /api/game/{gameId}", h.Game.End)

	// Question corpus
	mux.HandleFunc("GET /api/questions", h.Question.List)
	mux.HandleFunc("GET /api/questions/{id}", h.Question.Get)
	mux.HandleFunc("GET /api/questions/category/{category}", h.Question.ByCategory)
	mux.HandleFunc("GET /api/questions/random/{count}", h.Question.Random)
	mux.HandleFunc("POST /api/questions", h.Question.Create)
	mux.HandleFunc("PUT /api/questions/{id}", h.Question.Update)
	mux.HandleFunc("DELETE /api/questions/{id}", h.Question.Delete)

	// Score history
	mux.HandleFunc("GET /api/scores", h.Score.List)
	mux.HandleFunc("GET /api/scores/top/{limit}", h.Score.Top)
	mux.HandleFunc("GET /api/scores/player/{playerName}", h.Score.ByPlayer)
	mux.HandleFunc("GET /api/scores/stats/summary", h.Score.StatsSummary)
	mux.HandleFunc("POST /api/scores", h.Score.Submit)

	// User accounts
	if h.User != nil {
		mux.HandleFunc("POST /api/users/register", h.User.Register)
		mux.HandleFunc("POST /api/users/login", h.User.Login)
		mux.HandleFunc("GET /api/users/profile", user.Protect(h.TokenMgr, h.User.Profile))
		mux.HandleFunc("PUT /api/users/profile", user.Protect(h.TokenMgr, h.User.UpdateProfile))
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsMiddleware(cfg.CORS, mux),
	}
}

func corsMiddleware(cfg config.CORS, next http.Handler) http.Handler {
	allowedOrigins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	allowAll := false
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowedOrigins[origin] = struct{}{}
	}

	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			_, allowed := allowedOrigins[origin]
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case allowed:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			if allowAll || allowed {
				if cfg.AllowCredentials && !allowAll {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				if r.Method == http.MethodOptions {
					w.Header().Set("Access-Control-Allow-Methods", methods)
					w.Header().Set("Access-Control-Allow-Headers", headers)
					w.Header().Set("Access-Control-Max-Age", maxAge)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
