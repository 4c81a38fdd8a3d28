package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/docsync/internal/server/handlers"
	"github.com/iudanet/docsync/internal/server/middleware"
	"github.com/iudanet/docsync/internal/server/storage"
)

const healthPath = "/api/v1/health"

// routes зависимости HTTP API
type routes struct {
	logger   *slog.Logger
	users    storage.UserStorage
	docs     storage.DocumentStorage
	db       handlers.Pinger
	channels handlers.ChannelServer
	limiter  *middleware.RateLimiter
	jwt      handlers.JWTConfig
	version  string
}

func newRouter(rt routes) http.Handler {
	authHandler := handlers.NewAuthHandler(rt.logger, rt.users, rt.jwt)
	healthHandler := handlers.NewHealthHandler(rt.logger, rt.version, rt.db)
	documentHandler := handlers.NewDocumentHandler(rt.logger, rt.docs, rt.channels)

	r := mux.NewRouter()
	r.Use(
		middleware.LoggingMiddleware(rt.logger, healthPath),
		middleware.RecoveryMiddleware(rt.logger),
	)

	r.HandleFunc(healthPath, healthHandler.Health).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/v1/auth").Subrouter()
	auth.Use(rt.limiter.Middleware)
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.AuthMiddleware(rt.logger, rt.jwt))
	protected.HandleFunc("/documents/{id}", documentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/ws", documentHandler.Connect).Methods(http.MethodGet)

	return r
}
