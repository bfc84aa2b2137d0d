package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natanielandrade/backend/internal/config"
	"github.com/natanielandrade/backend/internal/handler"
	"github.com/natanielandrade/backend/internal/logging"
	"github.com/natanielandrade/backend/internal/repository"
	"github.com/natanielandrade/backend/internal/service"
	"github.com/natanielandrade/backend/pkg/auth"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	courseRepo := repository.NewPgCourseRepository(pool)
	videoRepo := repository.NewPgVideoRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, sessionRepo, sessionTTL)
	courseService := service.NewCourseService(courseRepo)
	videoService := service.NewVideoService(videoRepo)
	contactService := service.NewContactService(contactRepo, cfg.WhatsAppPhone)
	statsService := service.NewStatsService(courseRepo, videoRepo, contactRepo)

	h := handler.New(pool)
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	videoHandler := handler.NewVideoHandler(videoService)
	contactHandler := handler.NewContactHandler(contactService)
	statsHandler := handler.NewStatsHandler(statsService)

	requireSession := auth.RequireSession(authService.Verify)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// Public site endpoints
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/courses", courseHandler.List)
	mux.HandleFunc("GET /api/courses/{id}", courseHandler.Get)
	mux.HandleFunc("GET /api/videos", videoHandler.List)

	// Auth endpoints
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/auth/me", requireSession(http.HandlerFunc(authHandler.Me)))

	// Admin endpoints (session required)
	mux.Handle("GET /api/admin/messages", requireSession(http.HandlerFunc(contactHandler.List)))
	mux.Handle("PATCH /api/admin/messages/{id}", requireSession(http.HandlerFunc(contactHandler.UpdateStatus)))
	mux.Handle("GET /api/admin/messages/{id}/reply-link", requireSession(http.HandlerFunc(contactHandler.ReplyLink)))
	mux.Handle("POST /api/admin/courses", requireSession(http.HandlerFunc(courseHandler.Create)))
	mux.Handle("PUT /api/admin/courses/{id}", requireSession(http.HandlerFunc(courseHandler.Update)))
	mux.Handle("DELETE /api/admin/courses/{id}", requireSession(http.HandlerFunc(courseHandler.Delete)))
	mux.Handle("POST /api/admin/videos", requireSession(http.HandlerFunc(videoHandler.Create)))
	mux.Handle("PUT /api/admin/videos/{id}", requireSession(http.HandlerFunc(videoHandler.Update)))
	mux.Handle("DELETE /api/admin/videos/{id}", requireSession(http.HandlerFunc(videoHandler.Delete)))
	mux.Handle("GET /api/admin/stats", requireSession(http.HandlerFunc(statsHandler.GetStats)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.RequestLogger(corsMiddleware.Handler(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
