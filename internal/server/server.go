package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/Farmstead_Go/docs"
	"github.com/osse101/Farmstead_Go/internal/database"
	"github.com/osse101/Farmstead_Go/internal/handler"
	"github.com/osse101/Farmstead_Go/internal/logger"
	"github.com/osse101/Farmstead_Go/internal/metrics"
	"github.com/osse101/Farmstead_Go/internal/profile"
	"github.com/osse101/Farmstead_Go/internal/sse"
)

// Options carries the HTTP surface settings
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
	ProfileID      string
}

type Server struct {
	httpServer     *http.Server
	router         chi.Router
	dbPool         database.Pool
	gameService    handler.GameService
	profileService profile.Service
	sseHub         *sse.Hub
}

// NewServer creates a new Server instance. dbPool may be nil when profiles
// are kept in memory.
func NewServer(opts Options, dbPool database.Pool, gameService handler.GameService, profileService profile.Service, sseHub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	gameHandler := handler.NewGameHandler(gameService)
	shopHandler := handler.NewShopHandler(gameService)
	profileHandler := handler.NewProfileHandler(profileService, opts.ProfileID)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/game", func(r chi.Router) {
			r.Get("/snapshot", gameHandler.HandleSnapshot)
			r.Get("/snapshot/{version}", gameHandler.HandleSnapshotAt)
			r.Get("/events", sse.Handler(sseHub, gameService))

			r.Post("/plant", gameHandler.HandlePlant)
			r.Post("/harvest", gameHandler.HandleHarvest)
			r.Post("/irrigate", gameHandler.HandleIrrigate)
			r.Post("/fill", gameHandler.HandleFill)
			r.Post("/feed", gameHandler.HandleFeed)
			r.Post("/advance", gameHandler.HandleAdvance)

			r.Post("/move", gameHandler.HandleMove)
			r.Post("/face", gameHandler.HandleFace)
			r.Post("/select-seed", gameHandler.HandleSelectSeed)
			r.Post("/cycle-seed", gameHandler.HandleCycleSeed)
			r.Post("/district", gameHandler.HandleDistrict)
			r.Post("/reset", gameHandler.HandleReset)
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/catalog", shopHandler.HandleCatalog)
			r.Post("/buy", shopHandler.HandleBuy)
			r.Post("/sell", shopHandler.HandleSell)
			r.Post("/sell-all", shopHandler.HandleSellAll)
		})

		r.Get("/profile", profileHandler.HandleGetProfile)
		r.Put("/profile", profileHandler.HandleUpdateProfile)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router:         r,
		dbPool:         dbPool,
		gameService:    gameService,
		profileService: profileService,
		sseHub:         sseHub,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
