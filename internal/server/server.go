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

	"github.com/osse101/OMD2Planner_Go/internal/handler"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
	"github.com/osse101/OMD2Planner_Go/internal/metrics"
	"github.com/osse101/OMD2Planner_Go/internal/session"
)

// Options configures the HTTP surface
type Options struct {
	Port             int
	ServiceName      string
	TrustedProxies   []string
	RequestSizeLimit int64
	RateLimit        int
	RateWindow       time.Duration
}

type Server struct {
	httpServer     *http.Server
	sessionService session.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, sessionService session.Service, backend string) *Server {
	if opts.RequestSizeLimit <= 0 {
		opts.RequestSizeLimit = DefaultRequestSizeLimit
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, sessionService, backend),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		sessionService: sessionService,
	}
}

// NewRouter builds the route tree. Exposed so tests can drive it without a listener.
func NewRouter(opts Options, svc session.Service, backend string) http.Handler {
	engine := svc.Engine()
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewRateLimiter(opts.RateLimit, opts.RateWindow)))
	r.Use(RequestSizeLimitMiddleware(opts.RequestSizeLimit))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc, backend))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, engine.Catalog().Len()))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleListCatalog(engine))
			r.Get("/search", handler.HandleSearchCatalog(engine))
			r.Get("/items/{name}", handler.HandleGetItem(engine))
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", handler.HandleCreateSession(svc))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleOpenSession(svc))
				r.Delete("/", handler.HandleResetSession(svc))
				r.Get("/view", handler.HandleSessionView(svc))
				r.Get("/export", handler.HandleExportSession(svc))

				r.Post("/search", handler.HandleSearch(svc))
				r.Post("/tab", handler.HandleSelectTab(svc))
				r.Post("/select", handler.HandleSelectItem(svc))
				r.Post("/skulls", handler.HandleSetSkulls(svc))

				r.Post("/items/buy", handler.HandleBuyItem(svc))
				r.Post("/items/sell", handler.HandleSellItem(svc))
				r.Post("/upgrades/buy", handler.HandleBuyUpgrade(svc))
				r.Post("/upgrades/sell", handler.HandleSellUpgrade(svc))
				r.Post("/loadout/add", handler.HandleAddToLoadout(svc))
				r.Post("/loadout/remove", handler.HandleRemoveFromLoadout(svc))
			})
		})
	})

	return r
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
		statusCode:     http.StatusOK,
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

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Honour an upstream request id so traces line up across proxies
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

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
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
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
			"duration_ms", duration.Milliseconds())
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
