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

	"github.com/pr-poehali-dev/cs2-case-openings/internal/handler"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/metrics"
)

// APIPrefix is the mount point of the versioned API
const APIPrefix = "/api/v1"

// Config carries the listener and security settings of the HTTP server
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. Checks are probed by /readyz.
func NewServer(cfg Config, h *handler.Handlers, checks ...handler.ReadinessCheck) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, h, checks...),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(cfg Config, h *handler.Handlers, checks ...handler.ReadinessCheck) http.Handler {
	r := chi.NewRouter()

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	// Chi middleware executes in order defined (outermost to innermost)
	proxies := ParseTrustedProxies(cfg.TrustedProxies)
	tracker := NewClientTracker(ClientWindow, MaxRequestsPerWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(proxies, tracker))
	r.Use(AuthMiddleware(cfg.APIKey, proxies, tracker))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(checks...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/cases", func(r chi.Router) {
			r.Get("/", h.HandleGetCases())
			r.Get("/{caseID}", h.HandleGetCase())
			r.Post("/{caseID}/open", h.HandleOpenCase())
		})

		r.Route("/upgrade", func(r chi.Router) {
			r.Post("/", h.HandleUpgrade())
			r.Get("/targets", h.HandleGetUpgradeTargets())
			r.Post("/quote", h.HandleUpgradeQuote())
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Get("/outcomes", h.HandleGetContractOutcomes())
			r.Post("/fuse", h.HandleFuseContract())
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.HandleOpenAccount())
			r.Route("/{accountID}", func(r chi.Router) {
				r.Get("/", h.HandleGetAccount())
				r.Post("/deposit", h.HandleDeposit())
				r.Get("/inventory", h.HandleGetInventory())
				r.Post("/sell", h.HandleSellItems())
				r.Post("/sell-all", h.HandleSellAll())
				r.Get("/history", h.HandleGetHistory())
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

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
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honor an upstream request ID so logs line up across hops
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

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)

		defer func() {
			if rec := recover(); rec != nil {
				log.Error(LogMsgPanicRecovered, "panic", rec, "path", r.URL.Path)
				if !rw.written {
					http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}

			duration := time.Since(start)
			log.Info(LogMsgRequestCompleted,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.statusCode,
				"duration_ms", duration.Milliseconds(),
				"duration", duration)
		}()

		next.ServeHTTP(rw, r)
	})
}

func sanitizeHeaders(in http.Header) http.Header {
	out := make(http.Header, len(in))
	for k, v := range in {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
