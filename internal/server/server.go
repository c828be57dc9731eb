package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SchalePlanner_Go/internal/database"
	"github.com/osse101/SchalePlanner_Go/internal/handler"
	"github.com/osse101/SchalePlanner_Go/internal/logger"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
	"github.com/osse101/SchalePlanner_Go/internal/profile"
	"github.com/osse101/SchalePlanner_Go/internal/relationship"
	"github.com/osse101/SchalePlanner_Go/internal/scan"
	"github.com/osse101/SchalePlanner_Go/internal/sensei"
	"github.com/osse101/SchalePlanner_Go/internal/student"
)

// Services groups everything the routes call into.
type Services struct {
	Sensei       sensei.Service
	Student      student.Service
	Relationship relationship.Service
	Gifts        *relationship.Catalog
	// Scan is built with scan.NewService around a ModelClient. Left nil,
	// POST /api/v1/scan answers 503 and only /scan/parse is usable.
	Scan         scan.Service
	Profiles     profile.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, version string, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, version, svcs),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routes and middleware stack.
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, version string, svcs Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware(trustedProxies))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Image uploads bypass the JSON body limit
		r.Post("/scan", handler.HandleScan(svcs.Scan))

		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

			r.Route("/sensei", func(r chi.Router) {
				r.Post("/plan", handler.HandleSenseiPlan(svcs.Sensei))
				r.Post("/days", handler.HandleSenseiDays(svcs.Sensei))
				r.Get("/capacity", handler.HandleSenseiCapacity(svcs.Sensei))
			})

			r.Route("/student", func(r chi.Router) {
				r.Post("/reports", handler.HandleStudentReports(svcs.Student))
				r.Post("/cost", handler.HandleStudentCost(svcs.Student))
			})

			relationshipHandlers := handler.NewRelationshipHandlers(svcs.Relationship, svcs.Gifts)
			r.Route("/relationship", func(r chi.Router) {
				r.Post("/exp", relationshipHandlers.HandleExp())
				r.Post("/rank", relationshipHandlers.HandleRank())
				r.Get("/gifts/search", relationshipHandlers.HandleGiftSearch())
				r.Post("/gifts/preferences", relationshipHandlers.HandleGiftPreferences())
			})

			r.Post("/scan/parse", handler.HandleScanParse())

			profileHandlers := handler.NewProfileHandlers(svcs.Profiles, svcs.Sensei)
			r.Route("/profiles", func(r chi.Router) {
				r.Use(AuthMiddleware(apiKey, trustedProxies))

				r.Post("/", profileHandlers.HandleCreate())
				r.Get("/", profileHandlers.HandleList())
				r.Get("/{id}", profileHandlers.HandleGet())
				r.Put("/{id}", profileHandlers.HandleUpdate())
				r.Delete("/{id}", profileHandlers.HandleDelete())
				r.Get("/{id}/plan", profileHandlers.HandlePlan())
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

// requestID reuses a caller supplied X-Request-ID when it is short enough,
// otherwise generates one.
func requestID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(HeaderRequestID)); id != "" && len(id) <= MaxRequestIDLength {
		return id
	}
	return logger.GenerateRequestID()
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isQuietPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			id := requestID(r)
			ctx := logger.WithRequestID(r.Context(), id)
			r = r.WithContext(ctx)
			w.Header().Set(HeaderRequestID, id)

			log := logger.FromContext(ctx)
			log.Info(LogMsgRequestStarted,
				"method", r.Method,
				"path", r.URL.Path,
				"client_ip", extractIP(r, trustedProxies),
				"content_length", r.ContentLength,
				"user_agent", r.UserAgent())

			sanitizedHeaders := make(http.Header, len(r.Header))
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
				"duration_ms", duration.Milliseconds())
		})
	}
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
