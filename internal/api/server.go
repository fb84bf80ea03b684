// Package api exposes the limb-salvage engine over HTTP. The layer stores
// nothing and performs no side effects beyond logging; every response is
// recomputed from the posted assessment snapshot.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/limb-salvage-engine/internal/domain"
	"github.com/limb-salvage-engine/internal/service"
)

// Server represents the HTTP server.
type Server struct {
	config *domain.Config
	logger *logrus.Logger
	engine *service.Engine
	router *gin.Engine
	server *http.Server
}

// NewServer creates a new HTTP server instance.
func NewServer(config *domain.Config, logger *logrus.Logger, engine *service.Engine) *Server {
	if config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(corsMiddleware())
	router.Use(correlationIDMiddleware())
	router.Use(requestLoggerMiddleware(logger))
	router.Use(rateLimitMiddleware(config.RateLimit))

	s := &Server{
		config: config,
		logger: logger,
		engine: engine,
		router: router,
	}

	s.setupRoutes()

	return s
}

// Start starts the HTTP server and blocks until the context is canceled,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.config.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		assessments := v1.Group("/assessments")
		assessments.POST("/score", s.handleScore)
		assessments.POST("/recommendations", s.handleRecommendations)
		assessments.POST("/amputation-level", s.handleAmputationLevel)
		assessments.POST("/management", s.handleManagement)
		assessments.POST("/evaluate", s.handleEvaluate)
	}
}

// securityHeadersMiddleware adds standard security headers to responses.
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}

// corsMiddleware adds CORS headers to responses.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Correlation-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Correlation-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// correlationIDMiddleware attaches a correlation ID to each request for audit
// trails, honoring one supplied by the caller.
func correlationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			correlationID = uuid.New().String()
		}
		c.Set("correlation_id", correlationID)
		c.Header("X-Correlation-ID", correlationID)
		c.Next()
	}
}

// requestLoggerMiddleware logs each completed request with structured fields.
func requestLoggerMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         c.Writer.Status(),
			"latency":        time.Since(start).String(),
			"client_ip":      c.ClientIP(),
			"correlation_id": c.GetString("correlation_id"),
		}).Info("Request completed")
	}
}

// rateLimitMiddleware applies a shared token-bucket limit across requests.
func rateLimitMiddleware(cfg domain.RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			apiErr := domain.NewAPIError(domain.ErrRateLimit,
				"Too many requests", "", c.GetString("correlation_id"))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apiErr)
			return
		}
		c.Next()
	}
}
