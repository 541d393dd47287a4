package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthrisk/internal/monitor"
	"healthrisk/internal/report"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

type routerDeps struct {
	renderer     *report.Renderer
	monitor      *monitor.Service
	logger       *zap.Logger
	now          func() time.Time
	maxBodyBytes int64
	metricsPath  string
}

func newRouter(deps routerDeps) *gin.Engine {
	if deps.logger == nil {
		deps.logger = zap.NewNop()
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	registerValidators()

	router := gin.New()
	router.Use(
		withRequestID(),
		accessLog(deps.logger),
		gin.Recovery(),
	)
	if deps.maxBodyBytes > 0 {
		router.Use(limitBodySize(deps.maxBodyBytes))
	}

	h := &handler{
		renderer: deps.renderer,
		monitor:  deps.monitor,
		logger:   deps.logger,
		now:      deps.now,
	}

	router.GET("/healthz", healthz)
	if deps.metricsPath != "" {
		router.GET(deps.metricsPath, gin.WrapH(deps.monitor.Handler()))
	}

	api := router.Group("/api/v1")
	api.POST("/assessments", h.assess)
	api.POST("/reports", h.report)

	return router
}

func withRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("request_id", requestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_addr", c.ClientIP()),
		)
	}
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
