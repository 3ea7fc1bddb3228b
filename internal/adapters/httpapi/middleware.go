package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bootcamp/internal/domain"
	"bootcamp/internal/infrastructure/metrics"
)

// CallerHeader carries the identity set by the upstream gateway.
const CallerHeader = "X-Caller-ID"

// MetricsMiddleware collects HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The route template keeps label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.RequestInProgress.WithLabelValues(method, path).Inc()
		defer metrics.RequestInProgress.WithLabelValues(method, path).Dec()

		startTime := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.RequestCounter.WithLabelValues(status, method, path).Inc()
		metrics.RequestDuration.WithLabelValues(status, method, path).Observe(time.Since(startTime).Seconds())
	}
}

// LocaleMiddleware stores the negotiated locale for error messages.
func LocaleMiddleware(l Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, l.Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// OwnerOnly rejects callers whose X-Caller-ID is not ownerID.
func OwnerOnly(ownerID string, l Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ownerID == "" || c.GetHeader(CallerHeader) != ownerID {
			status, result := failure(c, l, domain.ErrNotOwner)
			c.AbortWithStatusJSON(status, result)
			return
		}
		c.Next()
	}
}

func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
