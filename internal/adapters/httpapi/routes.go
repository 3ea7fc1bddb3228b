package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers every route under /api/v1 plus /ping and /metrics.
func NewRouter(h *Handler, ownerID string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), MetricsMiddleware())

	r.GET("/ping", ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(LocaleMiddleware(h.tr))
	{
		admin := v1.Group("/admin")
		admin.Use(OwnerOnly(ownerID, h.tr))
		admin.POST("/init", h.InitService)
		admin.POST("/reset", h.ResetService)

		participants := v1.Group("/participants")
		participants.POST("", h.Register)
		participants.GET("/:address", h.GetParticipant)
		participants.PUT("/:address", h.UpdateProfile)
		participants.GET("/:address/events/:id/submission", h.GetUserEventSubmission)

		events := v1.Group("/events")
		events.POST("", h.AddEvent)
		events.GET("", h.ListEvents)
		events.GET("/live", h.ListLiveEvents)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.PUT("/:id/close", h.CloseEvent)
		events.GET("/:id/submissions", h.ListEventSubmissions)

		submissions := v1.Group("/submissions")
		submissions.POST("", h.Draft)
		submissions.GET("", h.ListSubmissions)
		submissions.GET("/:id", h.GetSubmission)
		submissions.PUT("/:id", h.UpdateSubmission)
		submissions.PUT("/:id/submit", h.Submit)
	}
	return r
}
