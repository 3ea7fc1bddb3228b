package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InitService creates the tables when missing
// @Summary Initialize the schema (owner only)
// @Tags Admin
// @Param X-Caller-ID header string true "Caller identity"
// @Success 200 {object} Result
// @Failure 403 {object} Result
// @Router /admin/init [post]
func (h *Handler) InitService(c *gin.Context) {
	h.writeAdmin(c, h.admin.InitService(c.Request.Context()))
}

// ResetService drops every table
// @Summary Drop the schema (owner only)
// @Tags Admin
// @Param X-Caller-ID header string true "Caller identity"
// @Success 200 {object} Result
// @Failure 403 {object} Result
// @Router /admin/reset [post]
func (h *Handler) ResetService(c *gin.Context) {
	h.writeAdmin(c, h.admin.ResetService(c.Request.Context()))
}

func (h *Handler) writeAdmin(c *gin.Context, err error) {
	if err != nil {
		status, result := failure(c, h.tr, err)
		c.JSON(status, result)
		return
	}
	c.JSON(http.StatusOK, ok())
}
