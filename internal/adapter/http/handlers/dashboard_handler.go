package handlers

import (
	"net/http"

	response "assistencia_tecnica/internal/adapter/http/dto/response"
	"assistencia_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary godoc
// @Summary  Dashboard totals and recent activity
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Router   /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		respondError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary))
}
