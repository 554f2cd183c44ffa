package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cake-api/internal/api/handler/v1/response"
)

type HealthStatus struct {
	Status string `json:"status" example:"ok"`
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Envelope{data=v1.HealthStatus}
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	response.RenderOK(ctx, HealthStatus{Status: "ok"})
}
