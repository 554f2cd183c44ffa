package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every response. Status always equals the HTTP
// status code.
type Envelope struct {
	Status  int    `json:"status" example:"200"`
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data,omitempty" swaggertype:"object"`
	Error   string `json:"error,omitempty" example:"Cake not found"`
}

type IDResponse struct {
	ID uint `json:"id" example:"1"`
}

func Render(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, Envelope{
		Status:  status,
		Success: true,
		Data:    data,
	})
}

func RenderOK(ctx *gin.Context, data any) {
	Render(ctx, http.StatusOK, data)
}

func RenderCreated(ctx *gin.Context, data any) {
	Render(ctx, http.StatusCreated, data)
}

// RenderErr writes e as an error envelope and records it on the gin context
// so the access log picks it up.
func RenderErr(ctx *gin.Context, e *Err) {
	_ = ctx.Error(e)

	status := e.Status()
	ctx.AbortWithStatusJSON(status, Envelope{
		Status:  status,
		Success: false,
		Error:   e.Message,
	})
}
