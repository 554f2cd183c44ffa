package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErr_Status(t *testing.T) {
	tests := []struct {
		err  *Err
		want int
	}{
		{err: ErrBadRequest(errors.New("Missing required fields")), want: http.StatusBadRequest},
		{err: ErrNotFound("Cake not found"), want: http.StatusNotFound},
		{err: ErrInternalServerError(errors.New("disk I/O error")), want: http.StatusInternalServerError},
		{err: &Err{Kind: Kind(99), Message: "unknown"}, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestRenderErr(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	RenderErr(ctx, ErrNotFound("Cake not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":404,"success":false,"error":"Cake not found"}`, w.Body.String())
	assert.True(t, ctx.IsAborted())
	require.Len(t, ctx.Errors, 1)
}

func TestRender(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	RenderCreated(ctx, IDResponse{ID: 7})

	assert.Equal(t, http.StatusCreated, w.Code)

	var body Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, body.Status)
	assert.True(t, body.Success)
	assert.Empty(t, body.Error)
	assert.Equal(t, map[string]any{"id": float64(7)}, body.Data)
}
