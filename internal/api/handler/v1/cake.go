package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/cake-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/cake-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cake-api/internal/domain"
	"github.com/vietanh2810/cake-api/internal/service"
)

const (
	msgCakeNotFound     = "Cake not found"
	msgNoCakes          = "No cakes found"
	msgNoSearchMatches  = "No cakes found matching your search"
	msgSearchTermNeeded = `Query parameter "q" is required`
)

type CakeService interface {
	CreateCake(ctx context.Context, cake domain.Cake) (domain.Cake, error)
	ListCakes(ctx context.Context) ([]domain.Cake, error)
	GetCake(ctx context.Context, id uint) (domain.Cake, error)
	SearchCakes(ctx context.Context, term string) ([]domain.Cake, error)
	UpdateCake(ctx context.Context, id uint, patch domain.CakePatch) (domain.Cake, error)
	DeleteCake(ctx context.Context, id uint) error
}

type CakeHandler struct {
	svc CakeService
}

func NewCakeHandler(svc CakeService) *CakeHandler {
	return &CakeHandler{
		svc: svc,
	}
}

// HandleCreateCake godoc
// @Summary      Create a cake
// @Description  Every field is required. Responds with the id of the new cake.
// @Tags         cakes
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCakeRequest  true  "Cake"
// @Success      201    {object}  response.Envelope{data=response.IDResponse}
// @Failure      400    {object}  response.Envelope
// @Failure      500    {object}  response.Envelope
// @Router       /cake [post]
func (h *CakeHandler) HandleCreateCake(ctx *gin.Context) {
	var input request.CreateCakeRequest
	if err := request.Bind(ctx, &input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cake, err := h.svc.CreateCake(ctx.Request.Context(), input.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateCake -> h.svc.CreateCake", err)
		return
	}

	response.RenderCreated(ctx, response.IDResponse{ID: cake.ID})
}

// HandleGetCakes godoc
// @Summary      List cakes
// @Description  Responds with 404 when there are no cakes at all.
// @Tags         cakes
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]domain.Cake}
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /cake [get]
func (h *CakeHandler) HandleGetCakes(ctx *gin.Context) {
	cakes, err := h.svc.ListCakes(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "HandleGetCakes -> h.svc.ListCakes", err)
		return
	}

	if len(cakes) == 0 {
		response.RenderErr(ctx, response.ErrNotFound(msgNoCakes))
		return
	}

	response.RenderOK(ctx, cakes)
}

// HandleSearchCakes godoc
// @Summary      Search cakes
// @Description  Case-insensitive substring match on name or flavor.
// @Tags         cakes
// @Produce      json
// @Param        q    query     string  true  "Search term"
// @Success      200  {object}  response.Envelope{data=[]domain.Cake}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /cake/search [get]
func (h *CakeHandler) HandleSearchCakes(ctx *gin.Context) {
	term := ctx.Query("q")
	if term == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New(msgSearchTermNeeded)))
		return
	}

	cakes, err := h.svc.SearchCakes(ctx.Request.Context(), term)
	if err != nil {
		renderServiceErr(ctx, "HandleSearchCakes -> h.svc.SearchCakes", err)
		return
	}

	if len(cakes) == 0 {
		response.RenderErr(ctx, response.ErrNotFound(msgNoSearchMatches))
		return
	}

	response.RenderOK(ctx, cakes)
}

// HandleGetCake godoc
// @Summary      Get a cake
// @Tags         cakes
// @Produce      json
// @Param        id   path      int  true  "Cake ID"
// @Success      200  {object}  response.Envelope{data=domain.Cake}
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /cake/{id} [get]
func (h *CakeHandler) HandleGetCake(ctx *gin.Context) {
	id, ok := parseCakeID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(msgCakeNotFound))
		return
	}

	cake, err := h.svc.GetCake(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "HandleGetCake -> h.svc.GetCake", err)
		return
	}

	response.RenderOK(ctx, cake)
}

// HandleUpdateCake godoc
// @Summary      Update a cake
// @Description  Fields left out of the body, or sent as null, keep their current value. Responds with the stored cake.
// @Tags         cakes
// @Accept       json
// @Produce      json
// @Param        id     path      int                        true  "Cake ID"
// @Param        input  body      request.UpdateCakeRequest  true  "Fields to change"
// @Success      200    {object}  response.Envelope{data=domain.Cake}
// @Failure      400    {object}  response.Envelope
// @Failure      404    {object}  response.Envelope
// @Failure      500    {object}  response.Envelope
// @Router       /cake/{id} [patch]
func (h *CakeHandler) HandleUpdateCake(ctx *gin.Context) {
	var input request.UpdateCakeRequest
	if err := request.Bind(ctx, &input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, ok := parseCakeID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(msgCakeNotFound))
		return
	}

	// Only nulls were sent: nothing to write.
	patch := input.ToPatch()
	if patch.IsEmpty() {
		cake, err := h.svc.GetCake(ctx.Request.Context(), id)
		if err != nil {
			renderServiceErr(ctx, "HandleUpdateCake -> h.svc.GetCake", err)
			return
		}

		response.RenderOK(ctx, cake)
		return
	}

	cake, err := h.svc.UpdateCake(ctx.Request.Context(), id, patch)
	if err != nil {
		renderServiceErr(ctx, "HandleUpdateCake -> h.svc.UpdateCake", err)
		return
	}

	response.RenderOK(ctx, cake)
}

// HandleDeleteCake godoc
// @Summary      Delete a cake
// @Tags         cakes
// @Produce      json
// @Param        id   path      int  true  "Cake ID"
// @Success      200  {object}  response.Envelope{data=response.IDResponse}
// @Failure      404  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /cake/{id} [delete]
func (h *CakeHandler) HandleDeleteCake(ctx *gin.Context) {
	id, ok := parseCakeID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(msgCakeNotFound))
		return
	}

	if err := h.svc.DeleteCake(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "HandleDeleteCake -> h.svc.DeleteCake", err)
		return
	}

	response.RenderOK(ctx, response.IDResponse{ID: id})
}

// parseCakeID reads the :id path parameter. Anything that cannot be a stored
// id is reported as not found.
func parseCakeID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

func renderServiceErr(ctx *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrCakeNotFound) {
		response.RenderErr(ctx, response.ErrNotFound(msgCakeNotFound))
		return
	}

	if errors.Is(err, service.ErrEmptyUpdate) {
		response.RenderErr(ctx, response.ErrBadRequest(request.ErrNoFields))
		return
	}

	var storeErr *service.StoreError
	if errors.As(err, &storeErr) {
		zap.L().Error(op,
			zap.Error(err),
			zap.String("store_op", storeErr.Op),
			zap.String("sqlstate", storeErr.Code),
			zap.Bool("constraint", storeErr.Constraint),
		)
		response.RenderErr(ctx, response.ErrInternalServerError(storeErr))
		return
	}

	err = fmt.Errorf("%s -> %w", op, err)
	zap.L().Error("unexpected service error", zap.Error(err))
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
