package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/service"
)

type StandService interface {
	CreateStand(ctx context.Context, p domain.Principal, stand domain.Stand) (domain.Stand, error)
	GetStands(ctx context.Context) ([]domain.Stand, error)
	GetStand(ctx context.Context, id uint) (domain.Stand, error)
	GetStandByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Stand, error)
	UpdateStand(ctx context.Context, p domain.Principal, id uint, update domain.StandUpdate) (domain.Stand, error)
	UpdateOwnStand(ctx context.Context, p domain.Principal, update domain.StandUpdate) (domain.Stand, error)
	DeleteStand(ctx context.Context, p domain.Principal, id uint) error
}

type StatsService interface {
	GetStandStats(ctx context.Context, ownerID uuid.UUID) (domain.StandStats, error)
}

type StandHandler struct {
	svc   StandService
	stats StatsService
}

func NewStandHandler(svc StandService, stats StatsService) *StandHandler {
	return &StandHandler{
		svc:   svc,
		stats: stats,
	}
}

// HandleCreateStand godoc
// @Summary      Open the caller's stand
// @Description  An ADMIN_STAND owns at most one stand.
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateStandRequest true "request body"
// @Success      201      {object}   response.OK{data=domain.Stand}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands [post]
// @Security BearerAuth
func (h *StandHandler) HandleCreateStand(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req request.CreateStandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.CreateStand(ctx.Request.Context(), p, req.ToStand())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateStand -> h.svc.CreateStand", err)
		return
	}

	response.RenderCreated(ctx, stand)
}

// HandleGetStands godoc
// @Summary      List stands
// @Tags         stands
// @Produce      json
// @Success      200      {object}   response.OK{data=[]domain.Stand}
// @Failure      500      {object}   response.Err
// @Router       /stands [get]
func (h *StandHandler) HandleGetStands(ctx *gin.Context) {
	stands, err := h.svc.GetStands(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetStands -> h.svc.GetStands", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, stands)
}

// HandleGetStand godoc
// @Summary      Get a stand
// @Tags         stands
// @Produce      json
// @Param        standID   path      int  true  "stand ID"
// @Success      200      {object}   response.OK{data=domain.Stand}
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands/{standID} [get]
func (h *StandHandler) HandleGetStand(ctx *gin.Context) {
	id, ok := pathID(ctx, "standID")
	if !ok {
		return
	}

	stand, err := h.svc.GetStand(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStandNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stand", "id", id))
			return
		}

		renderServiceErr(ctx, "v1.HandleGetStand -> h.svc.GetStand", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, stand)
}

// HandleGetOwnStand godoc
// @Summary      Get the caller's stand
// @Tags         stands
// @Produce      json
// @Success      200      {object}   response.OK{data=domain.Stand}
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands/me [get]
// @Security BearerAuth
func (h *StandHandler) HandleGetOwnStand(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	stand, err := h.svc.GetStandByOwner(ctx.Request.Context(), p.ID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOwnStand -> h.svc.GetStandByOwner", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, stand)
}

// HandleGetStandStats godoc
// @Summary      Sales statistics of the caller's stand
// @Description  Trailing 12 calendar months, oldest first, with the 5 best selling menus.
// @Tags         stands
// @Produce      json
// @Success      200      {object}   response.OK{data=domain.StandStats}
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands/stats [get]
// @Security BearerAuth
func (h *StandHandler) HandleGetStandStats(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	stats, err := h.stats.GetStandStats(ctx.Request.Context(), p.ID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetStandStats -> h.stats.GetStandStats", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, stats)
}

// HandleUpdateOwnStand godoc
// @Summary      Update the caller's stand
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        request   body      request.UpdateStandRequest true "request body"
// @Success      200      {object}   response.OK{data=domain.Stand}
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands/me [patch]
// @Security BearerAuth
func (h *StandHandler) HandleUpdateOwnStand(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req request.UpdateStandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.UpdateOwnStand(ctx.Request.Context(), p, req.ToUpdate())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateOwnStand -> h.svc.UpdateOwnStand", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, stand)
}

// HandleUpdateStand godoc
// @Summary      Update any stand
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        standID   path      int  true  "stand ID"
// @Param        request   body      request.UpdateStandRequest true "request body"
// @Success      200      {object}   response.OK{data=domain.Stand}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands/{standID} [patch]
// @Security BearerAuth
func (h *StandHandler) HandleUpdateStand(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "standID")
	if !ok {
		return
	}

	var req request.UpdateStandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.UpdateStand(ctx.Request.Context(), p, id, req.ToUpdate())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateStand -> h.svc.UpdateStand", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, stand)
}

// HandleDeleteStand godoc
// @Summary      Delete a stand with its menus, discounts and orders
// @Tags         stands
// @Produce      json
// @Param        standID   path      int  true  "stand ID"
// @Success      200      {object}   response.OK
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands/{standID} [delete]
// @Security BearerAuth
func (h *StandHandler) HandleDeleteStand(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "standID")
	if !ok {
		return
	}

	if err := h.svc.DeleteStand(ctx.Request.Context(), p, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteStand -> h.svc.DeleteStand", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, nil)
}
