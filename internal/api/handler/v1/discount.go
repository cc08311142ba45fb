package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/domain"
)

type DiscountService interface {
	CreateDiscount(ctx context.Context, p domain.Principal, discount domain.Discount) (domain.Discount, error)
	GetDiscounts(ctx context.Context) ([]domain.Discount, error)
	GetOwnDiscounts(ctx context.Context, p domain.Principal) ([]domain.Discount, error)
	GetDiscount(ctx context.Context, p domain.Principal, id uint) (domain.Discount, error)
	UpdateDiscount(ctx context.Context, p domain.Principal, id uint, update domain.DiscountUpdate) (domain.Discount, error)
	DeleteDiscount(ctx context.Context, p domain.Principal, id uint) error
}

type DiscountHandler struct {
	svc DiscountService
}

func NewDiscountHandler(svc DiscountService) *DiscountHandler {
	return &DiscountHandler{
		svc: svc,
	}
}

// HandleCreateDiscount godoc
// @Summary      Create a discount
// @Description  Linked menus must belong to the discount's stand. A SUPERADMIN must set stand_id.
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateDiscountRequest true "request body"
// @Success      201      {object}   response.OK{data=domain.Discount}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /discounts [post]
// @Security BearerAuth
func (h *DiscountHandler) HandleCreateDiscount(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req request.CreateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	discount, err := h.svc.CreateDiscount(ctx.Request.Context(), p, req.ToDiscount())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateDiscount -> h.svc.CreateDiscount", err)
		return
	}

	response.RenderCreated(ctx, discount)
}

// HandleGetDiscounts godoc
// @Summary      List all discounts
// @Tags         discounts
// @Produce      json
// @Success      200      {object}   response.OK{data=[]domain.Discount}
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /discounts [get]
// @Security BearerAuth
func (h *DiscountHandler) HandleGetDiscounts(ctx *gin.Context) {
	discounts, err := h.svc.GetDiscounts(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetDiscounts -> h.svc.GetDiscounts", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, discounts)
}

// HandleGetOwnDiscounts godoc
// @Summary      List the discounts of the caller's stand
// @Tags         discounts
// @Produce      json
// @Success      200      {object}   response.OK{data=[]domain.Discount}
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /discounts/me [get]
// @Security BearerAuth
func (h *DiscountHandler) HandleGetOwnDiscounts(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	discounts, err := h.svc.GetOwnDiscounts(ctx.Request.Context(), p)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOwnDiscounts -> h.svc.GetOwnDiscounts", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, discounts)
}

// HandleGetDiscount godoc
// @Summary      Get a discount
// @Tags         discounts
// @Produce      json
// @Param        discountID   path      int  true  "discount ID"
// @Success      200      {object}   response.OK{data=domain.Discount}
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /discounts/{discountID} [get]
// @Security BearerAuth
func (h *DiscountHandler) HandleGetDiscount(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "discountID")
	if !ok {
		return
	}

	discount, err := h.svc.GetDiscount(ctx.Request.Context(), p, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetDiscount -> h.svc.GetDiscount", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, discount)
}

// HandleUpdateDiscount godoc
// @Summary      Update a discount
// @Description  menu_ids, when present, replaces the linked menus.
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        discountID   path      int  true  "discount ID"
// @Param        request   body      request.UpdateDiscountRequest true "request body"
// @Success      200      {object}   response.OK{data=domain.Discount}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /discounts/{discountID} [patch]
// @Security BearerAuth
func (h *DiscountHandler) HandleUpdateDiscount(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "discountID")
	if !ok {
		return
	}

	var req request.UpdateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	discount, err := h.svc.UpdateDiscount(ctx.Request.Context(), p, id, req.ToUpdate())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateDiscount -> h.svc.UpdateDiscount", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, discount)
}

// HandleDeleteDiscount godoc
// @Summary      Delete a discount
// @Tags         discounts
// @Produce      json
// @Param        discountID   path      int  true  "discount ID"
// @Success      200      {object}   response.OK
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /discounts/{discountID} [delete]
// @Security BearerAuth
func (h *DiscountHandler) HandleDeleteDiscount(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "discountID")
	if !ok {
		return
	}

	if err := h.svc.DeleteDiscount(ctx.Request.Context(), p, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteDiscount -> h.svc.DeleteDiscount", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, nil)
}
