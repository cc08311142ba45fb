package v1

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/pkg/receipt"
)

var errInvalidPeriod = errors.New("month and year must be integers")

type OrderService interface {
	CreateOrder(ctx context.Context, p domain.Principal, standID uint, lines []domain.OrderLine) (domain.PlacedOrder, error)
	UpdateStatus(ctx context.Context, p domain.Principal, orderID uint, status domain.OrderStatus) (domain.Order, error)
	FindAll(ctx context.Context, p domain.Principal, month, year int) ([]domain.Order, error)
	FindOne(ctx context.Context, p domain.Principal, orderID uint) (domain.Order, error)
	Delete(ctx context.Context, p domain.Principal, orderID uint) error
	BuildReceipt(ctx context.Context, p domain.Principal, orderID uint) (domain.Receipt, error)
}

type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		svc: svc,
	}
}

// HandleCreateOrder godoc
// @Summary      Place an order
// @Description  Prices every line with the best discount active now. Nothing is stored when a line fails.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateOrderRequest true "request body"
// @Success      201      {object}   response.OK{data=domain.PlacedOrder}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders [post]
// @Security BearerAuth
func (h *OrderHandler) HandleCreateOrder(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	placed, err := h.svc.CreateOrder(ctx.Request.Context(), p, req.StandID, req.ToLines())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateOrder -> h.svc.CreateOrder", err)
		return
	}

	response.RenderCreated(ctx, placed)
}

// HandleGetOrders godoc
// @Summary      List the caller's orders
// @Description  Orders the caller placed or received at their stand, newest first.
// @Tags         orders
// @Produce      json
// @Param        month   query     int  false  "1-12, 0 or empty for the whole year"
// @Param        year    query     int  false  "defaults to the current year"
// @Success      200      {object}   response.OK{data=[]domain.Order}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrders(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var query request.ListOrdersQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidPeriod))
		return
	}

	orders, err := h.svc.FindAll(ctx.Request.Context(), p, query.Month, query.Year)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrders -> h.svc.FindAll", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, orders)
}

// HandleGetOrder godoc
// @Summary      Get one of the caller's orders
// @Tags         orders
// @Produce      json
// @Param        orderID   path      int  true  "order ID"
// @Success      200      {object}   response.OK{data=domain.Order}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{orderID} [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrder(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "orderID")
	if !ok {
		return
	}

	order, err := h.svc.FindOne(ctx.Request.Context(), p, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrder -> h.svc.FindOne", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, order)
}

// HandleUpdateOrderStatus godoc
// @Summary      Move an order forward
// @Description  PENDING -> COOKING -> READY -> COMPLETED. PENDING and COOKING may be CANCELLED.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderID   path      int  true  "order ID"
// @Param        request   body      request.UpdateOrderRequest true "request body"
// @Success      200      {object}   response.OK{data=domain.Order}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{orderID} [patch]
// @Security BearerAuth
func (h *OrderHandler) HandleUpdateOrderStatus(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "orderID")
	if !ok {
		return
	}

	var req request.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.UpdateStatus(ctx.Request.Context(), p, id, req.Status)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateOrderStatus -> h.svc.UpdateStatus", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, order)
}

// HandleDeleteOrder godoc
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        orderID   path      int  true  "order ID"
// @Success      200      {object}   response.OK
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{orderID} [delete]
// @Security BearerAuth
func (h *OrderHandler) HandleDeleteOrder(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "orderID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), p, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteOrder -> h.svc.Delete", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, nil)
}

// HandleGetReceipt godoc
// @Summary      Download the PDF receipt of an order
// @Tags         orders
// @Produce      application/pdf
// @Param        orderID   path      int  true  "order ID"
// @Success      200      {file}     file
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{orderID}/receipt [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetReceipt(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "orderID")
	if !ok {
		return
	}

	r, err := h.svc.BuildReceipt(ctx.Request.Context(), p, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetReceipt -> h.svc.BuildReceipt", err)
		return
	}

	var buf bytes.Buffer
	if err = receipt.Render(&buf, r); err != nil {
		err = fmt.Errorf("v1.HandleGetReceipt -> receipt.Render -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%d.pdf"`, id))
	ctx.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
