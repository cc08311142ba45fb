package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/domain"
)

type MenuService interface {
	CreateMenu(ctx context.Context, p domain.Principal, menu domain.Menu) (domain.Menu, error)
	GetMenu(ctx context.Context, id uint) (domain.Menu, error)
	GetStandMenus(ctx context.Context, standID uint) ([]domain.Menu, error)
	GetOwnMenus(ctx context.Context, p domain.Principal) ([]domain.Menu, error)
	UpdateMenu(ctx context.Context, p domain.Principal, id uint, update domain.MenuUpdate) (domain.Menu, error)
	DeleteMenu(ctx context.Context, p domain.Principal, id uint) error
}

type MenuHandler struct {
	svc MenuService
}

func NewMenuHandler(svc MenuService) *MenuHandler {
	return &MenuHandler{
		svc: svc,
	}
}

// HandleCreateMenu godoc
// @Summary      Create a menu
// @Description  An ADMIN_STAND adds to its own stand. A SUPERADMIN must set stand_id.
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateMenuRequest true "request body"
// @Success      201      {object}   response.OK{data=domain.Menu}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menus [post]
// @Security BearerAuth
func (h *MenuHandler) HandleCreateMenu(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req request.CreateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	menu, err := h.svc.CreateMenu(ctx.Request.Context(), p, req.ToMenu())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateMenu -> h.svc.CreateMenu", err)
		return
	}

	response.RenderCreated(ctx, menu)
}

// HandleGetMenu godoc
// @Summary      Get a menu with its best active discount
// @Tags         menus
// @Produce      json
// @Param        menuID   path      int  true  "menu ID"
// @Success      200      {object}   response.OK{data=domain.Menu}
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menus/{menuID} [get]
func (h *MenuHandler) HandleGetMenu(ctx *gin.Context) {
	id, ok := pathID(ctx, "menuID")
	if !ok {
		return
	}

	menu, err := h.svc.GetMenu(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetMenu -> h.svc.GetMenu", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, menu)
}

// HandleGetStandMenus godoc
// @Summary      List the menus of a stand
// @Tags         menus
// @Produce      json
// @Param        standID   path      int  true  "stand ID"
// @Success      200      {object}   response.OK{data=[]domain.Menu}
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stands/{standID}/menus [get]
func (h *MenuHandler) HandleGetStandMenus(ctx *gin.Context) {
	standID, ok := pathID(ctx, "standID")
	if !ok {
		return
	}

	menus, err := h.svc.GetStandMenus(ctx.Request.Context(), standID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetStandMenus -> h.svc.GetStandMenus", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, menus)
}

// HandleGetOwnMenus godoc
// @Summary      List the menus of the caller's stand
// @Tags         menus
// @Produce      json
// @Success      200      {object}   response.OK{data=[]domain.Menu}
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menus/me [get]
// @Security BearerAuth
func (h *MenuHandler) HandleGetOwnMenus(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	menus, err := h.svc.GetOwnMenus(ctx.Request.Context(), p)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOwnMenus -> h.svc.GetOwnMenus", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, menus)
}

// HandleUpdateMenu godoc
// @Summary      Update a menu
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        menuID   path      int  true  "menu ID"
// @Param        request   body      request.UpdateMenuRequest true "request body"
// @Success      200      {object}   response.OK{data=domain.Menu}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menus/{menuID} [patch]
// @Security BearerAuth
func (h *MenuHandler) HandleUpdateMenu(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "menuID")
	if !ok {
		return
	}

	var req request.UpdateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	menu, err := h.svc.UpdateMenu(ctx.Request.Context(), p, id, req.ToUpdate())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateMenu -> h.svc.UpdateMenu", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, menu)
}

// HandleDeleteMenu godoc
// @Summary      Delete a menu
// @Description  Past orders keep their item snapshot.
// @Tags         menus
// @Produce      json
// @Param        menuID   path      int  true  "menu ID"
// @Success      200      {object}   response.OK
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menus/{menuID} [delete]
// @Security BearerAuth
func (h *MenuHandler) HandleDeleteMenu(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "menuID")
	if !ok {
		return
	}

	if err := h.svc.DeleteMenu(ctx.Request.Context(), p, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteMenu -> h.svc.DeleteMenu", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, nil)
}
