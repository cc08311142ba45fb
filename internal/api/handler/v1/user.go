package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	CreateStudent(ctx context.Context, userID uuid.UUID, student domain.Student) (domain.Student, error)
	GetStudentByUserID(ctx context.Context, userID uuid.UUID) (domain.Student, error)
	UpdateStudent(ctx context.Context, userID uuid.UUID, update domain.StudentUpdate) (domain.Student, error)
	ListStudents(ctx context.Context) ([]domain.Student, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Success      200      {object}   response.OK{data=domain.User}
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), p.ID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetMe -> h.svc.GetUser", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, user)
}

// HandleCreateStudent godoc
// @Summary      Create the caller's student profile
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateStudentRequest true "request body"
// @Success      201      {object}   response.OK{data=domain.Student}
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /students [post]
// @Security BearerAuth
func (h *UserHandler) HandleCreateStudent(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req request.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	student, err := h.svc.CreateStudent(ctx.Request.Context(), p.ID, req.ToStudent())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateStudent -> h.svc.CreateStudent", err)
		return
	}

	response.RenderCreated(ctx, student)
}

// HandleGetOwnStudent godoc
// @Summary      Get the caller's student profile
// @Tags         students
// @Produce      json
// @Success      200      {object}   response.OK{data=domain.Student}
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /students/me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetOwnStudent(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	student, err := h.svc.GetStudentByUserID(ctx.Request.Context(), p.ID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOwnStudent -> h.svc.GetStudentByUserID", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, student)
}

// HandleUpdateOwnStudent godoc
// @Summary      Update the caller's student profile
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request   body      request.UpdateStudentRequest true "request body"
// @Success      200      {object}   response.OK{data=domain.Student}
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /students/me [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateOwnStudent(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req request.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	student, err := h.svc.UpdateStudent(ctx.Request.Context(), p.ID, req.ToUpdate())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateOwnStudent -> h.svc.UpdateStudent", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, student)
}

// HandleListStudents godoc
// @Summary      List student profiles
// @Tags         students
// @Produce      json
// @Success      200      {object}   response.OK{data=[]domain.Student}
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /students [get]
// @Security BearerAuth
func (h *UserHandler) HandleListStudents(ctx *gin.Context) {
	students, err := h.svc.ListStudents(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListStudents -> h.svc.ListStudents", err)
		return
	}

	response.RenderOK(ctx, http.StatusOK, students)
}
