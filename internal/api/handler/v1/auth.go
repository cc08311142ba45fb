package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/config"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/canteen-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new user
// @Description  Creates a STUDENT or ADMIN_STAND account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.OK{data=domain.User}
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), req.ToUser())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSignup -> h.svc.Signup", err)
		return
	}

	response.RenderCreated(ctx, user)
}

// HandleSignin godoc
// @Summary      Signin a user
// @Description  Returns an access token bound to the caller's user agent.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SigninRequest true "request body"
// @Success      200      {object}   response.OK{data=response.SigninResponse}
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signin [post]
func (h *AuthHandler) HandleSignin(ctx *gin.Context) {
	req := request.SigninRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleSignin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user, ctx.Request.UserAgent(), h.conf.JWTTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleSignin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderOK(ctx, http.StatusOK, response.SigninResponse{
		AccessToken: token,
		User:        user,
	})
}
