package v1

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/api/middleware"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/service"
)

var errMissingPrincipal = errors.New("no authenticated user in request context")

var (
	notFoundErrs = []error{
		service.ErrOrderNotFound,
		service.ErrMenuNotFound,
		service.ErrStandNotFound,
		service.ErrDiscountNotFound,
		service.ErrUserNotFound,
		service.ErrStudentNotFound,
	}
	badRequestErrs = []error{
		service.ErrEmptyOrder,
		service.ErrInvalidQuantity,
		service.ErrMenuNotInStand,
		service.ErrInvalidStatus,
		service.ErrInvalidStatusTransition,
		service.ErrInvalidMonth,
		service.ErrInvalidYear,
		service.ErrInvalidDateRange,
		service.ErrInvalidPercentage,
		service.ErrStandRequired,
		service.ErrInvalidRole,
	}
	conflictErrs = []error{
		service.ErrUsernameExists,
		service.ErrStandAlreadyExists,
		service.ErrStudentExists,
	}
)

// renderServiceErr maps a service error to its HTTP status. Anything not
// recognised is an internal error tagged with op.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
	case isAny(err, notFoundErrs):
		response.RenderErr(ctx, response.ErrResourceNotFound(err, clientMessage(err)))
	case isAny(err, badRequestErrs):
		response.RenderErr(ctx, response.ErrBadRequest(errors.New(clientMessage(err))))
	case isAny(err, conflictErrs):
		response.RenderErr(ctx, response.ErrConflict(errors.New(clientMessage(err))))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// clientMessage drops the call chain prefix ("s.repo.FindByID -> ") of a
// wrapped error.
func clientMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, " -> "); i >= 0 {
		return msg[i+len(" -> "):]
	}
	return msg
}

func principal(ctx *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.Principal(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingPrincipal))
	}
	return p, ok
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%s must be a positive integer, got %q", name, raw)))
		return 0, false
	}

	return uint(id), true
}
