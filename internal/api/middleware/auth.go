package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/canteen-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/canteen-api/internal/authz"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/pkg/jwthelper"
)

const principalKey = "principal"

var (
	errMissingToken      = errors.New("authorization header must be Bearer <token>")
	errUserAgentMismatch = errors.New("token was issued to a different user agent")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid access token and stores the
// caller's principal in the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		if claims.UserAgent != ctx.Request.UserAgent() {
			response.RenderErr(ctx, response.ErrUnauthorized(errUserAgentMismatch))
			return
		}

		ctx.Set(principalKey, claims.Principal())
		ctx.Next()
	}
}

// RequireRoles lets the request through only for the listed roles. It must run
// after VerifyJWT.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		p, ok := Principal(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		if err := authz.Authorize(p, authz.Roles(roles...)); err != nil {
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		}

		ctx.Next()
	}
}

func Principal(ctx *gin.Context) (domain.Principal, bool) {
	v, ok := ctx.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)

	return p, ok
}
