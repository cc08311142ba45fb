package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/pkg/jwthelper"
)

const (
	testKey       = "test-signing-key"
	testUserAgent = "canteen-test/1.0"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(roles ...domain.Role) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{NewAuthenticator(testKey).VerifyJWT()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(ctx *gin.Context) {
		p, ok := Principal(ctx)
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.String(http.StatusOK, string(p.Role))
	})
	r.GET("/protected", handlers...)

	return r
}

func token(t *testing.T, role domain.Role, userAgent string, ttl time.Duration) string {
	t.Helper()
	tok, err := jwthelper.GenerateToken([]byte(testKey), domain.User{ID: uuid.New(), Role: role}, userAgent, ttl)
	require.NoError(t, err)
	return tok
}

func TestVerifyJWT(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		userAgent  string
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer " + token(t, domain.RoleStudent, testUserAgent, time.Hour),
			userAgent:  testUserAgent,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			userAgent:  testUserAgent,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			userAgent:  testUserAgent,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + token(t, domain.RoleStudent, testUserAgent, -time.Minute),
			userAgent:  testUserAgent,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "different user agent",
			header:     "Bearer " + token(t, domain.RoleStudent, testUserAgent, time.Hour),
			userAgent:  "curl/8.0",
			wantStatus: http.StatusUnauthorized,
		},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("User-Agent", tt.userAgent)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	router := newRouter(domain.RoleAdminStand, domain.RoleSuperadmin)

	for role, want := range map[domain.Role]int{
		domain.RoleAdminStand: http.StatusOK,
		domain.RoleSuperadmin: http.StatusOK,
		domain.RoleStudent:    http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("User-Agent", testUserAgent)
		req.Header.Set("Authorization", "Bearer "+token(t, role, testUserAgent, time.Hour))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Code, role)
		if want == http.StatusOK {
			assert.Equal(t, string(role), rec.Body.String())
		} else {
			assert.Contains(t, rec.Body.String(), `"statusCode":403`)
		}
	}
}
