//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"tripmatch/internal/domain/identity"
	"tripmatch/internal/handler/httperr"
	"tripmatch/internal/handler/middleware"
	"tripmatch/internal/pkg/jwt"
	"tripmatch/tests/common/httptest"
	usecasemock "tripmatch/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)

	router := gin.New()
	router.GET("/me", middleware.NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": p.UserID()})
	})
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	principal, err := identity.NewPrincipal("A")
	assert.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("tok").Return(principal, nil)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "tok")

		var resp map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, "A", resp["uid"])
	})

	t.Run("cookie fallback", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("cookie-tok").Return(principal, nil)

		cookies := []*http.Cookie{{Name: middleware.AccessTokenCookie, Value: "cookie-tok"}}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil, cookies, "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("tok").Return(principal, nil)

		cookies := []*http.Cookie{{Name: middleware.AccessTokenCookie, Value: "cookie-tok"}}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil, cookies, "tok")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("old").Return(identity.Principal{}, jwt.ErrExpiredToken)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "old")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestGetPrincipal_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nil)

	_, ok := middleware.GetPrincipal(c)
	assert.False(t, ok)
}
