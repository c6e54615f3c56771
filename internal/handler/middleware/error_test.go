//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"servemart/internal/handler/httperr"
	"servemart/internal/handler/middleware"
	"servemart/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("AbortWithError writes the status and flat error body", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("pool exhausted"), "Internal server error", nil)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("unwritten responses with recorded errors fall back to the error meta", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/silent", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusBadGateway, Error: "Payment gateway unavailable"}
			_ = c.Error(&gin.Error{Err: errors.New("upstream timeout"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Payment gateway unavailable")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("nil map write")
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
