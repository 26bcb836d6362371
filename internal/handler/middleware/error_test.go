//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"storeslot/internal/handler/middleware"
	"storeslot/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.ErrorHandler())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandlerCatchesUnwrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/silent", func(c *gin.Context) {})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
