//go:build e2e

package authtest

import (
	"net/http"
	"testing"

	"product-reviews/internal/handler/dto/response"
	"product-reviews/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginSeller authenticates through the real login endpoint and returns
// the bearer token.
func LoginSeller(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := map[string]string{"email": email, "password": password}
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var res response.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}
