package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/bjtmarts/transfer_tracker_app/internal/core/ports/services"
	"github.com/bjtmarts/transfer_tracker_app/internal/dto"
	"github.com/bjtmarts/transfer_tracker_app/internal/handlers"
	"github.com/bjtmarts/transfer_tracker_app/internal/platform/config"
	"github.com/bjtmarts/transfer_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmptyServiceContainer builds a container of fresh mocks for tests that
// never reach the service layer.
func newEmptyServiceContainer() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Tracker:  new(MockTrackerService),
		Settings: new(MockSettingsService),
		Sync:     new(MockSyncService),
	}
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	return newAuthTestRouterWithUsers(t, []string{"jo@bobjane.com.au", "sam@bobjane.com.au"})
}

func newAuthTestRouterWithUsers(t *testing.T, allowedUsers []string) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := utils.HashPassword("the-shared-password")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "tta-test",
		AppPasswordHash:   hash,
		AllowedUsers:      allowedUsers,
		IsProduction:      true,
	}

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, newEmptyServiceContainer())
	return r, cfg
}

func postLogin(r *gin.Engine, body dto.LoginRequest) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r, cfg := newAuthTestRouter(t)

	w := postLogin(r, dto.LoginRequest{Email: "jo@bobjane.com.au", Password: "the-shared-password"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The token subject must carry the acting user's email for audit stamping.
	claims, err := utils.ParseAndValidateJWT(resp.Token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "jo@bobjane.com.au", claims.Subject)
	assert.Equal(t, "tta-test", claims.Issuer)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postLogin(r, dto.LoginRequest{Email: "jo@bobjane.com.au", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_NotAllowListed(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postLogin(r, dto.LoginRequest{Email: "stranger@example.com", Password: "the-shared-password"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_AllowListIsCaseInsensitive(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postLogin(r, dto.LoginRequest{Email: "Jo@BobJane.com.au", Password: "the-shared-password"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_EmptyAllowListAdmitsAnyEmail(t *testing.T) {
	// The allow-list is optional: a deployment that configures only the
	// shared password admits any email bearing it.
	r, _ := newAuthTestRouterWithUsers(t, nil)

	w := postLogin(r, dto.LoginRequest{Email: "anyone@bobjane.com.au", Password: "the-shared-password"})
	assert.Equal(t, http.StatusOK, w.Code)

	// The password still gates.
	w = postLogin(r, dto.LoginRequest{Email: "anyone@bobjane.com.au", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	r, _ := newAuthTestRouterWithUsers(t, nil)

	// 5 attempts per minute per client IP; the sixth is rejected before the
	// credentials are even checked.
	for i := 0; i < 5; i++ {
		w := postLogin(r, dto.LoginRequest{Email: "jo@bobjane.com.au", Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := postLogin(r, dto.LoginRequest{Email: "jo@bobjane.com.au", Password: "the-shared-password"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLogin_InvalidBody(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
