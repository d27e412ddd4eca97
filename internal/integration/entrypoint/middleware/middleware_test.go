package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korven/backend/internal/application/adapter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct {
	userID uuid.UUID
	err    error
}

func (s stubTokenService) GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.AccessToken, error) {
	return nil, errors.New("not used")
}

func (s stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &adapter.TokenClaims{UserID: s.userID}, nil
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		tokens     stubTokenService
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", stubTokenService{userID: userID}, http.StatusUnauthorized, "AUTH-030003"},
		{"wrong scheme", "Basic abc", stubTokenService{userID: userID}, http.StatusUnauthorized, "AUTH-030001"},
		{"empty token", "Bearer  ", stubTokenService{userID: userID}, http.StatusUnauthorized, "AUTH-030003"},
		{"expired", "Bearer abc", stubTokenService{err: fmt.Errorf("failed to parse token: %w", jwt.ErrTokenExpired)}, http.StatusUnauthorized, "AUTH-030002"},
		{"invalid", "Bearer abc", stubTokenService{err: errors.New("bad signature")}, http.StatusUnauthorized, "AUTH-030001"},
		{"valid", "Bearer abc", stubTokenService{userID: userID}, http.StatusOK, ""},
		{"lowercase scheme", "bearer abc", stubTokenService{userID: userID}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", NewAuthMiddleware(tt.tokens).Authenticate(), func(c *gin.Context) {
				id, ok := GetUserIDFromContext(c)
				require.True(t, ok)
				c.String(http.StatusOK, id.String())
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), tt.wantCode)
			} else {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/forgot", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, hit("/login"))
	assert.Equal(t, http.StatusNoContent, hit("/login"))
	assert.Equal(t, http.StatusTooManyRequests, hit("/login"))
	// Routes are limited independently.
	assert.Equal(t, http.StatusNoContent, hit("/forgot"))

	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusNoContent, hit("/login"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(0, time.Minute)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 10 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestRequestLogger_AssignsULID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestLogger_KeepsClientID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-id", w.Header().Get(RequestIDHeader))
}

func TestRegisterValidators_Decimal(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type body struct {
		Price decimal.Decimal `json:"price" binding:"gte=0"`
	}

	r := gin.New()
	r.POST("/products", func(c *gin.Context) {
		var b body
		if err := c.ShouldBindJSON(&b); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.String(http.StatusOK, b.Price.StringFixed(2))
	})

	post := func(payload string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	ok := post(`{"price":"12.5"}`)
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, "12.50", ok.Body.String())

	assert.Equal(t, http.StatusBadRequest, post(`{"price":"-1"}`).Code)
}

func TestRateLimiter_SweepsExpiredEntries(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(1, time.Minute)
	rl.now = func() time.Time { return now }

	for i := range sweepThreshold {
		rl.allow(fmt.Sprintf("10.0.0.%d /login", i))
	}
	assert.Len(t, rl.entries, sweepThreshold)

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.allow("10.1.0.1 /login"))
	assert.Len(t, rl.entries, 1)
}
