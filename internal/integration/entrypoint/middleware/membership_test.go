package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

type stubGate struct {
	memberID uuid.UUID
	inactive bool
	err      error
}

func (g stubGate) CheckActiveMembership(ctx context.Context, userID, businessID uuid.UUID) (*entity.Membership, error) {
	if g.err != nil {
		return nil, g.err
	}
	if userID != g.memberID {
		return nil, domainerror.NewBusinessError(domainerror.ErrCodeNoBusinessAccess, "you do not have access to this business", domainerror.ErrNoBusinessAccess)
	}
	if g.inactive {
		return nil, domainerror.NewBusinessError(domainerror.ErrCodeInactiveMembership, "your membership in this business is inactive", domainerror.ErrInactiveMembership)
	}
	return entity.NewMembership(businessID, userID, entity.MembershipRoleEmployee), nil
}

func TestRequireMembership(t *testing.T) {
	member := uuid.New()
	stranger := uuid.New()
	businessID := uuid.New().String()

	tests := []struct {
		name        string
		caller      uuid.UUID
		businessID  string
		gate        stubGate
		wantStatus  int
		wantCode    string
		wantHandled bool
	}{
		{"active member", member, businessID, stubGate{memberID: member}, http.StatusCreated, "", true},
		{"stranger with empty body", stranger, businessID, stubGate{memberID: member}, http.StatusForbidden, "BIZ-050001", false},
		{"inactive member", member, businessID, stubGate{memberID: member, inactive: true}, http.StatusForbidden, "BIZ-050002", false},
		{"malformed business id", member, "not-a-uuid", stubGate{memberID: member}, http.StatusBadRequest, "", false},
		{"repository failure", member, businessID, stubGate{err: errors.New("connection reset")}, http.StatusInternalServerError, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handled := false

			r := gin.New()
			r.POST("/businesses/:businessId/goals",
				func(c *gin.Context) { c.Set(string(UserIDKey), tt.caller) },
				NewMembershipMiddleware(tt.gate).RequireMembership(),
				func(c *gin.Context) {
					handled = true
					var body struct {
						Name string `json:"name" binding:"required"`
					}
					if err := c.ShouldBindJSON(&body); err != nil {
						c.Status(http.StatusBadRequest)
						return
					}
					c.Status(http.StatusCreated)
				},
			)

			payload := `{}`
			if tt.wantHandled {
				payload = `{"name":"Q1"}`
			}
			req := httptest.NewRequest(http.MethodPost, "/businesses/"+tt.businessID+"/goals", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHandled, handled)
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRequireMembership_StoresMembership(t *testing.T) {
	member := uuid.New()

	r := gin.New()
	r.GET("/businesses/:businessId/detail",
		func(c *gin.Context) { c.Set(string(UserIDKey), member) },
		NewMembershipMiddleware(stubGate{memberID: member}).RequireMembership(),
		func(c *gin.Context) {
			m, ok := c.Get(string(MembershipKey))
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.String(http.StatusOK, m.(*entity.Membership).UserID.String())
		},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/businesses/"+uuid.NewString()+"/detail", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, member.String(), w.Body.String())
}
