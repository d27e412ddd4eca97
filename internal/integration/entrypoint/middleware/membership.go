package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// MembershipKey is the context key for the caller's active membership.
const MembershipKey ContextKey = "membership"

// MembershipMiddleware rejects callers without an active membership in the
// :businessId of the route before any handler reads the request body.
type MembershipMiddleware struct {
	gate adapter.AccessGate
}

// NewMembershipMiddleware creates a new membership middleware instance.
func NewMembershipMiddleware(gate adapter.AccessGate) *MembershipMiddleware {
	return &MembershipMiddleware{
		gate: gate,
	}
}

// RequireMembership must run after Authenticate.
func (m *MembershipMiddleware) RequireMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		businessID, err := uuid.Parse(c.Param("businessId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid business ID format",
			})
			c.Abort()
			return
		}

		membership, err := m.gate.CheckActiveMembership(c.Request.Context(), userID, businessID)
		if err != nil {
			var businessErr *domainerror.BusinessError
			if errors.As(err, &businessErr) && businessErr.Kind() == domainerror.KindAccess {
				c.JSON(http.StatusForbidden, dto.ErrorResponse{
					Error: businessErr.Message,
					Code:  string(businessErr.Code),
				})
				c.Abort()
				return
			}

			slog.Error("Membership check failed",
				"request_id", GetRequestID(c),
				"business_id", businessID,
				"error", err,
			)
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "An internal error occurred",
			})
			c.Abort()
			return
		}

		c.Set(string(MembershipKey), membership)

		c.Next()
	}
}
