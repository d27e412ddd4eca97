package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
	"github.com/korven/backend/internal/integration/entrypoint/middleware"
)

// statusByKind maps domain error kinds to HTTP status codes.
var statusByKind = map[domainerror.ErrorKind]int{
	domainerror.KindValidation: http.StatusBadRequest,
	domainerror.KindNotFound:   http.StatusNotFound,
	domainerror.KindConflict:   http.StatusConflict,
	domainerror.KindState:      http.StatusUnprocessableEntity,
	domainerror.KindAccess:     http.StatusForbidden,
}

// respondError writes the HTTP response for a use case error.
// Errors without a domain code are logged and reported as 500.
func respondError(ctx *gin.Context, err error) {
	if code, message, ok := codedError(err); ok {
		if status, known := statusByKind[domainerror.KindOf(err)]; known {
			ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
			return
		}
	}

	if errors.Is(err, adapter.ErrLockNotObtained) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "The business is busy, please retry",
		})
		return
	}

	slog.Error("Request failed",
		"request_id", middleware.GetRequestID(ctx),
		"path", ctx.FullPath(),
		"error", err,
	)
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// codedError extracts the code and message of the first coded domain error.
func codedError(err error) (string, string, bool) {
	var (
		goalErr     *domainerror.GoalError
		businessErr *domainerror.BusinessError
		categoryErr *domainerror.CategoryError
		productErr  *domainerror.ProductError
		saleErr     *domainerror.SaleError
		userErr     *domainerror.UserError
	)
	switch {
	case errors.As(err, &goalErr):
		return string(goalErr.Code), goalErr.Message, true
	case errors.As(err, &businessErr):
		return string(businessErr.Code), businessErr.Message, true
	case errors.As(err, &categoryErr):
		return string(categoryErr.Code), categoryErr.Message, true
	case errors.As(err, &productErr):
		return string(productErr.Code), productErr.Message, true
	case errors.As(err, &saleErr):
		return string(saleErr.Code), saleErr.Message, true
	case errors.As(err, &userErr):
		return string(userErr.Code), userErr.Message, true
	}
	return "", "", false
}

// requireUser returns the authenticated user or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// pathID parses a UUID path parameter or writes a 400.
func pathID(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// businessScope resolves the caller and the :businessId path parameter.
func businessScope(ctx *gin.Context) (userID, businessID uuid.UUID, ok bool) {
	if userID, ok = requireUser(ctx); !ok {
		return
	}
	businessID, ok = pathID(ctx, "businessId", "business")
	return
}

func invalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Details: err.Error(),
	})
}
