package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/usecase/user"
	"github.com/korven/backend/internal/integration/entrypoint/dto"
)

// UserController handles account profile endpoints.
type UserController struct {
	getUseCase            *user.GetUserUseCase
	updateProfileUseCase  *user.UpdateProfileUseCase
	changePasswordUseCase *user.ChangePasswordUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getUseCase *user.GetUserUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	changePasswordUseCase *user.ChangePasswordUseCase,
) *UserController {
	return &UserController{
		getUseCase:            getUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	c.respondProfile(ctx, userID, userID)
}

// Get handles GET /users/:userId requests.
func (c *UserController) Get(ctx *gin.Context) {
	requesterID, ok := requireUser(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return
	}
	c.respondProfile(ctx, requesterID, userID)
}

func (c *UserController) respondProfile(ctx *gin.Context, requesterID, userID uuid.UUID) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{
		RequesterID: requesterID,
		UserID:      userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserProfileResponse(output.User, output.Memberships))
}

// UpdateProfile handles PUT /users/:userId/profile requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	requesterID, ok := requireUser(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), user.UpdateProfileInput{
		RequesterID: requesterID,
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "Profile updated"
	if output.EmailChanged {
		message = "Profile updated, sign in again with your new email"
	}
	ctx.JSON(http.StatusOK, dto.UpdateProfileResponse{
		Message:      message,
		EmailChanged: output.EmailChanged,
		User:         dto.ToUserProfileResponse(output.User, nil),
	})
}

// ChangePassword handles PUT /users/:userId/password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	requesterID, ok := requireUser(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	err := c.changePasswordUseCase.Execute(ctx.Request.Context(), user.ChangePasswordInput{
		RequesterID:     requesterID,
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated"})
}
