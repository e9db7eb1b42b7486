package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/auth"
)

type UsersController struct {
	accounts AccountService
}

func NewUsersController(accounts AccountService) *UsersController {
	return &UsersController{accounts: accounts}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account.
// POST /register
func (uc *UsersController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := uc.accounts.Register(req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrUsernameInvalid),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrPasswordTooLong):
		respondError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	case errors.Is(err, auth.ErrUserExists):
		respondError(c, http.StatusConflict, "user_exists", err.Error())
		return
	default:
		respondInternalError(c, err, "register")
		return
	}

	respondCreated(c, gin.H{"id": user.ID, "username": user.Username})
}

// Login exchanges credentials for a bearer token. Logging in again
// invalidates the previous token.
// POST /login
func (uc *UsersController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	token, user, err := uc.accounts.Login(req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid_credentials", err.Error())
		return
	default:
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"user":       gin.H{"id": user.ID, "username": user.Username},
	})
}
