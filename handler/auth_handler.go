package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/dto"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/middleware"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/usecase"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

type AuthHandler struct {
	Auth   *usecase.AuthService
	Logger *zap.Logger
}

func NewAuthHandler(auth *usecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

// CreateAccount handles POST /create-account
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.BindingMessage(err))
		return
	}

	user, token, err := h.Auth.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"error":       false,
		"userInfo":    dto.ToUserResponse(user),
		"accessToken": token,
		"message":     "Registration Successful",
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.BindingMessage(err))
		return
	}

	user, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":       false,
		"user":        dto.ToUserResponse(user),
		"accessToken": token,
		"message":     "Login Successful",
	})
}

// GetUser handles GET /get-user
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	user, err := h.Auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.FailFromError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error": false,
		"user": gin.H{
			"_id":      user.UserID,
			"fullName": user.FullName,
			"email":    user.Email,
		},
		"message": "User fetched successfully",
	})
}
