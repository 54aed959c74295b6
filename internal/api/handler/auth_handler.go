package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 管理员登录
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginResponse{Message: "Email and password are required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.LoginResponse{Message: "Invalid email or password"})
			return
		}
		response.InternalError(c, "Login failed", err)
		return
	}

	response.OK(c, result)
}

// Logout 吊销当前 Token
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c, "Missing bearer token")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}
		response.InternalError(c, "Logout failed", err)
		return
	}

	response.Message(c, "Logged out successfully")
}
