package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应，success 字段沿用前端约定
type LoginResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Token     string    `json:"token,omitempty"`
	ExpiresIn int       `json:"expiresIn,omitempty"` // 秒
	User      *AuthUser `json:"user,omitempty"`
}

// AuthUser 登录用户信息
type AuthUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
