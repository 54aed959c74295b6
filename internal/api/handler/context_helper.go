package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "letnex-erp/backend/pkg/errors"
	"letnex-erp/backend/pkg/response"
)

// msgMissingFields 创建请求缺少必填字段时的统一提示
const msgMissingFields = "Missing required fields"

// bindJSON 绑定 JSON 请求体，失败时写入 400 响应。
// 调用方应在返回 false 时直接 return。
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if isBodyTooLarge(err) {
			respondBodyTooLarge(c)
			return false
		}
		response.BadRequest(c, msgMissingFields)
		return false
	}
	return true
}

// isBodyTooLarge 请求体超过 BodyLimit 设定的上限
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func respondBodyTooLarge(c *gin.Context) {
	response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
}

// bindQuery 绑定查询参数，失败时写入 400 响应。
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, msgMissingFields)
		return false
	}
	return true
}

// respondError 各模块 handleXxxError 未命中时按错误分类兜底
//
// failMsg 作为 500 响应的 message，底层错误写入 error 字段。
func respondError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrMissingFields):
		response.BadRequest(c, msgMissingFields)
	case errors.Is(err, apperrors.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, failMsg, err)
	}
}

// bearerToken 从 Authorization 头中取出 Bearer Token
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
