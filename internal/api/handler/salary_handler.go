package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// SalaryHandler 工资模块 HTTP 处理器
type SalaryHandler struct {
	salarySvc service.SalaryService
}

// NewSalaryHandler 创建 SalaryHandler
func NewSalaryHandler(salarySvc service.SalaryService) *SalaryHandler {
	return &SalaryHandler{salarySvc: salarySvc}
}

// ListSalaries 获取工资记录，按日期倒序
// GET /api/salary
func (h *SalaryHandler) ListSalaries(c *gin.Context) {
	list, err := h.salarySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch salary records", err)
		return
	}

	response.OK(c, list)
}

// CreateSalary 创建工资记录
// POST /api/salary
func (h *SalaryHandler) CreateSalary(c *gin.Context) {
	var req dto.CreateSalaryRequest
	if !bindJSON(c, &req) {
		return
	}

	sal, err := h.salarySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSalaryError(c, err, "Failed to add salary record")
		return
	}

	response.Created(c, sal)
}

// UpdateSalary 更新工资记录，发放状态切换也走这里
// PUT /api/salary/:id
func (h *SalaryHandler) UpdateSalary(c *gin.Context) {
	var req dto.UpdateSalaryRequest
	if !bindJSON(c, &req) {
		return
	}

	sal, err := h.salarySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleSalaryError(c, err, "Failed to update salary record")
		return
	}

	response.OK(c, sal)
}

// DeleteSalary 删除工资记录
// DELETE /api/salary/:id
func (h *SalaryHandler) DeleteSalary(c *gin.Context) {
	if err := h.salarySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleSalaryError(c, err, "Failed to delete salary record")
		return
	}

	response.Message(c, "Salary record deleted successfully")
}

// handleSalaryError 统一处理工资模块业务错误
func (h *SalaryHandler) handleSalaryError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrSalaryNotFound):
		response.NotFound(c, "Salary record not found")
	case errors.Is(err, service.ErrInvalidSalaryStatus):
		response.BadRequest(c, "Status must be Credited or Pending")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	default:
		respondError(c, err, failMsg)
	}
}
