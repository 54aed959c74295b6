package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// ListEmployees 获取员工列表
// GET /api/employee
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	list, err := h.employeeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch employees", err)
		return
	}

	response.OK(c, list)
}

// CreateEmployee 创建员工
// POST /api/employee
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	emp, err := h.employeeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err, "Failed to add employee")
		return
	}

	response.Created(c, emp)
}

// UpdateEmployee 以请求体中出现的字段覆盖员工文档
// PUT /api/employee/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil && isBodyTooLarge(err) {
		respondBodyTooLarge(c)
		return
	}
	if err != nil || len(body) == 0 {
		response.BadRequest(c, "Request body is required")
		return
	}

	emp, err := h.employeeSvc.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		h.handleEmployeeError(c, err, "Failed to update employee")
		return
	}

	response.OK(c, emp)
}

// DeleteEmployee 删除员工
// DELETE /api/employee/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.employeeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleEmployeeError(c, err, "Failed to delete employee")
		return
	}

	response.Message(c, "Employee deleted successfully")
}

// handleEmployeeError 统一处理员工模块业务错误
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found")
	case errors.Is(err, service.ErrEmployeeIDExists):
		response.Conflict(c, "Employee ID already exists")
	case errors.Is(err, service.ErrInvalidEmployeeBody):
		response.BadRequest(c, "Malformed employee document")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	default:
		respondError(c, err, failMsg)
	}
}
