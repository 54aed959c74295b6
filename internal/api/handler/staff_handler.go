package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// StaffHandler 考勤花名册 HTTP 处理器
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler 创建 StaffHandler
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// ListStaff 花名册
// GET /api/attendance/staffs
func (h *StaffHandler) ListStaff(c *gin.Context) {
	list, err := h.staffSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Error fetching staff", err)
		return
	}

	response.OK(c, list)
}

// CreateStaff 添加花名册成员
// POST /api/attendance/staffs
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.staffSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStaffError(c, err, "Error adding staff member")
		return
	}

	response.Created(c, staff)
}

// DeleteStaff 移出花名册，历史考勤保留
// DELETE /api/attendance/staffs/:name
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	name := c.Param("name")

	if err := h.staffSvc.Delete(c.Request.Context(), name); err != nil {
		h.handleStaffError(c, err, "Error deleting staff member")
		return
	}

	response.Message(c, "Staff member deleted successfully")
}

// handleStaffError 统一处理花名册业务错误
func (h *StaffHandler) handleStaffError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrStaffExists):
		response.Conflict(c, "Staff member already exists")
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, "Staff member not found")
	case errors.Is(err, service.ErrStaffNameRequired):
		response.BadRequest(c, msgMissingFields)
	default:
		respondError(c, err, failMsg)
	}
}
