package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/attendance"
	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// ListAttendance 获取全部考勤记录
// GET /api/attendance
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	list, err := h.attendanceSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Error fetching attendance", err)
		return
	}

	response.OK(c, list)
}

// MarkAttendance 标记某员工某日的考勤，已有记录则覆盖
// POST /api/attendance
// POST /api/attendance/save
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	result, created, err := h.attendanceSvc.Mark(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err, "Error saving attendance")
		return
	}

	if created {
		response.Created(c, result)
		return
	}
	response.OK(c, result)
}

// GetDay 单日视图：花名册每人一行 + 汇总
// GET /api/attendance/day?date=2024-03-15
func (h *AttendanceHandler) GetDay(c *gin.Context) {
	var q dto.AttendanceDateQuery
	if !bindQuery(c, &q) {
		return
	}

	day, err := h.attendanceSvc.Day(c.Request.Context(), q.Date)
	if err != nil {
		h.handleAttendanceError(c, err, "Error fetching attendance")
		return
	}

	response.OK(c, day)
}

// GetSummary 单日五项计数
// GET /api/attendance/summary?date=2024-03-15
func (h *AttendanceHandler) GetSummary(c *gin.Context) {
	var q dto.AttendanceDateQuery
	if !bindQuery(c, &q) {
		return
	}

	sum, err := h.attendanceSvc.Summary(c.Request.Context(), q.Date)
	if err != nil {
		h.handleAttendanceError(c, err, "Error fetching attendance")
		return
	}

	response.OK(c, sum)
}

// Print 可打印的单日考勤 HTML
// GET /api/attendance/print?date=2024-03-15
func (h *AttendanceHandler) Print(c *gin.Context) {
	var q dto.AttendanceDateQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.attendanceSvc.Print(c.Request.Context(), q.Date)
	if err != nil {
		h.handleAttendanceError(c, err, "Error rendering attendance")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// handleAttendanceError 统一处理考勤模块业务错误
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, attendance.ErrFutureDate):
		response.BadRequest(c, "Cannot mark attendance for a future date")
	case errors.Is(err, attendance.ErrReasonRequired):
		response.BadRequest(c, "Reason is required for this status")
	case errors.Is(err, attendance.ErrInvalidStatus):
		response.BadRequest(c, "Invalid attendance status")
	case errors.Is(err, attendance.ErrInvalidDate):
		response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	default:
		respondError(c, err, failMsg)
	}
}
