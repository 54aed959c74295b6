package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/attendance"
	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAttendance 导出月/年考勤报表
// GET /api/attendance/export?scope=month&date=2024-03-15
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	var q dto.AttendanceExportQuery
	if !bindQuery(c, &q) {
		return
	}

	buf, filename, err := h.exportSvc.Attendance(c.Request.Context(), q.Scope, q.Date)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	sendXLSX(c, filename, buf.Bytes())
}

// ExportSalaries 导出工资记录
// GET /api/salary/export
func (h *ExportHandler) ExportSalaries(c *gin.Context) {
	buf, filename, err := h.exportSvc.Salaries(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	sendXLSX(c, filename, buf.Bytes())
}

func sendXLSX(c *gin.Context, filename string, data []byte) {
	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+filename+"; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, attendance.ErrEmptyReport):
		response.Notice(c, "No data found for this period.")
	case errors.Is(err, service.ErrExportNoSalaries):
		response.Notice(c, "No salary records to export.")
	case errors.Is(err, attendance.ErrInvalidScope):
		response.BadRequest(c, "Scope must be month or year")
	case errors.Is(err, attendance.ErrInvalidDate):
		response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	default:
		respondError(c, err, "Failed to generate spreadsheet")
	}
}
