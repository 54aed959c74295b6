package dto

import "letnex-erp/backend/internal/attendance"

// ── 考勤模块 DTO ──

// MarkAttendanceRequest 标记考勤请求（按 date + employee upsert）
type MarkAttendanceRequest struct {
	Date     string `json:"date"     binding:"required"`
	Employee string `json:"employee" binding:"required"`
	Status   string `json:"status"   binding:"required"`
	Reason   string `json:"reason"`
}

// AttendanceDateQuery 单日查询参数，缺省为今天
type AttendanceDateQuery struct {
	Date string `form:"date"`
}

// AttendanceExportQuery 导出参数
type AttendanceExportQuery struct {
	Scope string `form:"scope" binding:"required"`
	Date  string `form:"date"`
}

// AttendanceResponse 考勤记录
type AttendanceResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Employee  string `json:"employee"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SaveAttendanceResponse upsert 结果
type SaveAttendanceResponse struct {
	Message string             `json:"message"`
	Data    AttendanceResponse `json:"data"`
}

// AttendanceDayResponse 单日视图：花名册每人一行 + 五项计数
type AttendanceDayResponse struct {
	Date    string              `json:"date"`
	Rows    []attendance.DayRow `json:"rows"`
	Summary attendance.Summary  `json:"summary"`
}

// AttendanceSummaryResponse 单日五项计数
type AttendanceSummaryResponse struct {
	Date string `json:"date"`
	attendance.Summary
	Total int `json:"total"`
}

// ── 花名册 ──

// CreateStaffRequest 添加花名册成员
type CreateStaffRequest struct {
	Name string `json:"name" binding:"required"`
}

// StaffResponse 花名册成员
type StaffResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}
