package model

import "strings"

// AttendanceStatus 考勤状态
//
// 模型、请求校验、汇总与导出共用这一个类型。
type AttendanceStatus string

const (
	StatusPresent  AttendanceStatus = "Present"
	StatusAbsent   AttendanceStatus = "Absent"
	StatusHalfDay  AttendanceStatus = "Half Day"
	StatusTraining AttendanceStatus = "Training"
	StatusHoliday  AttendanceStatus = "Holiday"
)

// AttendanceStatuses 按展示顺序列出全部状态
var AttendanceStatuses = []AttendanceStatus{
	StatusPresent,
	StatusAbsent,
	StatusHalfDay,
	StatusTraining,
	StatusHoliday,
}

// ParseAttendanceStatus 忽略首尾空白与大小写解析状态
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range AttendanceStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Valid 是否为已知状态（大小写敏感）
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusTraining, StatusHoliday:
		return true
	}
	return false
}

// RequiresReason 非出勤状态需要填写原因
func (s AttendanceStatus) RequiresReason() bool {
	return s != StatusPresent
}

// Attendance 考勤记录表 — 对应 attendance
// 自然键为 (date, employee)，写入采用 upsert
type Attendance struct {
	AttendanceID string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"            json:"attendance_id"`
	Date         string           `gorm:"type:varchar(10);not null;uniqueIndex:uq_attendance_date_employee"  json:"date"`
	Employee     string           `gorm:"type:varchar(100);not null;uniqueIndex:uq_attendance_date_employee" json:"employee"`
	Status       AttendanceStatus `gorm:"type:varchar(20);not null"                                  json:"status"`
	Reason       string           `gorm:"type:text;not null;default:''"                              json:"reason"`
	BaseModel
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendance" }
