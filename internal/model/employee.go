package model

import "time"

// Employee 员工档案表 — 对应 employees
type Employee struct {
	EmployeePK  string    `gorm:"column:employee_pk;type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_pk"`
	EmployeeID  string    `gorm:"type:varchar(50);not null;uniqueIndex"                             json:"employee_id"`
	Name        string    `gorm:"type:varchar(100);not null"                                        json:"name"`
	JoiningDate time.Time `gorm:"type:date;not null"                                                json:"joining_date"`
	WorkingDays int       `gorm:"not null"                                                          json:"working_days"`
	LeaveDays   int       `gorm:"not null"                                                          json:"leave_days"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
