package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStatus 工资发放状态
type SalaryStatus string

const (
	SalaryCredited SalaryStatus = "Credited"
	SalaryPending  SalaryStatus = "Pending"
)

// Valid 是否为已知状态
func (s SalaryStatus) Valid() bool {
	return s == SalaryCredited || s == SalaryPending
}

// Salary 工资记录表 — 对应 salaries
// EmployeeID 为员工编号的值引用，不做外键校验
type Salary struct {
	SalaryID   string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"salary_id"`
	EmployeeID string          `gorm:"type:varchar(50);not null"                      json:"employee_id"`
	Name       string          `gorm:"type:varchar(100);not null"                     json:"name"`
	Salary     decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"salary"`
	Date       time.Time       `gorm:"type:date;not null"                             json:"date"`
	Status     SalaryStatus    `gorm:"type:varchar(20);not null;default:'Pending'"    json:"status"`
	BaseModel
}

// TableName 指定表名
func (Salary) TableName() string { return "salaries" }
