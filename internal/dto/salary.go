package dto

import "github.com/shopspring/decimal"

// ── 工资模块 DTO ──

// CreateSalaryRequest 创建工资记录
type CreateSalaryRequest struct {
	EmployeeID string           `json:"employeeId" binding:"required"`
	Name       string           `json:"name"       binding:"required"`
	Salary     *decimal.Decimal `json:"salary"     binding:"required"`
	Date       string           `json:"date"       binding:"required"`
	Status     string           `json:"status"`
}

// UpdateSalaryRequest 更新工资记录（状态切换也走这里）
type UpdateSalaryRequest struct {
	EmployeeID *string          `json:"employeeId"`
	Name       *string          `json:"name"`
	Salary     *decimal.Decimal `json:"salary"`
	Date       *string          `json:"date"`
	Status     *string          `json:"status"`
}

// SalaryResponse 工资记录
type SalaryResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	Salary     decimal.Decimal `json:"salary"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
	UpdatedAt  string          `json:"updatedAt"`
}
