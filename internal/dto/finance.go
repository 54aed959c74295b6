package dto

import "github.com/shopspring/decimal"

// ── 收入 ──

// CreateRevenueRequest 创建收入记录
type CreateRevenueRequest struct {
	Date         string           `json:"date"         binding:"required"`
	ProjectName  string           `json:"projectName"  binding:"required"`
	ClientName   string           `json:"clientName"   binding:"required"`
	Amount       *decimal.Decimal `json:"amount"       binding:"required"`
	EmployeeName string           `json:"employeeName" binding:"required"`
}

// UpdateRevenueRequest 更新收入记录
type UpdateRevenueRequest struct {
	Date         *string          `json:"date"`
	ProjectName  *string          `json:"projectName"`
	ClientName   *string          `json:"clientName"`
	Amount       *decimal.Decimal `json:"amount"`
	EmployeeName *string          `json:"employeeName"`
}

// RevenueResponse 收入记录
type RevenueResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	ProjectName  string          `json:"projectName"`
	ClientName   string          `json:"clientName"`
	Amount       decimal.Decimal `json:"amount"`
	EmployeeName string          `json:"employeeName"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

// ── 支出 ──

// CreateExpenditureRequest 创建支出记录
type CreateExpenditureRequest struct {
	Date        string           `json:"date"        binding:"required"`
	Name        string           `json:"name"        binding:"required"`
	Expenditure string           `json:"expenditure" binding:"required"`
	Amount      *decimal.Decimal `json:"amount"      binding:"required"`
}

// UpdateExpenditureRequest 更新支出记录
type UpdateExpenditureRequest struct {
	Date        *string          `json:"date"`
	Name        *string          `json:"name"`
	Expenditure *string          `json:"expenditure"`
	Amount      *decimal.Decimal `json:"amount"`
}

// ExpenditureResponse 支出记录
type ExpenditureResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Name        string          `json:"name"`
	Expenditure string          `json:"expenditure"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// ── 汇总 ──

// FinanceSummaryQuery 汇总参数：monthly（默认）或 yearly
type FinanceSummaryQuery struct {
	Period string `form:"period"`
}

// FinanceBucket 单个周期的合计
type FinanceBucket struct {
	Period string          `json:"period"` // "2024-03" 或 "2024"
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

// FinanceSummaryResponse 按周期汇总的金额
type FinanceSummaryResponse struct {
	Period  string          `json:"period"`
	Buckets []FinanceBucket `json:"buckets"`
	Total   decimal.Decimal `json:"total"`
}
