package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue 收入记录表 — 对应 revenues
type Revenue struct {
	RevenueID    string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"revenue_id"`
	Date         time.Time       `gorm:"type:date;not null"                             json:"date"`
	ProjectName  string          `gorm:"type:varchar(200);not null"                     json:"project_name"`
	ClientName   string          `gorm:"type:varchar(200);not null"                     json:"client_name"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"amount"`
	EmployeeName string          `gorm:"type:varchar(100);not null"                     json:"employee_name"`
	BaseModel
}

// TableName 指定表名
func (Revenue) TableName() string { return "revenues" }

// Expenditure 支出记录表 — 对应 expenditures
// Expenditure 字段为支出类别
type Expenditure struct {
	ExpenditureID string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"expenditure_id"`
	Date          time.Time       `gorm:"type:date;not null"                             json:"date"`
	Name          string          `gorm:"type:varchar(200);not null"                     json:"name"`
	Expenditure   string          `gorm:"type:varchar(200);not null"                     json:"expenditure"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"amount"`
	BaseModel
}

// TableName 指定表名
func (Expenditure) TableName() string { return "expenditures" }
