package model

// Staff 考勤花名册 — 对应 staff
// 以姓名为身份；删除为软删除，历史考勤按姓名保留
type Staff struct {
	StaffID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"staff_id"`
	Name    string `gorm:"type:varchar(100);not null"                     json:"name"`
	SoftDeleteModel
}

// TableName 指定表名
func (Staff) TableName() string { return "staff" }
