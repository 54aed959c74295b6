package model

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectCompleted    ProjectStatus = "Completed"
	ProjectPending      ProjectStatus = "Pending"
	ProjectTimeOutDated ProjectStatus = "Time-Out-Dated"
	ProjectProcessing   ProjectStatus = "Processing"
	ProjectOnGoing      ProjectStatus = "On Going"
)

// Valid 是否为已知状态
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectCompleted, ProjectPending, ProjectTimeOutDated, ProjectProcessing, ProjectOnGoing:
		return true
	}
	return false
}

// Project 项目表 — 对应 projects
// 起止日期按前端原样保存为 YYYY-MM-DD 字符串
type Project struct {
	ProjectID string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"project_id"`
	Name      string        `gorm:"type:varchar(200);not null"                     json:"name"`
	Team      string        `gorm:"type:varchar(200);not null"                     json:"team"`
	StartDate string        `gorm:"type:varchar(10);not null"                      json:"start_date"`
	EndDate   string        `gorm:"type:varchar(10);not null"                      json:"end_date"`
	Status    ProjectStatus `gorm:"type:varchar(20);not null;default:'On Going'"   json:"status"`
	BaseModel
}

// TableName 指定表名
func (Project) TableName() string { return "projects" }
