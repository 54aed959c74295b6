package model

import "time"

// Vacancy 招聘岗位表 — 对应 vacancies
type Vacancy struct {
	VacancyID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vacancy_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Openings    int       `gorm:"not null"                                       json:"openings"`
	Description string    `gorm:"type:text;not null"                             json:"description"`
	DatePosted  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"date_posted"`
	BaseModel
}

// TableName 指定表名
func (Vacancy) TableName() string { return "vacancies" }
