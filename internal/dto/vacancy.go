package dto

// ── 招聘模块 DTO ──

// CreateVacancyRequest 发布岗位
type CreateVacancyRequest struct {
	Title       string `json:"title"       binding:"required"`
	Openings    *int   `json:"openings"    binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateVacancyRequest 更新岗位
type UpdateVacancyRequest struct {
	Title       *string `json:"title"`
	Openings    *int    `json:"openings"`
	Description *string `json:"description"`
}

// VacancyResponse 岗位信息
type VacancyResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Openings    int    `json:"openings"`
	Description string `json:"description"`
	DatePosted  string `json:"datePosted"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
