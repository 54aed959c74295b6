package dto

// ── 项目模块 DTO ──

// CreateProjectRequest 创建项目，status 缺省为 On Going
type CreateProjectRequest struct {
	Name      string `json:"name"      binding:"required"`
	Team      string `json:"team"      binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"   binding:"required"`
	Status    string `json:"status"`
}

// UpdateProjectRequest 更新项目
type UpdateProjectRequest struct {
	Name      *string `json:"name"`
	Team      *string `json:"team"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Status    *string `json:"status"`
}

// ProjectResponse 项目信息
type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
