package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	EmployeeID  string `json:"employeeId"  binding:"required"`
	Name        string `json:"name"        binding:"required"`
	JoiningDate string `json:"joiningDate" binding:"required"`
	WorkingDays *int   `json:"workingDays" binding:"required"`
	LeaveDays   *int   `json:"leaveDays"   binding:"required"`
}

// EmployeeDocument 员工可编辑字段
//
// 更新时请求体原样合并到该结构上，请求中出现的字段覆盖原值。
type EmployeeDocument struct {
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	JoiningDate string `json:"joiningDate"`
	WorkingDays int    `json:"workingDays"`
	LeaveDays   int    `json:"leaveDays"`
}

// EmployeeResponse 员工信息
type EmployeeResponse struct {
	ID string `json:"id"`
	EmployeeDocument
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
