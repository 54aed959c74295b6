package handler

import "letnex-erp/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	Attendance  *AttendanceHandler
	Staff       *StaffHandler
	Employee    *EmployeeHandler
	Salary      *SalaryHandler
	Revenue     *RevenueHandler
	Expenditure *ExpenditureHandler
	Vacancy     *VacancyHandler
	Project     *ProjectHandler
	Export      *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Attendance:  NewAttendanceHandler(svc.Attendance),
		Staff:       NewStaffHandler(svc.Staff),
		Employee:    NewEmployeeHandler(svc.Employee),
		Salary:      NewSalaryHandler(svc.Salary),
		Revenue:     NewRevenueHandler(svc.Revenue),
		Expenditure: NewExpenditureHandler(svc.Expenditure),
		Vacancy:     NewVacancyHandler(svc.Vacancy),
		Project:     NewProjectHandler(svc.Project),
		Export:      NewExportHandler(svc.Export),
	}
}
