package service

import (
	"go.uber.org/zap"

	"letnex-erp/backend/config"
	"letnex-erp/backend/internal/repository"
	"letnex-erp/backend/pkg/jwt"
	"letnex-erp/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	Attendance  AttendanceService
	Staff       StaffService
	Employee    EmployeeService
	Salary      SalaryService
	Revenue     RevenueService
	Expenditure ExpenditureService
	Vacancy     VacancyService
	Project     ProjectService
	Export      ExportService
}

// NewService 创建 Service 聚合；rdb 为 nil 时登出不做吊销
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var blacklist TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	return &Service{
		Auth:        NewAuthService(&cfg.Auth, jwtMgr, blacklist, logger),
		Attendance:  NewAttendanceService(&cfg.Attendance, repo, logger),
		Staff:       NewStaffService(repo, logger),
		Employee:    NewEmployeeService(repo, logger),
		Salary:      NewSalaryService(repo, logger),
		Revenue:     NewRevenueService(repo, logger),
		Expenditure: NewExpenditureService(repo, logger),
		Vacancy:     NewVacancyService(repo, logger),
		Project:     NewProjectService(repo, logger),
		Export:      NewExportService(&cfg.Attendance, repo, logger),
	}
}
