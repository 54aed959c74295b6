package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Attendance  AttendanceRepository
	Staff       StaffRepository
	Employee    EmployeeRepository
	Salary      SalaryRepository
	Revenue     RevenueRepository
	Expenditure ExpenditureRepository
	Vacancy     VacancyRepository
	Project     ProjectRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Attendance:  NewAttendanceRepo(db),
		Staff:       NewStaffRepo(db),
		Employee:    NewEmployeeRepo(db),
		Salary:      NewSalaryRepo(db),
		Revenue:     NewRevenueRepo(db),
		Expenditure: NewExpenditureRepo(db),
		Vacancy:     NewVacancyRepo(db),
		Project:     NewProjectRepo(db),
	}
}
