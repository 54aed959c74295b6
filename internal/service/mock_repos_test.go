package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"letnex-erp/backend/internal/model"
	"letnex-erp/backend/internal/repository"
)

// ── 通用内存表 ──

// memTable 按插入顺序保存记录的内存表
type memTable[T any] struct {
	items map[string]*T
	order []string
	id    func(*T) *string
	stamp func(*T) *model.BaseModel
}

func newMemTable[T any](id func(*T) *string, stamp func(*T) *model.BaseModel) *memTable[T] {
	return &memTable[T]{items: make(map[string]*T), id: id, stamp: stamp}
}

func (m *memTable[T]) create(v *T) {
	if *m.id(v) == "" {
		*m.id(v) = uuid.NewString()
	}
	now := time.Now()
	m.stamp(v).CreatedAt = now
	m.stamp(v).UpdatedAt = now
	cp := *v
	m.items[*m.id(v)] = &cp
	m.order = append(m.order, *m.id(v))
}

func (m *memTable[T]) get(id string) (*T, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (m *memTable[T]) list() []T {
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		if v, ok := m.items[id]; ok {
			out = append(out, *v)
		}
	}
	return out
}

func (m *memTable[T]) update(v *T) {
	m.stamp(v).UpdatedAt = time.Now()
	cp := *v
	m.items[*m.id(v)] = &cp
}

func (m *memTable[T]) delete(id string) {
	delete(m.items, id)
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	rows        []model.Attendance
	upsertCalls int
	upsertErr   error
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) List(_ context.Context) ([]model.Attendance, error) {
	return append([]model.Attendance(nil), m.rows...), nil
}

func (m *mockAttendanceRepo) ListByDate(_ context.Context, date string) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, r := range m.rows {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) ListByPrefix(_ context.Context, prefix string) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, r := range m.rows {
		if strings.HasPrefix(r.Date, prefix) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) Find(_ context.Context, date, employee string) (*model.Attendance, error) {
	for i := range m.rows {
		if m.rows[i].Date == date && m.rows[i].Employee == employee {
			r := m.rows[i]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, rec *model.Attendance) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	now := time.Now()
	for i := range m.rows {
		if m.rows[i].Date == rec.Date && m.rows[i].Employee == rec.Employee {
			m.rows[i].Status = rec.Status
			m.rows[i].Reason = rec.Reason
			m.rows[i].UpdatedAt = now
			return nil
		}
	}
	r := *rec
	r.AttendanceID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now
	m.rows = append(m.rows, r)
	return nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	list    []model.Staff
	deleted []model.Staff
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{}
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.Staff) error {
	staff.StaffID = uuid.NewString()
	staff.CreatedAt = time.Now()
	m.list = append(m.list, *staff)
	return nil
}

func (m *mockStaffRepo) GetByName(_ context.Context, name string) (*model.Staff, error) {
	for i := range m.list {
		if strings.EqualFold(m.list[i].Name, name) {
			st := m.list[i]
			return &st, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context) ([]model.Staff, error) {
	return append([]model.Staff(nil), m.list...), nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id string) error {
	for i := range m.list {
		if m.list[i].StaffID == id {
			m.deleted = append(m.deleted, m.list[i])
			m.list = append(m.list[:i], m.list[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	*memTable[model.Employee]
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{newMemTable(
		func(e *model.Employee) *string { return &e.EmployeePK },
		func(e *model.Employee) *model.BaseModel { return &e.BaseModel },
	)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	for _, e := range m.items {
		if e.EmployeeID == emp.EmployeeID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.create(emp)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	return m.get(id)
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	return m.list(), nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	m.update(emp)
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	m.delete(id)
	return nil
}

// ── Mock SalaryRepository ──

type mockSalaryRepo struct {
	*memTable[model.Salary]
}

func newMockSalaryRepo() *mockSalaryRepo {
	return &mockSalaryRepo{newMemTable(
		func(s *model.Salary) *string { return &s.SalaryID },
		func(s *model.Salary) *model.BaseModel { return &s.BaseModel },
	)}
}

func (m *mockSalaryRepo) Create(_ context.Context, s *model.Salary) error {
	m.create(s)
	return nil
}

func (m *mockSalaryRepo) GetByID(_ context.Context, id string) (*model.Salary, error) {
	return m.get(id)
}

func (m *mockSalaryRepo) List(_ context.Context) ([]model.Salary, error) {
	return m.list(), nil
}

func (m *mockSalaryRepo) Update(_ context.Context, s *model.Salary) error {
	m.update(s)
	return nil
}

func (m *mockSalaryRepo) Delete(_ context.Context, id string) error {
	m.delete(id)
	return nil
}

// ── Mock RevenueRepository ──

type mockRevenueRepo struct {
	*memTable[model.Revenue]
}

func newMockRevenueRepo() *mockRevenueRepo {
	return &mockRevenueRepo{newMemTable(
		func(r *model.Revenue) *string { return &r.RevenueID },
		func(r *model.Revenue) *model.BaseModel { return &r.BaseModel },
	)}
}

func (m *mockRevenueRepo) Create(_ context.Context, r *model.Revenue) error {
	m.create(r)
	return nil
}

func (m *mockRevenueRepo) GetByID(_ context.Context, id string) (*model.Revenue, error) {
	return m.get(id)
}

func (m *mockRevenueRepo) List(_ context.Context) ([]model.Revenue, error) {
	return m.list(), nil
}

func (m *mockRevenueRepo) Update(_ context.Context, r *model.Revenue) error {
	m.update(r)
	return nil
}

func (m *mockRevenueRepo) Delete(_ context.Context, id string) error {
	m.delete(id)
	return nil
}

// ── Mock ExpenditureRepository ──

type mockExpenditureRepo struct {
	*memTable[model.Expenditure]
}

func newMockExpenditureRepo() *mockExpenditureRepo {
	return &mockExpenditureRepo{newMemTable(
		func(e *model.Expenditure) *string { return &e.ExpenditureID },
		func(e *model.Expenditure) *model.BaseModel { return &e.BaseModel },
	)}
}

func (m *mockExpenditureRepo) Create(_ context.Context, e *model.Expenditure) error {
	m.create(e)
	return nil
}

func (m *mockExpenditureRepo) GetByID(_ context.Context, id string) (*model.Expenditure, error) {
	return m.get(id)
}

func (m *mockExpenditureRepo) List(_ context.Context) ([]model.Expenditure, error) {
	return m.list(), nil
}

func (m *mockExpenditureRepo) Update(_ context.Context, e *model.Expenditure) error {
	m.update(e)
	return nil
}

func (m *mockExpenditureRepo) Delete(_ context.Context, id string) error {
	m.delete(id)
	return nil
}

// ── Mock VacancyRepository ──

type mockVacancyRepo struct {
	*memTable[model.Vacancy]
}

func newMockVacancyRepo() *mockVacancyRepo {
	return &mockVacancyRepo{newMemTable(
		func(v *model.Vacancy) *string { return &v.VacancyID },
		func(v *model.Vacancy) *model.BaseModel { return &v.BaseModel },
	)}
}

func (m *mockVacancyRepo) Create(_ context.Context, v *model.Vacancy) error {
	m.create(v)
	return nil
}

func (m *mockVacancyRepo) GetByID(_ context.Context, id string) (*model.Vacancy, error) {
	return m.get(id)
}

func (m *mockVacancyRepo) List(_ context.Context) ([]model.Vacancy, error) {
	return m.list(), nil
}

func (m *mockVacancyRepo) Update(_ context.Context, v *model.Vacancy) error {
	m.update(v)
	return nil
}

func (m *mockVacancyRepo) Delete(_ context.Context, id string) error {
	m.delete(id)
	return nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	*memTable[model.Project]
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{newMemTable(
		func(p *model.Project) *string { return &p.ProjectID },
		func(p *model.Project) *model.BaseModel { return &p.BaseModel },
	)}
}

func (m *mockProjectRepo) Create(_ context.Context, p *model.Project) error {
	m.create(p)
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id string) (*model.Project, error) {
	return m.get(id)
}

func (m *mockProjectRepo) List(_ context.Context) ([]model.Project, error) {
	return m.list(), nil
}

func (m *mockProjectRepo) Update(_ context.Context, p *model.Project) error {
	m.update(p)
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id string) error {
	m.delete(id)
	return nil
}

// ── 聚合 ──

type mockRepos struct {
	attendance  *mockAttendanceRepo
	staff       *mockStaffRepo
	employee    *mockEmployeeRepo
	salary      *mockSalaryRepo
	revenue     *mockRevenueRepo
	expenditure *mockExpenditureRepo
	vacancy     *mockVacancyRepo
	project     *mockProjectRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		attendance:  newMockAttendanceRepo(),
		staff:       newMockStaffRepo(),
		employee:    newMockEmployeeRepo(),
		salary:      newMockSalaryRepo(),
		revenue:     newMockRevenueRepo(),
		expenditure: newMockExpenditureRepo(),
		vacancy:     newMockVacancyRepo(),
		project:     newMockProjectRepo(),
	}
	repo := &repository.Repository{
		Attendance:  m.attendance,
		Staff:       m.staff,
		Employee:    m.employee,
		Salary:      m.salary,
		Revenue:     m.revenue,
		Expenditure: m.expenditure,
		Vacancy:     m.vacancy,
		Project:     m.project,
	}
	return repo, m
}
