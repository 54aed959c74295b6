package repository

import (
	"context"

	"gorm.io/gorm"

	"letnex-erp/backend/internal/model"
)

// SalaryRepository 工资数据访问接口
type SalaryRepository interface {
	Create(ctx context.Context, s *model.Salary) error
	GetByID(ctx context.Context, id string) (*model.Salary, error)
	// List 按发放日期倒序
	List(ctx context.Context) ([]model.Salary, error)
	Update(ctx context.Context, s *model.Salary) error
	Delete(ctx context.Context, id string) error
}

// salaryRepo SalaryRepository 的 GORM 实现
type salaryRepo struct {
	db *gorm.DB
}

// NewSalaryRepo 创建 SalaryRepository 实例
func NewSalaryRepo(db *gorm.DB) SalaryRepository {
	return &salaryRepo{db: db}
}

func (r *salaryRepo) Create(ctx context.Context, s *model.Salary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *salaryRepo) GetByID(ctx context.Context, id string) (*model.Salary, error) {
	var s model.Salary
	err := r.db.WithContext(ctx).
		Where("salary_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *salaryRepo) List(ctx context.Context) ([]model.Salary, error) {
	var list []model.Salary
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *salaryRepo) Update(ctx context.Context, s *model.Salary) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *salaryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("salary_id = ?", id).
		Delete(&model.Salary{}).Error
}
