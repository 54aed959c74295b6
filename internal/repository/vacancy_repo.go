package repository

import (
	"context"

	"gorm.io/gorm"

	"letnex-erp/backend/internal/model"
)

// VacancyRepository 招聘岗位数据访问接口
type VacancyRepository interface {
	Create(ctx context.Context, v *model.Vacancy) error
	GetByID(ctx context.Context, id string) (*model.Vacancy, error)
	// List 按发布时间倒序
	List(ctx context.Context) ([]model.Vacancy, error)
	Update(ctx context.Context, v *model.Vacancy) error
	Delete(ctx context.Context, id string) error
}

// vacancyRepo VacancyRepository 的 GORM 实现
type vacancyRepo struct {
	db *gorm.DB
}

// NewVacancyRepo 创建 VacancyRepository 实例
func NewVacancyRepo(db *gorm.DB) VacancyRepository {
	return &vacancyRepo{db: db}
}

func (r *vacancyRepo) Create(ctx context.Context, v *model.Vacancy) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vacancyRepo) GetByID(ctx context.Context, id string) (*model.Vacancy, error) {
	var v model.Vacancy
	err := r.db.WithContext(ctx).
		Where("vacancy_id = ?", id).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vacancyRepo) List(ctx context.Context) ([]model.Vacancy, error) {
	var list []model.Vacancy
	err := r.db.WithContext(ctx).
		Order("date_posted DESC").
		Find(&list).Error
	return list, err
}

func (r *vacancyRepo) Update(ctx context.Context, v *model.Vacancy) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vacancyRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("vacancy_id = ?", id).
		Delete(&model.Vacancy{}).Error
}
