package repository

import (
	"context"

	"gorm.io/gorm"

	"letnex-erp/backend/internal/model"
)

// ── 收入 ──

// RevenueRepository 收入数据访问接口
type RevenueRepository interface {
	Create(ctx context.Context, rev *model.Revenue) error
	GetByID(ctx context.Context, id string) (*model.Revenue, error)
	// List 按日期倒序
	List(ctx context.Context) ([]model.Revenue, error)
	Update(ctx context.Context, rev *model.Revenue) error
	Delete(ctx context.Context, id string) error
}

type revenueRepo struct {
	db *gorm.DB
}

// NewRevenueRepo 创建 RevenueRepository 实例
func NewRevenueRepo(db *gorm.DB) RevenueRepository {
	return &revenueRepo{db: db}
}

func (r *revenueRepo) Create(ctx context.Context, rev *model.Revenue) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *revenueRepo) GetByID(ctx context.Context, id string) (*model.Revenue, error) {
	var rev model.Revenue
	err := r.db.WithContext(ctx).
		Where("revenue_id = ?", id).
		First(&rev).Error
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *revenueRepo) List(ctx context.Context) ([]model.Revenue, error) {
	var list []model.Revenue
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *revenueRepo) Update(ctx context.Context, rev *model.Revenue) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

func (r *revenueRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("revenue_id = ?", id).
		Delete(&model.Revenue{}).Error
}

// ── 支出 ──

// ExpenditureRepository 支出数据访问接口
type ExpenditureRepository interface {
	Create(ctx context.Context, exp *model.Expenditure) error
	GetByID(ctx context.Context, id string) (*model.Expenditure, error)
	// List 按日期倒序
	List(ctx context.Context) ([]model.Expenditure, error)
	Update(ctx context.Context, exp *model.Expenditure) error
	Delete(ctx context.Context, id string) error
}

type expenditureRepo struct {
	db *gorm.DB
}

// NewExpenditureRepo 创建 ExpenditureRepository 实例
func NewExpenditureRepo(db *gorm.DB) ExpenditureRepository {
	return &expenditureRepo{db: db}
}

func (r *expenditureRepo) Create(ctx context.Context, exp *model.Expenditure) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

func (r *expenditureRepo) GetByID(ctx context.Context, id string) (*model.Expenditure, error) {
	var exp model.Expenditure
	err := r.db.WithContext(ctx).
		Where("expenditure_id = ?", id).
		First(&exp).Error
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *expenditureRepo) List(ctx context.Context) ([]model.Expenditure, error) {
	var list []model.Expenditure
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *expenditureRepo) Update(ctx context.Context, exp *model.Expenditure) error {
	return r.db.WithContext(ctx).Save(exp).Error
}

func (r *expenditureRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("expenditure_id = ?", id).
		Delete(&model.Expenditure{}).Error
}
