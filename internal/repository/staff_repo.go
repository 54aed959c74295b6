package repository

import (
	"context"

	"gorm.io/gorm"

	"letnex-erp/backend/internal/model"
)

// StaffRepository 考勤花名册数据访问接口
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	// GetByName 按姓名查询在册成员（忽略大小写）
	GetByName(ctx context.Context, name string) (*model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)
	// Delete 软删除，考勤记录不受影响
	Delete(ctx context.Context, id string) error
}

// staffRepo StaffRepository 的 GORM 实现
type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo 创建 StaffRepository 实例
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) GetByName(ctx context.Context, name string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) List(ctx context.Context) ([]model.Staff, error) {
	var list []model.Staff
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		Delete(&model.Staff{}).Error
}
