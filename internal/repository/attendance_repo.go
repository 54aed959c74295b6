package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"letnex-erp/backend/internal/model"
)

// AttendanceRepository 考勤数据访问接口
type AttendanceRepository interface {
	List(ctx context.Context) ([]model.Attendance, error)
	ListByDate(ctx context.Context, date string) ([]model.Attendance, error)
	// ListByPrefix 按日期字符串前缀查询，如 "2024-03" / "2024"
	ListByPrefix(ctx context.Context, prefix string) ([]model.Attendance, error)
	Find(ctx context.Context, date, employee string) (*model.Attendance, error)
	// Upsert 以 (date, employee) 为自然键写入，已存在时覆盖 status 与 reason
	Upsert(ctx context.Context, rec *model.Attendance) error
}

// attendanceRepo AttendanceRepository 的 GORM 实现
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) List(ctx context.Context) ([]model.Attendance, error) {
	var recs []model.Attendance
	err := r.db.WithContext(ctx).
		Order("date ASC, updated_at ASC").
		Find(&recs).Error
	return recs, err
}

func (r *attendanceRepo) ListByDate(ctx context.Context, date string) ([]model.Attendance, error) {
	var recs []model.Attendance
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("updated_at ASC").
		Find(&recs).Error
	return recs, err
}

func (r *attendanceRepo) ListByPrefix(ctx context.Context, prefix string) ([]model.Attendance, error) {
	var recs []model.Attendance
	err := r.db.WithContext(ctx).
		Where("date LIKE ?", prefix+"%").
		Order("date ASC, updated_at ASC").
		Find(&recs).Error
	return recs, err
}

func (r *attendanceRepo) Find(ctx context.Context, date, employee string) (*model.Attendance, error) {
	var rec model.Attendance
	err := r.db.WithContext(ctx).
		Where("date = ? AND employee = ?", date, employee).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepo) Upsert(ctx context.Context, rec *model.Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "employee"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     rec.Status,
				"reason":     rec.Reason,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(rec).Error
}
