package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"letnex-erp/backend/internal/model"
	"letnex-erp/backend/internal/repository"
	apperrors "letnex-erp/backend/pkg/errors"
)

// ErrInvalidDate 日期无法解析
var ErrInvalidDate = fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrInvalidInput)

// dateLayouts 可接受的日期输入格式；前端 <input type="date"> 提交 YYYY-MM-DD
var dateLayouts = []string{model.DateLayout, time.RFC3339}

// parseDate 解析日期，只保留年月日
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// formatDate 输出 YYYY-MM-DD
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}

// validID 主键均为 UUID，非法格式直接按不存在处理，避免数据库类型错误
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isNotFound 仓储层记录不存在
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate 唯一约束冲突
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// loadRoster 返回在册成员姓名（按加入顺序）
func loadRoster(ctx context.Context, repo *repository.Repository) ([]string, error) {
	staff, err := repo.Staff.List(ctx)
	if err != nil {
		return nil, apperrors.Store("list staff", err)
	}
	names := make([]string, 0, len(staff))
	for _, st := range staff {
		names = append(names, st.Name)
	}
	return names, nil
}
