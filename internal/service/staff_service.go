package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/model"
	"letnex-erp/backend/internal/repository"
	apperrors "letnex-erp/backend/pkg/errors"
)

// ── 花名册模块业务错误 ──

var (
	ErrStaffNotFound     = fmt.Errorf("staff member %w", apperrors.ErrNotFound)
	ErrStaffExists       = fmt.Errorf("staff member %w", apperrors.ErrConflict)
	ErrStaffNameRequired = fmt.Errorf("%w: name", apperrors.ErrMissingFields)
)

// StaffService 考勤花名册业务接口
type StaffService interface {
	List(ctx context.Context) ([]dto.StaffResponse, error)
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	// Delete 按姓名移除成员；历史考勤保留，但不再出现在任何视图中
	Delete(ctx context.Context, name string) error
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService 创建 StaffService 实例
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

func (s *staffService) List(ctx context.Context) ([]dto.StaffResponse, error) {
	list, err := s.repo.Staff.List(ctx)
	if err != nil {
		s.logger.Error("查询花名册失败", zap.Error(err))
		return nil, apperrors.Store("list staff", err)
	}

	result := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		result = append(result, toStaffResponse(&list[i]))
	}
	return result, nil
}

func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrStaffNameRequired
	}

	// 姓名忽略大小写唯一
	existing, err := s.repo.Staff.GetByName(ctx, name)
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询花名册失败", zap.String("name", name), zap.Error(err))
		return nil, apperrors.Store("get staff", err)
	}
	if existing != nil {
		return nil, ErrStaffExists
	}

	staff := &model.Staff{Name: name}
	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		if isDuplicate(err) {
			return nil, ErrStaffExists
		}
		s.logger.Error("添加花名册成员失败", zap.String("name", name), zap.Error(err))
		return nil, apperrors.Store("create staff", err)
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

func (s *staffService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	staff, err := s.repo.Staff.GetByName(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return ErrStaffNotFound
		}
		s.logger.Error("查询花名册失败", zap.String("name", name), zap.Error(err))
		return apperrors.Store("get staff", err)
	}

	if err := s.repo.Staff.Delete(ctx, staff.StaffID); err != nil {
		s.logger.Error("移除花名册成员失败", zap.String("name", name), zap.Error(err))
		return apperrors.Store("delete staff", err)
	}

	s.logger.Info("花名册成员已移除，历史考勤保留", zap.String("name", staff.Name))
	return nil
}

func toStaffResponse(st *model.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:        st.StaffID,
		Name:      st.Name,
		CreatedAt: dto.FormatTimestamp(st.CreatedAt),
	}
}
