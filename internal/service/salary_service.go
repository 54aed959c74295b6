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

// ── 工资模块业务错误 ──

var (
	ErrSalaryNotFound      = fmt.Errorf("salary record %w", apperrors.ErrNotFound)
	ErrInvalidSalaryStatus = fmt.Errorf("%w: status must be Credited or Pending", apperrors.ErrInvalidInput)
)

// SalaryService 工资业务接口
type SalaryService interface {
	List(ctx context.Context) ([]dto.SalaryResponse, error)
	Create(ctx context.Context, req *dto.CreateSalaryRequest) (*dto.SalaryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSalaryRequest) (*dto.SalaryResponse, error)
	Delete(ctx context.Context, id string) error
}

type salaryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSalaryService 创建 SalaryService 实例
func NewSalaryService(repo *repository.Repository, logger *zap.Logger) SalaryService {
	return &salaryService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *salaryService) List(ctx context.Context) ([]dto.SalaryResponse, error) {
	list, err := s.repo.Salary.List(ctx)
	if err != nil {
		s.logger.Error("查询工资记录失败", zap.Error(err))
		return nil, apperrors.Store("list salaries", err)
	}

	result := make([]dto.SalaryResponse, 0, len(list))
	for i := range list {
		result = append(result, toSalaryResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *salaryService) Create(ctx context.Context, req *dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	status, err := parseSalaryStatus(req.Status)
	if err != nil {
		return nil, err
	}

	sal := &model.Salary{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Name:       strings.TrimSpace(req.Name),
		Salary:     *req.Salary,
		Date:       date,
		Status:     status,
	}
	if err := s.repo.Salary.Create(ctx, sal); err != nil {
		s.logger.Error("创建工资记录失败", zap.String("employee_id", sal.EmployeeID), zap.Error(err))
		return nil, apperrors.Store("create salary", err)
	}

	resp := toSalaryResponse(sal)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *salaryService) Update(ctx context.Context, id string, req *dto.UpdateSalaryRequest) (*dto.SalaryResponse, error) {
	sal, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmployeeID != nil {
		sal.EmployeeID = strings.TrimSpace(*req.EmployeeID)
	}
	if req.Name != nil {
		sal.Name = strings.TrimSpace(*req.Name)
	}
	if req.Salary != nil {
		sal.Salary = *req.Salary
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		sal.Date = date
	}
	if req.Status != nil {
		status, err := parseSalaryStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		sal.Status = status
	}

	if err := s.repo.Salary.Update(ctx, sal); err != nil {
		s.logger.Error("更新工资记录失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("update salary", err)
	}

	resp := toSalaryResponse(sal)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *salaryService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Salary.Delete(ctx, id); err != nil {
		s.logger.Error("删除工资记录失败", zap.String("id", id), zap.Error(err))
		return apperrors.Store("delete salary", err)
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *salaryService) get(ctx context.Context, id string) (*model.Salary, error) {
	if !validID(id) {
		return nil, ErrSalaryNotFound
	}
	sal, err := s.repo.Salary.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSalaryNotFound
		}
		s.logger.Error("查询工资记录失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("get salary", err)
	}
	return sal, nil
}

// parseSalaryStatus 空值默认 Pending
func parseSalaryStatus(s string) (model.SalaryStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.SalaryPending, nil
	}
	for _, st := range []model.SalaryStatus{model.SalaryCredited, model.SalaryPending} {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", ErrInvalidSalaryStatus
}

func toSalaryResponse(sal *model.Salary) dto.SalaryResponse {
	return dto.SalaryResponse{
		ID:         sal.SalaryID,
		EmployeeID: sal.EmployeeID,
		Name:       sal.Name,
		Salary:     sal.Salary,
		Date:       formatDate(sal.Date),
		Status:     string(sal.Status),
		CreatedAt:  dto.FormatTimestamp(sal.CreatedAt),
		UpdatedAt:  dto.FormatTimestamp(sal.UpdatedAt),
	}
}
