package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/model"
	"letnex-erp/backend/internal/repository"
	apperrors "letnex-erp/backend/pkg/errors"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound    = fmt.Errorf("employee %w", apperrors.ErrNotFound)
	ErrEmployeeIDExists    = fmt.Errorf("employeeId %w", apperrors.ErrConflict)
	ErrInvalidEmployeeBody = fmt.Errorf("%w: malformed employee document", apperrors.ErrInvalidInput)
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	// Update 将请求体按字段合并到现有文档上，不设字段白名单
	Update(ctx context.Context, id string, patch []byte) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, apperrors.Store("list employees", err)
	}

	result := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		result = append(result, toEmployeeResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	joined, err := parseDate(req.JoiningDate)
	if err != nil {
		return nil, err
	}

	emp := &model.Employee{
		EmployeeID:  strings.TrimSpace(req.EmployeeID),
		Name:        strings.TrimSpace(req.Name),
		JoiningDate: joined,
		WorkingDays: *req.WorkingDays,
		LeaveDays:   *req.LeaveDays,
	}
	if emp.EmployeeID == "" || emp.Name == "" {
		return nil, apperrors.ErrMissingFields
	}

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		if isDuplicate(err) {
			return nil, ErrEmployeeIDExists
		}
		s.logger.Error("创建员工失败", zap.String("employee_id", emp.EmployeeID), zap.Error(err))
		return nil, apperrors.Store("create employee", err)
	}

	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *employeeService) Update(ctx context.Context, id string, patch []byte) (*dto.EmployeeResponse, error) {
	emp, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	// 请求体中出现的字段覆盖原值，未出现的保持不变
	doc := toEmployeeDocument(emp)
	if err := json.Unmarshal(patch, &doc); err != nil {
		return nil, ErrInvalidEmployeeBody
	}

	joined, err := parseDate(doc.JoiningDate)
	if err != nil {
		return nil, err
	}
	emp.EmployeeID = strings.TrimSpace(doc.EmployeeID)
	emp.Name = strings.TrimSpace(doc.Name)
	emp.JoiningDate = joined
	emp.WorkingDays = doc.WorkingDays
	emp.LeaveDays = doc.LeaveDays

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		if isDuplicate(err) {
			return nil, ErrEmployeeIDExists
		}
		s.logger.Error("更新员工失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("update employee", err)
	}

	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		s.logger.Error("删除员工失败", zap.String("id", id), zap.Error(err))
		return apperrors.Store("delete employee", err)
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *employeeService) get(ctx context.Context, id string) (*model.Employee, error) {
	if !validID(id) {
		return nil, ErrEmployeeNotFound
	}
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("get employee", err)
	}
	return emp, nil
}

func toEmployeeDocument(emp *model.Employee) dto.EmployeeDocument {
	return dto.EmployeeDocument{
		EmployeeID:  emp.EmployeeID,
		Name:        emp.Name,
		JoiningDate: formatDate(emp.JoiningDate),
		WorkingDays: emp.WorkingDays,
		LeaveDays:   emp.LeaveDays,
	}
}

func toEmployeeResponse(emp *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:               emp.EmployeePK,
		EmployeeDocument: toEmployeeDocument(emp),
		CreatedAt:        dto.FormatTimestamp(emp.CreatedAt),
		UpdatedAt:        dto.FormatTimestamp(emp.UpdatedAt),
	}
}
