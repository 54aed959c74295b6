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

// ErrRevenueNotFound 收入记录不存在
var ErrRevenueNotFound = fmt.Errorf("revenue record %w", apperrors.ErrNotFound)

// RevenueService 收入业务接口
type RevenueService interface {
	List(ctx context.Context) ([]dto.RevenueResponse, error)
	Create(ctx context.Context, req *dto.CreateRevenueRequest) (*dto.RevenueResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateRevenueRequest) (*dto.RevenueResponse, error)
	Delete(ctx context.Context, id string) error
	// Summary 按 monthly / yearly 汇总金额
	Summary(ctx context.Context, period string) (*dto.FinanceSummaryResponse, error)
}

type revenueService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRevenueService 创建 RevenueService 实例
func NewRevenueService(repo *repository.Repository, logger *zap.Logger) RevenueService {
	return &revenueService{repo: repo, logger: logger}
}

func (s *revenueService) List(ctx context.Context) ([]dto.RevenueResponse, error) {
	list, err := s.repo.Revenue.List(ctx)
	if err != nil {
		s.logger.Error("查询收入记录失败", zap.Error(err))
		return nil, apperrors.Store("list revenues", err)
	}

	result := make([]dto.RevenueResponse, 0, len(list))
	for i := range list {
		result = append(result, toRevenueResponse(&list[i]))
	}
	return result, nil
}

func (s *revenueService) Create(ctx context.Context, req *dto.CreateRevenueRequest) (*dto.RevenueResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	rev := &model.Revenue{
		Date:         date,
		ProjectName:  strings.TrimSpace(req.ProjectName),
		ClientName:   strings.TrimSpace(req.ClientName),
		Amount:       *req.Amount,
		EmployeeName: strings.TrimSpace(req.EmployeeName),
	}
	if err := s.repo.Revenue.Create(ctx, rev); err != nil {
		s.logger.Error("创建收入记录失败", zap.Error(err))
		return nil, apperrors.Store("create revenue", err)
	}

	resp := toRevenueResponse(rev)
	return &resp, nil
}

func (s *revenueService) Update(ctx context.Context, id string, req *dto.UpdateRevenueRequest) (*dto.RevenueResponse, error) {
	rev, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		rev.Date = date
	}
	if req.ProjectName != nil {
		rev.ProjectName = strings.TrimSpace(*req.ProjectName)
	}
	if req.ClientName != nil {
		rev.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.Amount != nil {
		rev.Amount = *req.Amount
	}
	if req.EmployeeName != nil {
		rev.EmployeeName = strings.TrimSpace(*req.EmployeeName)
	}

	if err := s.repo.Revenue.Update(ctx, rev); err != nil {
		s.logger.Error("更新收入记录失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("update revenue", err)
	}

	resp := toRevenueResponse(rev)
	return &resp, nil
}

func (s *revenueService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Revenue.Delete(ctx, id); err != nil {
		s.logger.Error("删除收入记录失败", zap.String("id", id), zap.Error(err))
		return apperrors.Store("delete revenue", err)
	}
	return nil
}

func (s *revenueService) Summary(ctx context.Context, period string) (*dto.FinanceSummaryResponse, error) {
	list, err := s.repo.Revenue.List(ctx)
	if err != nil {
		s.logger.Error("查询收入记录失败", zap.Error(err))
		return nil, apperrors.Store("list revenues", err)
	}

	entries := make([]amountEntry, 0, len(list))
	for _, r := range list {
		entries = append(entries, amountEntry{date: r.Date, amount: r.Amount})
	}
	return summarizeAmounts(period, entries)
}

func (s *revenueService) get(ctx context.Context, id string) (*model.Revenue, error) {
	if !validID(id) {
		return nil, ErrRevenueNotFound
	}
	rev, err := s.repo.Revenue.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRevenueNotFound
		}
		s.logger.Error("查询收入记录失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("get revenue", err)
	}
	return rev, nil
}

func toRevenueResponse(rev *model.Revenue) dto.RevenueResponse {
	return dto.RevenueResponse{
		ID:           rev.RevenueID,
		Date:         formatDate(rev.Date),
		ProjectName:  rev.ProjectName,
		ClientName:   rev.ClientName,
		Amount:       rev.Amount,
		EmployeeName: rev.EmployeeName,
		CreatedAt:    dto.FormatTimestamp(rev.CreatedAt),
		UpdatedAt:    dto.FormatTimestamp(rev.UpdatedAt),
	}
}
