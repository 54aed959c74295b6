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

// ErrExpenditureNotFound 支出记录不存在
var ErrExpenditureNotFound = fmt.Errorf("expenditure record %w", apperrors.ErrNotFound)

// ExpenditureService 支出业务接口
type ExpenditureService interface {
	List(ctx context.Context) ([]dto.ExpenditureResponse, error)
	Create(ctx context.Context, req *dto.CreateExpenditureRequest) (*dto.ExpenditureResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateExpenditureRequest) (*dto.ExpenditureResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, period string) (*dto.FinanceSummaryResponse, error)
}

type expenditureService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExpenditureService 创建 ExpenditureService 实例
func NewExpenditureService(repo *repository.Repository, logger *zap.Logger) ExpenditureService {
	return &expenditureService{repo: repo, logger: logger}
}

func (s *expenditureService) List(ctx context.Context) ([]dto.ExpenditureResponse, error) {
	list, err := s.repo.Expenditure.List(ctx)
	if err != nil {
		s.logger.Error("查询支出记录失败", zap.Error(err))
		return nil, apperrors.Store("list expenditures", err)
	}

	result := make([]dto.ExpenditureResponse, 0, len(list))
	for i := range list {
		result = append(result, toExpenditureResponse(&list[i]))
	}
	return result, nil
}

func (s *expenditureService) Create(ctx context.Context, req *dto.CreateExpenditureRequest) (*dto.ExpenditureResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	exp := &model.Expenditure{
		Date:        date,
		Name:        strings.TrimSpace(req.Name),
		Expenditure: strings.TrimSpace(req.Expenditure),
		Amount:      *req.Amount,
	}
	if err := s.repo.Expenditure.Create(ctx, exp); err != nil {
		s.logger.Error("创建支出记录失败", zap.Error(err))
		return nil, apperrors.Store("create expenditure", err)
	}

	resp := toExpenditureResponse(exp)
	return &resp, nil
}

func (s *expenditureService) Update(ctx context.Context, id string, req *dto.UpdateExpenditureRequest) (*dto.ExpenditureResponse, error) {
	exp, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		exp.Date = date
	}
	if req.Name != nil {
		exp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Expenditure != nil {
		exp.Expenditure = strings.TrimSpace(*req.Expenditure)
	}
	if req.Amount != nil {
		exp.Amount = *req.Amount
	}

	if err := s.repo.Expenditure.Update(ctx, exp); err != nil {
		s.logger.Error("更新支出记录失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("update expenditure", err)
	}

	resp := toExpenditureResponse(exp)
	return &resp, nil
}

func (s *expenditureService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Expenditure.Delete(ctx, id); err != nil {
		s.logger.Error("删除支出记录失败", zap.String("id", id), zap.Error(err))
		return apperrors.Store("delete expenditure", err)
	}
	return nil
}

func (s *expenditureService) Summary(ctx context.Context, period string) (*dto.FinanceSummaryResponse, error) {
	list, err := s.repo.Expenditure.List(ctx)
	if err != nil {
		s.logger.Error("查询支出记录失败", zap.Error(err))
		return nil, apperrors.Store("list expenditures", err)
	}

	entries := make([]amountEntry, 0, len(list))
	for _, e := range list {
		entries = append(entries, amountEntry{date: e.Date, amount: e.Amount})
	}
	return summarizeAmounts(period, entries)
}

func (s *expenditureService) get(ctx context.Context, id string) (*model.Expenditure, error) {
	if !validID(id) {
		return nil, ErrExpenditureNotFound
	}
	exp, err := s.repo.Expenditure.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrExpenditureNotFound
		}
		s.logger.Error("查询支出记录失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("get expenditure", err)
	}
	return exp, nil
}

func toExpenditureResponse(exp *model.Expenditure) dto.ExpenditureResponse {
	return dto.ExpenditureResponse{
		ID:          exp.ExpenditureID,
		Date:        formatDate(exp.Date),
		Name:        exp.Name,
		Expenditure: exp.Expenditure,
		Amount:      exp.Amount,
		CreatedAt:   dto.FormatTimestamp(exp.CreatedAt),
		UpdatedAt:   dto.FormatTimestamp(exp.UpdatedAt),
	}
}
