package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/model"
	"letnex-erp/backend/internal/repository"
	apperrors "letnex-erp/backend/pkg/errors"
)

// ErrVacancyNotFound 岗位不存在
var ErrVacancyNotFound = fmt.Errorf("vacancy %w", apperrors.ErrNotFound)

// VacancyService 招聘岗位业务接口
type VacancyService interface {
	List(ctx context.Context) ([]dto.VacancyResponse, error)
	Create(ctx context.Context, req *dto.CreateVacancyRequest) (*dto.VacancyResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateVacancyRequest) (*dto.VacancyResponse, error)
	Delete(ctx context.Context, id string) error
}

type vacancyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVacancyService 创建 VacancyService 实例
func NewVacancyService(repo *repository.Repository, logger *zap.Logger) VacancyService {
	return &vacancyService{repo: repo, logger: logger}
}

func (s *vacancyService) List(ctx context.Context) ([]dto.VacancyResponse, error) {
	list, err := s.repo.Vacancy.List(ctx)
	if err != nil {
		s.logger.Error("查询岗位列表失败", zap.Error(err))
		return nil, apperrors.Store("list vacancies", err)
	}

	result := make([]dto.VacancyResponse, 0, len(list))
	for i := range list {
		result = append(result, toVacancyResponse(&list[i]))
	}
	return result, nil
}

func (s *vacancyService) Create(ctx context.Context, req *dto.CreateVacancyRequest) (*dto.VacancyResponse, error) {
	v := &model.Vacancy{
		Title:       strings.TrimSpace(req.Title),
		Openings:    *req.Openings,
		Description: strings.TrimSpace(req.Description),
		DatePosted:  time.Now(),
	}
	if err := s.repo.Vacancy.Create(ctx, v); err != nil {
		s.logger.Error("发布岗位失败", zap.String("title", v.Title), zap.Error(err))
		return nil, apperrors.Store("create vacancy", err)
	}

	resp := toVacancyResponse(v)
	return &resp, nil
}

func (s *vacancyService) Update(ctx context.Context, id string, req *dto.UpdateVacancyRequest) (*dto.VacancyResponse, error) {
	v, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		v.Title = strings.TrimSpace(*req.Title)
	}
	if req.Openings != nil {
		v.Openings = *req.Openings
	}
	if req.Description != nil {
		v.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Vacancy.Update(ctx, v); err != nil {
		s.logger.Error("更新岗位失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("update vacancy", err)
	}

	resp := toVacancyResponse(v)
	return &resp, nil
}

func (s *vacancyService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Vacancy.Delete(ctx, id); err != nil {
		s.logger.Error("删除岗位失败", zap.String("id", id), zap.Error(err))
		return apperrors.Store("delete vacancy", err)
	}
	return nil
}

func (s *vacancyService) get(ctx context.Context, id string) (*model.Vacancy, error) {
	if !validID(id) {
		return nil, ErrVacancyNotFound
	}
	v, err := s.repo.Vacancy.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrVacancyNotFound
		}
		s.logger.Error("查询岗位失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("get vacancy", err)
	}
	return v, nil
}

func toVacancyResponse(v *model.Vacancy) dto.VacancyResponse {
	return dto.VacancyResponse{
		ID:          v.VacancyID,
		Title:       v.Title,
		Openings:    v.Openings,
		Description: v.Description,
		DatePosted:  dto.FormatTimestamp(v.DatePosted),
		CreatedAt:   dto.FormatTimestamp(v.CreatedAt),
		UpdatedAt:   dto.FormatTimestamp(v.UpdatedAt),
	}
}
