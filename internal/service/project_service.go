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

// ── 项目模块业务错误 ──

var (
	ErrProjectNotFound      = fmt.Errorf("project %w", apperrors.ErrNotFound)
	ErrInvalidProjectStatus = fmt.Errorf("%w: unknown project status", apperrors.ErrInvalidInput)
)

// projectStatuses 前端下拉框中的顺序
var projectStatuses = []model.ProjectStatus{
	model.ProjectCompleted,
	model.ProjectPending,
	model.ProjectTimeOutDated,
	model.ProjectProcessing,
	model.ProjectOnGoing,
}

// ProjectService 项目业务接口
type ProjectService interface {
	List(ctx context.Context) ([]dto.ProjectResponse, error)
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService 创建 ProjectService 实例
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	list, err := s.repo.Project.List(ctx)
	if err != nil {
		s.logger.Error("查询项目列表失败", zap.Error(err))
		return nil, apperrors.Store("list projects", err)
	}

	result := make([]dto.ProjectResponse, 0, len(list))
	for i := range list {
		result = append(result, toProjectResponse(&list[i]))
	}
	return result, nil
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	status, err := parseProjectStatus(req.Status)
	if err != nil {
		return nil, err
	}

	p := &model.Project{
		Name:      strings.TrimSpace(req.Name),
		Team:      strings.TrimSpace(req.Team),
		StartDate: strings.TrimSpace(req.StartDate),
		EndDate:   strings.TrimSpace(req.EndDate),
		Status:    status,
	}
	if err := s.repo.Project.Create(ctx, p); err != nil {
		s.logger.Error("创建项目失败", zap.String("name", p.Name), zap.Error(err))
		return nil, apperrors.Store("create project", err)
	}

	resp := toProjectResponse(p)
	return &resp, nil
}

func (s *projectService) Update(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Team != nil {
		p.Team = strings.TrimSpace(*req.Team)
	}
	if req.StartDate != nil {
		p.StartDate = strings.TrimSpace(*req.StartDate)
	}
	if req.EndDate != nil {
		p.EndDate = strings.TrimSpace(*req.EndDate)
	}
	if req.Status != nil {
		status, err := parseProjectStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		p.Status = status
	}

	if err := s.repo.Project.Update(ctx, p); err != nil {
		s.logger.Error("更新项目失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("update project", err)
	}

	resp := toProjectResponse(p)
	return &resp, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Project.Delete(ctx, id); err != nil {
		s.logger.Error("删除项目失败", zap.String("id", id), zap.Error(err))
		return apperrors.Store("delete project", err)
	}
	return nil
}

func (s *projectService) get(ctx context.Context, id string) (*model.Project, error) {
	if !validID(id) {
		return nil, ErrProjectNotFound
	}
	p, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("查询项目失败", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Store("get project", err)
	}
	return p, nil
}

// parseProjectStatus 空值默认 On Going
func parseProjectStatus(s string) (model.ProjectStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.ProjectOnGoing, nil
	}
	for _, st := range projectStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", ErrInvalidProjectStatus
}

func toProjectResponse(p *model.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:        p.ProjectID,
		Name:      p.Name,
		Team:      p.Team,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    string(p.Status),
		CreatedAt: dto.FormatTimestamp(p.CreatedAt),
		UpdatedAt: dto.FormatTimestamp(p.UpdatedAt),
	}
}
