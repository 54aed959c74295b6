package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"letnex-erp/backend/internal/dto"
)

func TestProjectService_DefaultStatusAndUpdate(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewProjectService(repo, zap.NewNop())
	ctx := context.Background()

	p, err := svc.Create(ctx, &dto.CreateProjectRequest{
		Name: "ERP Portal", Team: "Platform", StartDate: "2024-01-10", EndDate: "2024-06-30",
	})
	if err != nil {
		t.Fatalf("创建项目失败: %v", err)
	}
	if p.Status != "On Going" {
		t.Errorf("默认状态应为 On Going，实际 %s", p.Status)
	}

	updated, err := svc.Update(ctx, p.ID, &dto.UpdateProjectRequest{Status: strPtr("time-out-dated")})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Status != "Time-Out-Dated" || updated.Team != "Platform" {
		t.Errorf("更新结果不符: %+v", updated)
	}
}

func TestProjectService_Errors(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewProjectService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateProjectRequest{
		Name: "X", Team: "Y", StartDate: "2024-01-01", EndDate: "2024-02-01", Status: "Cancelled",
	})
	if !errors.Is(err, ErrInvalidProjectStatus) {
		t.Errorf("期望 ErrInvalidProjectStatus，实际: %v", err)
	}
	if _, err := svc.Update(ctx, "5f0c6d3e-1a2b-4c5d-8e9f-000000000000", &dto.UpdateProjectRequest{}); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("期望 ErrProjectNotFound，实际: %v", err)
	}
}
