package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// ProjectHandler 项目模块 HTTP 处理器
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler 创建 ProjectHandler
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// ListProjects GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	list, err := h.projectSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch projects", err)
		return
	}

	response.OK(c, list)
}

// CreateProject POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.projectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleProjectError(c, err, "Failed to add project")
		return
	}

	response.Created(c, p)
}

// UpdateProject PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.projectSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleProjectError(c, err, "Failed to update project")
		return
	}

	response.OK(c, p)
}

// DeleteProject DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleProjectError(c, err, "Failed to delete project")
		return
	}

	response.Message(c, "Project deleted successfully")
}

func (h *ProjectHandler) handleProjectError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	case errors.Is(err, service.ErrInvalidProjectStatus):
		response.BadRequest(c, "Invalid project status")
	default:
		respondError(c, err, failMsg)
	}
}
