package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// VacancyHandler 招聘模块 HTTP 处理器
type VacancyHandler struct {
	vacancySvc service.VacancyService
}

// NewVacancyHandler 创建 VacancyHandler
func NewVacancyHandler(vacancySvc service.VacancyService) *VacancyHandler {
	return &VacancyHandler{vacancySvc: vacancySvc}
}

// ListVacancies 获取岗位列表，最新发布在前
// GET /api/vacancies
func (h *VacancyHandler) ListVacancies(c *gin.Context) {
	list, err := h.vacancySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch vacancies", err)
		return
	}

	response.OK(c, list)
}

// CreateVacancy 发布岗位
// POST /api/vacancies
func (h *VacancyHandler) CreateVacancy(c *gin.Context) {
	var req dto.CreateVacancyRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.vacancySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleVacancyError(c, err, "Failed to add vacancy")
		return
	}

	response.Created(c, v)
}

// UpdateVacancy 更新岗位
// PUT /api/vacancies/:id
func (h *VacancyHandler) UpdateVacancy(c *gin.Context) {
	var req dto.UpdateVacancyRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.vacancySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleVacancyError(c, err, "Failed to update vacancy")
		return
	}

	response.OK(c, v)
}

// DeleteVacancy 删除岗位
// DELETE /api/vacancies/:id
func (h *VacancyHandler) DeleteVacancy(c *gin.Context) {
	if err := h.vacancySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleVacancyError(c, err, "Failed to delete vacancy")
		return
	}

	response.Message(c, "Vacancy deleted successfully")
}

// handleVacancyError 统一处理招聘模块业务错误
func (h *VacancyHandler) handleVacancyError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrVacancyNotFound):
		response.NotFound(c, "Vacancy not found")
	default:
		respondError(c, err, failMsg)
	}
}
