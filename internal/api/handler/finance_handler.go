package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	"letnex-erp/backend/pkg/response"
)

// ── 收入 ──

// RevenueHandler 收入模块 HTTP 处理器
type RevenueHandler struct {
	revenueSvc service.RevenueService
}

// NewRevenueHandler 创建 RevenueHandler
func NewRevenueHandler(revenueSvc service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueSvc: revenueSvc}
}

// ListRevenues GET /api/revenue
func (h *RevenueHandler) ListRevenues(c *gin.Context) {
	list, err := h.revenueSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch revenue", err)
		return
	}
	response.OK(c, list)
}

// CreateRevenue POST /api/revenue
func (h *RevenueHandler) CreateRevenue(c *gin.Context) {
	var req dto.CreateRevenueRequest
	if !bindJSON(c, &req) {
		return
	}

	rev, err := h.revenueSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRevenueError(c, err, "Failed to add record")
		return
	}
	response.Created(c, rev)
}

// UpdateRevenue PUT /api/revenue/:id
func (h *RevenueHandler) UpdateRevenue(c *gin.Context) {
	var req dto.UpdateRevenueRequest
	if !bindJSON(c, &req) {
		return
	}

	rev, err := h.revenueSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleRevenueError(c, err, "Failed to update record")
		return
	}
	response.OK(c, rev)
}

// DeleteRevenue DELETE /api/revenue/:id
func (h *RevenueHandler) DeleteRevenue(c *gin.Context) {
	if err := h.revenueSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleRevenueError(c, err, "Failed to delete record")
		return
	}
	response.Message(c, "Record deleted successfully")
}

// RevenueSummary 按月/年汇总收入
// GET /api/revenue/summary?period=monthly
func (h *RevenueHandler) RevenueSummary(c *gin.Context) {
	var q dto.FinanceSummaryQuery
	if !bindQuery(c, &q) {
		return
	}

	sum, err := h.revenueSvc.Summary(c.Request.Context(), q.Period)
	if err != nil {
		h.handleRevenueError(c, err, "Failed to summarize revenue")
		return
	}
	response.OK(c, sum)
}

func (h *RevenueHandler) handleRevenueError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrRevenueNotFound):
		response.NotFound(c, "Revenue record not found")
	default:
		handleFinanceError(c, err, failMsg)
	}
}

// ── 支出 ──

// ExpenditureHandler 支出模块 HTTP 处理器
type ExpenditureHandler struct {
	expenditureSvc service.ExpenditureService
}

// NewExpenditureHandler 创建 ExpenditureHandler
func NewExpenditureHandler(expenditureSvc service.ExpenditureService) *ExpenditureHandler {
	return &ExpenditureHandler{expenditureSvc: expenditureSvc}
}

// ListExpenditures GET /api/expenditure
func (h *ExpenditureHandler) ListExpenditures(c *gin.Context) {
	list, err := h.expenditureSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch records", err)
		return
	}
	response.OK(c, list)
}

// CreateExpenditure POST /api/expenditure
func (h *ExpenditureHandler) CreateExpenditure(c *gin.Context) {
	var req dto.CreateExpenditureRequest
	if !bindJSON(c, &req) {
		return
	}

	exp, err := h.expenditureSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleExpenditureError(c, err, "Failed to add record")
		return
	}
	response.Created(c, exp)
}

// UpdateExpenditure PUT /api/expenditure/:id
func (h *ExpenditureHandler) UpdateExpenditure(c *gin.Context) {
	var req dto.UpdateExpenditureRequest
	if !bindJSON(c, &req) {
		return
	}

	exp, err := h.expenditureSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleExpenditureError(c, err, "Failed to update record")
		return
	}
	response.OK(c, exp)
}

// DeleteExpenditure DELETE /api/expenditure/:id
func (h *ExpenditureHandler) DeleteExpenditure(c *gin.Context) {
	if err := h.expenditureSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleExpenditureError(c, err, "Failed to delete record")
		return
	}
	response.Message(c, "Record deleted successfully")
}

// ExpenditureSummary 按月/年汇总支出
// GET /api/expenditure/summary?period=yearly
func (h *ExpenditureHandler) ExpenditureSummary(c *gin.Context) {
	var q dto.FinanceSummaryQuery
	if !bindQuery(c, &q) {
		return
	}

	sum, err := h.expenditureSvc.Summary(c.Request.Context(), q.Period)
	if err != nil {
		h.handleExpenditureError(c, err, "Failed to summarize expenditure")
		return
	}
	response.OK(c, sum)
}

func (h *ExpenditureHandler) handleExpenditureError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrExpenditureNotFound):
		response.NotFound(c, "Expenditure record not found")
	default:
		handleFinanceError(c, err, failMsg)
	}
}

// handleFinanceError 收入与支出共用的错误映射
func handleFinanceError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidPeriod):
		response.BadRequest(c, "Period must be monthly or yearly")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	default:
		respondError(c, err, failMsg)
	}
}
