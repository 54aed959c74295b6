package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"letnex-erp/backend/internal/attendance"
	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/service"
	apperrors "letnex-erp/backend/pkg/errors"
	"letnex-erp/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult *dto.LoginResponse
	loginErr    error
	logoutToken string
	logoutErr   error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, token string) error {
	m.logoutToken = token
	return m.logoutErr
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	markResult  *dto.SaveAttendanceResponse
	markCreated bool
	markErr     error
	dayResult   *dto.AttendanceDayResponse
	dayErr      error
	lastDate    string
	printResult []byte
}

func (m *mockAttendanceService) List(_ context.Context) ([]dto.AttendanceResponse, error) {
	return []dto.AttendanceResponse{}, nil
}
func (m *mockAttendanceService) Mark(_ context.Context, _ *dto.MarkAttendanceRequest) (*dto.SaveAttendanceResponse, bool, error) {
	return m.markResult, m.markCreated, m.markErr
}
func (m *mockAttendanceService) Day(_ context.Context, date string) (*dto.AttendanceDayResponse, error) {
	m.lastDate = date
	return m.dayResult, m.dayErr
}
func (m *mockAttendanceService) Summary(_ context.Context, date string) (*dto.AttendanceSummaryResponse, error) {
	m.lastDate = date
	return &dto.AttendanceSummaryResponse{Date: date}, nil
}
func (m *mockAttendanceService) Print(_ context.Context, _ string) ([]byte, error) {
	return m.printResult, nil
}

// ── Mock StaffService ──

type mockStaffService struct {
	createErr error
	deleteErr error
	deleted   string
}

func (m *mockStaffService) List(_ context.Context) ([]dto.StaffResponse, error) {
	return []dto.StaffResponse{}, nil
}
func (m *mockStaffService) Create(_ context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &dto.StaffResponse{ID: "staff-1", Name: req.Name}, nil
}
func (m *mockStaffService) Delete(_ context.Context, name string) error {
	m.deleted = name
	return m.deleteErr
}

// ── Mock EmployeeService ──

type mockEmployeeService struct {
	updateErr error
	patch     []byte
}

func (m *mockEmployeeService) List(_ context.Context) ([]dto.EmployeeResponse, error) {
	return nil, nil
}
func (m *mockEmployeeService) Create(_ context.Context, _ *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	return &dto.EmployeeResponse{ID: "emp-1"}, nil
}
func (m *mockEmployeeService) Update(_ context.Context, id string, patch []byte) (*dto.EmployeeResponse, error) {
	m.patch = patch
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &dto.EmployeeResponse{ID: id}, nil
}
func (m *mockEmployeeService) Delete(_ context.Context, _ string) error {
	return nil
}

// ── Mock SalaryService ──

type mockSalaryService struct {
	listErr   error
	deleteErr error
}

func (m *mockSalaryService) List(_ context.Context) ([]dto.SalaryResponse, error) {
	return []dto.SalaryResponse{}, m.listErr
}
func (m *mockSalaryService) Create(_ context.Context, _ *dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	return &dto.SalaryResponse{ID: "sal-1", Status: "Pending"}, nil
}
func (m *mockSalaryService) Update(_ context.Context, id string, _ *dto.UpdateSalaryRequest) (*dto.SalaryResponse, error) {
	return &dto.SalaryResponse{ID: id}, nil
}
func (m *mockSalaryService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock RevenueService ──

type mockRevenueService struct {
	summaryErr error
}

func (m *mockRevenueService) List(_ context.Context) ([]dto.RevenueResponse, error) {
	return nil, nil
}
func (m *mockRevenueService) Create(_ context.Context, _ *dto.CreateRevenueRequest) (*dto.RevenueResponse, error) {
	return &dto.RevenueResponse{ID: "rev-1"}, nil
}
func (m *mockRevenueService) Update(_ context.Context, id string, _ *dto.UpdateRevenueRequest) (*dto.RevenueResponse, error) {
	return &dto.RevenueResponse{ID: id}, nil
}
func (m *mockRevenueService) Delete(_ context.Context, _ string) error {
	return nil
}
func (m *mockRevenueService) Summary(_ context.Context, period string) (*dto.FinanceSummaryResponse, error) {
	if m.summaryErr != nil {
		return nil, m.summaryErr
	}
	return &dto.FinanceSummaryResponse{Period: period}, nil
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) Attendance(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) Salaries(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func serve(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func parseError(w *httptest.ResponseRecorder) response.ErrorBody {
	var body response.ErrorBody
	json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{loginResult: &dto.LoginResponse{Success: true, Message: "Login successful", Token: "tok"}}
	r := gin.New()
	r.POST("/api/login", NewAuthHandler(mock).Login)

	w := serve(r, "POST", "/api/login", jsonBody(dto.LoginRequest{Email: "admin@letnex.in", Password: "pw"}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.LoginResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || resp.Token != "tok" {
		t.Errorf("登录响应不符: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	r := gin.New()
	r.POST("/api/login", NewAuthHandler(mock).Login)

	w := serve(r, "POST", "/api/login", jsonBody(dto.LoginRequest{Email: "admin@letnex.in", Password: "wrong"}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var resp dto.LoginResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Success || resp.Message != "Invalid email or password" {
		t.Errorf("错误响应不符: %+v", resp)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	r := gin.New()
	r.POST("/api/login", NewAuthHandler(&mockAuthService{}).Login)

	w := serve(r, "POST", "/api/login", strings.NewReader("invalid json"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	mock := &mockAuthService{}
	r := gin.New()
	r.POST("/api/logout", NewAuthHandler(mock).Logout)

	w := serve(r, "POST", "/api/logout", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("缺少 Token 期望 401，实际 %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || mock.logoutToken != "abc.def.ghi" {
		t.Errorf("登出失败: code=%d token=%q", w.Code, mock.logoutToken)
	}
}

// ═══════════════════════════════════════════════════════════
// AttendanceHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAttendanceHandler_Mark_CreatedAndUpdated(t *testing.T) {
	mock := &mockAttendanceService{
		markResult:  &dto.SaveAttendanceResponse{Message: "Added successfully"},
		markCreated: true,
	}
	h := NewAttendanceHandler(mock)
	r := gin.New()
	r.POST("/api/attendance", h.MarkAttendance)
	r.POST("/api/attendance/save", h.MarkAttendance)

	body := dto.MarkAttendanceRequest{Date: "2024-03-15", Employee: "Deepan R", Status: "Present"}
	if w := serve(r, "POST", "/api/attendance", jsonBody(body)); w.Code != http.StatusCreated {
		t.Errorf("新建期望 201，实际 %d", w.Code)
	}

	mock.markCreated = false
	mock.markResult = &dto.SaveAttendanceResponse{Message: "Updated successfully"}
	if w := serve(r, "POST", "/api/attendance/save", jsonBody(body)); w.Code != http.StatusOK {
		t.Errorf("更新期望 200，实际 %d", w.Code)
	}
}

func TestAttendanceHandler_Mark_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		err      error
		wantCode int
		wantMsg  string
	}{
		{"缺少字段", map[string]string{"date": "2024-03-15"}, nil, http.StatusBadRequest, msgMissingFields},
		{"未来日期", dto.MarkAttendanceRequest{Date: "2099-01-01", Employee: "A", Status: "Present"}, attendance.ErrFutureDate, http.StatusBadRequest, "Cannot mark attendance for a future date"},
		{"缺少原因", dto.MarkAttendanceRequest{Date: "2024-03-15", Employee: "A", Status: "Absent"}, attendance.ErrReasonRequired, http.StatusBadRequest, "Reason is required for this status"},
		{"存储失败", dto.MarkAttendanceRequest{Date: "2024-03-15", Employee: "A", Status: "Present"}, apperrors.Store("upsert attendance", errors.New("connection refused")), http.StatusInternalServerError, "Error saving attendance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/api/attendance", NewAttendanceHandler(&mockAttendanceService{markErr: tt.err}).MarkAttendance)

			w := serve(r, "POST", "/api/attendance", jsonBody(tt.body))
			if w.Code != tt.wantCode {
				t.Fatalf("期望 %d，实际 %d", tt.wantCode, w.Code)
			}
			body := parseError(w)
			if body.Message != tt.wantMsg {
				t.Errorf("期望 message=%q，实际 %q", tt.wantMsg, body.Message)
			}
			if tt.wantCode == http.StatusInternalServerError && !strings.Contains(body.Error, "connection refused") {
				t.Errorf("500 响应应携带底层错误，实际 %q", body.Error)
			}
		})
	}
}

func TestAttendanceHandler_DayAndPrint(t *testing.T) {
	mock := &mockAttendanceService{
		dayResult:   &dto.AttendanceDayResponse{Date: "2024-03-15"},
		printResult: []byte("<html>window.print()</html>"),
	}
	h := NewAttendanceHandler(mock)
	r := gin.New()
	r.GET("/api/attendance/day", h.GetDay)
	r.GET("/api/attendance/print", h.Print)

	w := serve(r, "GET", "/api/attendance/day?date=2024-03-15", nil)
	if w.Code != http.StatusOK || mock.lastDate != "2024-03-15" {
		t.Errorf("单日视图失败: code=%d date=%q", w.Code, mock.lastDate)
	}

	w = serve(r, "GET", "/api/attendance/print", nil)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("期望 text/html，实际 %s", ct)
	}
}

// ═══════════════════════════════════════════════════════════
// StaffHandler Tests
// ═══════════════════════════════════════════════════════════

func TestStaffHandler_CreateConflictAndDelete(t *testing.T) {
	mock := &mockStaffService{createErr: service.ErrStaffExists}
	h := NewStaffHandler(mock)
	r := gin.New()
	r.POST("/api/attendance/staffs", h.CreateStaff)
	r.DELETE("/api/attendance/staffs/:name", h.DeleteStaff)

	w := serve(r, "POST", "/api/attendance/staffs", jsonBody(dto.CreateStaffRequest{Name: "Jane Doe"}))
	if w.Code != http.StatusConflict {
		t.Errorf("重复成员期望 409，实际 %d", w.Code)
	}

	w = serve(r, "DELETE", "/api/attendance/staffs/Jane%20Doe", nil)
	if w.Code != http.StatusOK || mock.deleted != "Jane Doe" {
		t.Errorf("删除失败: code=%d name=%q", w.Code, mock.deleted)
	}

	mock.deleteErr = service.ErrStaffNotFound
	w = serve(r, "DELETE", "/api/attendance/staffs/Nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("不存在的成员期望 404，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// EmployeeHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEmployeeHandler_Update(t *testing.T) {
	mock := &mockEmployeeService{}
	r := gin.New()
	r.PUT("/api/employee/:id", NewEmployeeHandler(mock).UpdateEmployee)

	w := serve(r, "PUT", "/api/employee/emp-1", strings.NewReader(`{"name":"Renamed"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if string(mock.patch) != `{"name":"Renamed"}` {
		t.Errorf("请求体应原样传给 Service，实际 %s", mock.patch)
	}

	mock.updateErr = service.ErrEmployeeNotFound
	w = serve(r, "PUT", "/api/employee/missing", strings.NewReader(`{"name":"X"}`))
	if w.Code != http.StatusNotFound || parseError(w).Message != "Employee not found" {
		t.Errorf("期望 404 Employee not found，实际 %d %s", w.Code, w.Body.String())
	}
}

func TestEmployeeHandler_Update_BodyTooLarge(t *testing.T) {
	mock := &mockEmployeeService{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 8)
		c.Next()
	})
	r.PUT("/api/employee/:id", NewEmployeeHandler(mock).UpdateEmployee)

	w := serve(r, "PUT", "/api/employee/emp-1", strings.NewReader(`{"name":"A very long employee name"}`))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("超出上限期望 413，实际 %d %s", w.Code, w.Body.String())
	}
	if parseError(w).Message != "Request body too large" {
		t.Errorf("错误信息不符: %s", w.Body.String())
	}
	if mock.patch != nil {
		t.Error("超限请求不应调用 Service")
	}

	w = serve(r, "PUT", "/api/employee/emp-1", strings.NewReader(""))
	if w.Code != http.StatusBadRequest {
		t.Errorf("空请求体期望 400，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SalaryHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSalaryHandler_CreateAndDelete(t *testing.T) {
	mock := &mockSalaryService{}
	h := NewSalaryHandler(mock)
	r := gin.New()
	r.GET("/api/salary", h.ListSalaries)
	r.POST("/api/salary", h.CreateSalary)
	r.DELETE("/api/salary/:id", h.DeleteSalary)

	w := serve(r, "POST", "/api/salary", strings.NewReader(`{"employeeId":"LNX001","name":"A","date":"2024-03-31"}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少 salary 期望 400，实际 %d", w.Code)
	}

	w = serve(r, "POST", "/api/salary", strings.NewReader(`{"employeeId":"LNX001","name":"A","salary":0,"date":"2024-03-31"}`))
	if w.Code != http.StatusCreated {
		t.Errorf("salary 为 0 也应视为已提供，实际 %d", w.Code)
	}

	w = serve(r, "DELETE", "/api/salary/sal-1", nil)
	var msg response.MessageBody
	json.Unmarshal(w.Body.Bytes(), &msg)
	if w.Code != http.StatusOK || msg.Message != "Salary record deleted successfully" {
		t.Errorf("删除响应不符: %d %+v", w.Code, msg)
	}

	mock.listErr = apperrors.Store("list salaries", errors.New("db down"))
	w = serve(r, "GET", "/api/salary", nil)
	if w.Code != http.StatusInternalServerError || parseError(w).Error == "" {
		t.Errorf("期望 500 且包含 error 字段，实际 %d %s", w.Code, w.Body.String())
	}
}

// ═══════════════════════════════════════════════════════════
// RevenueHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRevenueHandler_Summary(t *testing.T) {
	mock := &mockRevenueService{}
	r := gin.New()
	r.GET("/api/revenue/summary", NewRevenueHandler(mock).RevenueSummary)

	w := serve(r, "GET", "/api/revenue/summary?period=yearly", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	mock.summaryErr = service.ErrInvalidPeriod
	w = serve(r, "GET", "/api/revenue/summary?period=weekly", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("非法周期期望 400，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Attendance(t *testing.T) {
	mock := &mockExportService{buf: bytes.NewBufferString("xlsx"), filename: "Attendance_2024-03.xlsx"}
	h := NewExportHandler(mock)
	r := gin.New()
	r.GET("/api/attendance/export", h.ExportAttendance)

	w := serve(r, "GET", "/api/attendance/export?scope=month&date=2024-03-15", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Attendance_2024-03.xlsx") {
		t.Errorf("Content-Disposition 不符: %s", cd)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type 不符: %s", ct)
	}

	w = serve(r, "GET", "/api/attendance/export", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少 scope 期望 400，实际 %d", w.Code)
	}
}

func TestExportHandler_EmptyPeriodIsNotice(t *testing.T) {
	mock := &mockExportService{err: attendance.ErrEmptyReport}
	r := gin.New()
	r.GET("/api/attendance/export", NewExportHandler(mock).ExportAttendance)

	w := serve(r, "GET", "/api/attendance/export?scope=year", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("无数据应为 200 提示，实际 %d", w.Code)
	}
	var msg response.MessageBody
	json.Unmarshal(w.Body.Bytes(), &msg)
	if !msg.Notice || msg.Message != "No data found for this period." {
		t.Errorf("提示内容不符: %+v", msg)
	}
}

func TestExportHandler_Salaries_NoRecords(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoSalaries}
	r := gin.New()
	r.GET("/api/salary/export", NewExportHandler(mock).ExportSalaries)

	w := serve(r, "GET", "/api/salary/export", nil)
	var msg response.MessageBody
	json.Unmarshal(w.Body.Bytes(), &msg)
	if w.Code != http.StatusOK || !msg.Notice {
		t.Errorf("无工资记录应为提示，实际 %d %+v", w.Code, msg)
	}
}

// ═══════════════════════════════════════════════════════════
// Helper Tests
// ═══════════════════════════════════════════════════════════

func TestRespondError_Taxonomy(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.ErrMissingFields, http.StatusBadRequest},
		{service.ErrInvalidDate, http.StatusBadRequest},
		{service.ErrVacancyNotFound, http.StatusNotFound},
		{service.ErrStaffExists, http.StatusConflict},
		{apperrors.Store("op", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, tt.err, "failed")
		if w.Code != tt.want {
			t.Errorf("%v: 期望 %d，实际 %d", tt.err, tt.want, w.Code)
		}
	}
}
