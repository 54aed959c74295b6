package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"letnex-erp/backend/config"
	"letnex-erp/backend/internal/attendance"
	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/model"
)

func setupTestExportService() (*exportService, *mockRepos) {
	repo, mocks := newMockRepository()
	svc := NewExportService(&config.AttendanceConfig{Timezone: "UTC"}, repo, zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return svc, mocks
}

func seedStaff(t *testing.T, mocks *mockRepos, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := mocks.staff.Create(context.Background(), &model.Staff{Name: n}); err != nil {
			t.Fatalf("准备员工失败: %v", err)
		}
	}
}

func TestExportService_Attendance_Month(t *testing.T) {
	svc, mocks := setupTestExportService()
	seedStaff(t, mocks, "Deepan R", "Jane Doe")
	mocks.attendance.rows = []model.Attendance{
		{Date: "2024-03-01", Employee: "Deepan R", Status: model.StatusPresent},
		{Date: "2024-03-01", Employee: "Jane Doe", Status: model.StatusAbsent, Reason: "Fever"},
		{Date: "2024-04-02", Employee: "Deepan R", Status: model.StatusHoliday, Reason: "Festival"},
	}

	buf, filename, err := svc.Attendance(context.Background(), "month", "")
	if err != nil {
		t.Fatalf("导出考勤失败: %v", err)
	}
	if filename != "Attendance_2024-03.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Month Data")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 表头 + 2 名员工 + 1 行汇总
	if len(rows) != 4 {
		t.Fatalf("期望 4 行，实际 %d: %v", len(rows), rows)
	}
	if strings.Join(rows[0], ",") != "Date,Employee,Status,Reason" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[2][1] != "Jane Doe" || rows[2][3] != "Fever" {
		t.Errorf("员工行不符: %v", rows[2])
	}
	if rows[3][1] != attendance.SummaryEmployee || !strings.HasPrefix(rows[3][2], "Present: 1, Absent: 1") {
		t.Errorf("汇总行不符: %v", rows[3])
	}
}

func TestExportService_Attendance_Errors(t *testing.T) {
	svc, mocks := setupTestExportService()
	seedStaff(t, mocks, "Deepan R")
	ctx := context.Background()

	if _, _, err := svc.Attendance(ctx, "month", "2024-05-01"); !errors.Is(err, attendance.ErrEmptyReport) {
		t.Errorf("期望 ErrEmptyReport，实际: %v", err)
	}
	if _, _, err := svc.Attendance(ctx, "week", ""); !errors.Is(err, attendance.ErrInvalidScope) {
		t.Errorf("期望 ErrInvalidScope，实际: %v", err)
	}
	if _, _, err := svc.Attendance(ctx, "year", "15/03/2024"); !errors.Is(err, attendance.ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

func TestExportService_Salaries(t *testing.T) {
	svc, _ := setupTestExportService()
	ctx := context.Background()

	if _, _, err := svc.Salaries(ctx); !errors.Is(err, ErrExportNoSalaries) {
		t.Fatalf("无记录时期望 ErrExportNoSalaries，实际: %v", err)
	}

	salarySvc := NewSalaryService(svc.repo, zap.NewNop())
	for _, amount := range []string{"30000", "12500.50"} {
		_, err := salarySvc.Create(ctx, &dto.CreateSalaryRequest{
			EmployeeID: "LNX001", Name: "Dheeraj C", Salary: decPtr(amount), Date: "2024-03-31",
		})
		if err != nil {
			t.Fatalf("创建工资记录失败: %v", err)
		}
	}

	buf, filename, err := svc.Salaries(ctx)
	if err != nil {
		t.Fatalf("导出工资失败: %v", err)
	}
	if filename != "Salary_Records_2024-03-15.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	defer f.Close()

	total, _ := f.GetCellValue("Salary Records", "C4")
	if label, _ := f.GetCellValue("Salary Records", "B4"); label != "Total" || total != "42500.5" {
		t.Errorf("合计行不符: label=%s total=%s", label, total)
	}
}
