package service

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"letnex-erp/backend/config"
	"letnex-erp/backend/internal/attendance"
	"letnex-erp/backend/internal/model"
	"letnex-erp/backend/internal/repository"
	apperrors "letnex-erp/backend/pkg/errors"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSalaries   = errors.New("no salary records to export")
	ErrExportGenerateFail = errors.New("failed to generate spreadsheet")
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response。
// 区间内无数据时返回 attendance.ErrEmptyReport / ErrExportNoSalaries，
// 由 Handler 作为提示而非错误返回。
type ExportService interface {
	// Attendance 导出 date 所在月/年的考勤报表，date 为空取今天
	Attendance(ctx context.Context, scope, date string) (*bytes.Buffer, string, error)
	// Salaries 导出全部工资记录
	Salaries(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.AttendanceConfig, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{
		repo:   repo,
		loc:    cfg.Location(),
		now:    time.Now,
		logger: logger,
	}
}

// ═══════════════════════════════════════════════════════════
// Attendance — 导出考勤报表
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Month Data" / "Year Data"
//   - 列：Date / Employee / Status / Reason
//   - 每个日期后追加一行加粗的 Summary
//
// 文件名：Attendance_2024-03.xlsx / Attendance_2024.xlsx

func (s *exportService) Attendance(ctx context.Context, scope, date string) (*bytes.Buffer, string, error) {
	// 1. 解析参数
	sc, err := attendance.ParseScope(scope)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(date) == "" {
		date = s.now().In(s.loc).Format(model.DateLayout)
	}
	anchor, err := attendance.ParseDay(date)
	if err != nil {
		return nil, "", err
	}

	// 2. 按日期前缀取区间内的记录
	prefix := anchor.Format("2006")
	if sc == attendance.ScopeMonth {
		prefix = anchor.Format("2006-01")
	}
	recs, err := s.repo.Attendance.ListByPrefix(ctx, prefix)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.String("prefix", prefix), zap.Error(err))
		return nil, "", apperrors.Store("list attendance by period", err)
	}
	roster, err := loadRoster(ctx, s.repo)
	if err != nil {
		s.logger.Error("查询花名册失败", zap.Error(err))
		return nil, "", err
	}

	// 3. 组装报表
	sheet := attendance.Reshape(recs)
	sheet.RetainEmployees(roster)
	report, err := attendance.BuildReport(sheet, roster, sc, anchor.Format(model.DateLayout))
	if err != nil {
		return nil, "", err
	}

	// 4. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := report.SheetName()
	if err := s.prepareSheet(f, sheetName, attendance.ReportColumns, []float64{14, 24, 60, 36}); err != nil {
		s.logger.Error("初始化工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E7E6E6"}, Pattern: 1},
	})

	for i, r := range report.Rows {
		row := i + 2
		for j, v := range r.Values() {
			f.SetCellValue(sheetName, cell(colName(j), row), v)
		}
		if r.Summary {
			f.SetCellStyle(sheetName, cell("A", row), cell(colName(len(attendance.ReportColumns)-1), row), summaryStyle)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, report.FileName(), nil
}

// ═══════════════════════════════════════════════════════════
// Salaries — 导出工资记录
// ═══════════════════════════════════════════════════════════

var salaryColumns = []string{"Employee ID", "Name", "Salary", "Date", "Status"}

func (s *exportService) Salaries(ctx context.Context) (*bytes.Buffer, string, error) {
	list, err := s.repo.Salary.List(ctx)
	if err != nil {
		s.logger.Error("查询工资记录失败", zap.Error(err))
		return nil, "", apperrors.Store("list salaries", err)
	}
	if len(list) == 0 {
		return nil, "", ErrExportNoSalaries
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Salary Records"
	if err := s.prepareSheet(f, sheetName, salaryColumns, []float64{16, 24, 14, 14, 12}); err != nil {
		s.logger.Error("初始化工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	total := decimal.Zero
	row := 2
	for _, sal := range list {
		f.SetCellValue(sheetName, cell("A", row), sal.EmployeeID)
		f.SetCellValue(sheetName, cell("B", row), sal.Name)
		f.SetCellValue(sheetName, cell("C", row), sal.Salary.InexactFloat64())
		f.SetCellValue(sheetName, cell("D", row), formatDate(sal.Date))
		f.SetCellValue(sheetName, cell("E", row), string(sal.Status))
		total = total.Add(sal.Salary)
		row++
	}

	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(sheetName, cell("B", row), "Total")
	f.SetCellValue(sheetName, cell("C", row), total.InexactFloat64())
	f.SetCellStyle(sheetName, cell("A", row), cell("E", row), totalStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := "Salary_Records_" + s.now().In(s.loc).Format(model.DateLayout) + ".xlsx"
	return buf, filename, nil
}

// ── 辅助函数 ──

// prepareSheet 创建工作表、删除默认 Sheet1 并写入表头
func (s *exportService) prepareSheet(f *excelize.File, sheetName string, columns []string, widths []float64) error {
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, name := range columns {
		col := colName(i)
		if i < len(widths) {
			f.SetColWidth(sheetName, col, col, widths[i])
		}
		f.SetCellValue(sheetName, cell(col, 1), name)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(columns)-1), 1), headerStyle)
	return nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return col + strconv.Itoa(row)
}
