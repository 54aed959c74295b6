package attendance

import "strings"

// Scope 报表范围
type Scope string

const (
	ScopeMonth Scope = "month"
	ScopeYear  Scope = "year"
)

// ParseScope 解析报表范围
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeMonth:
		return ScopeMonth, nil
	case ScopeYear:
		return ScopeYear, nil
	}
	return "", ErrInvalidScope
}

// ReportColumns 报表列名
var ReportColumns = []string{"Date", "Employee", "Status", "Reason"}

// SummaryEmployee 汇总行 Employee 列的文本
const SummaryEmployee = "Summary"

// ReportRow 报表中的一行
type ReportRow struct {
	Date     string `json:"date"`
	Employee string `json:"employee"`
	Status   string `json:"status"`
	Reason   string `json:"reason"`
	Summary  bool   `json:"summary,omitempty"`
}

// Values 按 ReportColumns 顺序返回单元格值
func (r ReportRow) Values() []string {
	return []string{r.Date, r.Employee, r.Status, r.Reason}
}

// Report 月/年考勤报表
type Report struct {
	Scope  Scope       `json:"scope"`
	Period string      `json:"period"` // "2024-03" 或 "2024"
	Rows   []ReportRow `json:"rows"`
}

// FileName 下载文件名：Attendance_2024-03.xlsx / Attendance_2024.xlsx
func (r *Report) FileName() string {
	return "Attendance_" + r.Period + ".xlsx"
}

// SheetName 工作表名
func (r *Report) SheetName() string {
	if r.Scope == ScopeYear {
		return "Year Data"
	}
	return "Month Data"
}

// BuildReport 生成 anchorDate 所在月/年的报表
//
// 日期按字符串解析出的年、月与 anchorDate 比较。每个匹配日期先输出
// 花名册中每位员工一行（无记录为 Not Marked），再追加一行汇总。
// 没有任何员工行时返回 ErrEmptyReport。
func BuildReport(sheet *Sheet, employees []string, scope Scope, anchorDate string) (*Report, error) {
	if scope != ScopeMonth && scope != ScopeYear {
		return nil, ErrInvalidScope
	}
	anchor, err := ParseDay(anchorDate)
	if err != nil {
		return nil, err
	}

	report := &Report{Scope: scope}
	if scope == ScopeMonth {
		report.Period = anchor.Format("2006-01")
	} else {
		report.Period = anchor.Format("2006")
	}

	employeeRows := 0
	for _, date := range sheet.Dates() {
		day, err := ParseDay(date)
		if err != nil {
			continue
		}
		if day.Year() != anchor.Year() {
			continue
		}
		if scope == ScopeMonth && day.Month() != anchor.Month() {
			continue
		}

		for _, emp := range employees {
			row := ReportRow{Date: date, Employee: emp, Status: NotMarked}
			if e, ok := sheet.Lookup(date, emp); ok {
				row.Status = string(e.Status)
				row.Reason = e.Reason
			}
			report.Rows = append(report.Rows, row)
			employeeRows++
		}

		report.Rows = append(report.Rows, ReportRow{
			Date:     date,
			Employee: SummaryEmployee,
			Status:   Summarize(sheet, date).Label(),
			Summary:  true,
		})
	}

	if employeeRows == 0 {
		return nil, ErrEmptyReport
	}
	return report, nil
}

// DayRow 单日视图中的一行
type DayRow struct {
	Employee string `json:"employee"`
	Status   string `json:"status"`
	Reason   string `json:"reason"`
}

// BuildDay 单日视图：花名册每位员工一行，无记录为 Not Marked
func BuildDay(sheet *Sheet, employees []string, date string) []DayRow {
	rows := make([]DayRow, 0, len(employees))
	for _, emp := range employees {
		row := DayRow{Employee: emp, Status: NotMarked}
		if e, ok := sheet.Lookup(date, emp); ok {
			row.Status = string(e.Status)
			row.Reason = e.Reason
		}
		rows = append(rows, row)
	}
	return rows
}
