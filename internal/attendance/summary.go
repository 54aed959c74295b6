package attendance

import (
	"fmt"
	"strings"

	"letnex-erp/backend/internal/model"
)

// Summary 某日五种状态的计数
type Summary struct {
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	HalfDay  int `json:"halfDay"`
	Training int `json:"training"`
	Holiday  int `json:"holiday"`
}

// Summarize 统计某日已有记录的员工状态
// 当日无记录的员工不计入（表格中显示为 Not Marked）
func Summarize(sheet *Sheet, date string) Summary {
	var sum Summary
	for _, e := range sheet.days[date] {
		sum.add(e.Status)
	}
	return sum
}

func (s *Summary) add(st model.AttendanceStatus) {
	switch st {
	case model.StatusPresent:
		s.Present++
	case model.StatusAbsent:
		s.Absent++
	case model.StatusHalfDay:
		s.HalfDay++
	case model.StatusTraining:
		s.Training++
	case model.StatusHoliday:
		s.Holiday++
	}
}

// Count 返回指定状态的计数
func (s Summary) Count(st model.AttendanceStatus) int {
	switch st {
	case model.StatusPresent:
		return s.Present
	case model.StatusAbsent:
		return s.Absent
	case model.StatusHalfDay:
		return s.HalfDay
	case model.StatusTraining:
		return s.Training
	case model.StatusHoliday:
		return s.Holiday
	}
	return 0
}

// Total 已标记人数
func (s Summary) Total() int {
	return s.Present + s.Absent + s.HalfDay + s.Training + s.Holiday
}

// Label 报表汇总行文本，如 "Present: 3, Absent: 1, Half Day: 0, Training: 0, Holiday: 0"
func (s Summary) Label() string {
	parts := make([]string, 0, len(model.AttendanceStatuses))
	for _, st := range model.AttendanceStatuses {
		parts = append(parts, fmt.Sprintf("%s: %d", st, s.Count(st)))
	}
	return strings.Join(parts, ", ")
}
