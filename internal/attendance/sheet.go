package attendance

import (
	"sort"
	"strings"
	"time"

	"letnex-erp/backend/internal/model"
)

// NotMarked 当日无记录时的展示状态
const NotMarked = "Not Marked"

// Entry 某员工某日的考勤
type Entry struct {
	Status model.AttendanceStatus `json:"status"`
	Reason string                 `json:"reason"`
}

// Sheet date → employee → Entry
type Sheet struct {
	days map[string]map[string]Entry
}

// NewSheet 创建空 Sheet
func NewSheet() *Sheet {
	return &Sheet{days: make(map[string]map[string]Entry)}
}

// Reshape 将原始记录整理为 Sheet
// 同一 (date, employee) 出现多次时，以输入顺序中最后一条为准
func Reshape(records []model.Attendance) *Sheet {
	s := NewSheet()
	for _, r := range records {
		s.Set(r.Date, r.Employee, Entry{Status: r.Status, Reason: r.Reason})
	}
	return s
}

// Lookup 查询某员工某日的记录
func (s *Sheet) Lookup(date, employee string) (Entry, bool) {
	e, ok := s.days[date][employee]
	return e, ok
}

// Set 写入一条记录，返回写入前的值以便调用方回滚
func (s *Sheet) Set(date, employee string, e Entry) (prev Entry, existed bool) {
	day, ok := s.days[date]
	if !ok {
		day = make(map[string]Entry)
		s.days[date] = day
	}
	prev, existed = day[employee]
	day[employee] = e
	return prev, existed
}

// Restore 将单元格恢复为 Set 之前的状态
func (s *Sheet) Restore(date, employee string, prev Entry, existed bool) {
	if existed {
		s.Set(date, employee, prev)
		return
	}
	s.delete(date, employee)
}

// Dates 返回所有有记录的日期（升序）
func (s *Sheet) Dates() []string {
	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// len 记录总数
func (s *Sheet) len() int {
	n := 0
	for _, day := range s.days {
		n += len(day)
	}
	return n
}

// removeEmployee 从所有日期中移除该员工，返回移除条数
func (s *Sheet) removeEmployee(name string) int {
	removed := 0
	for date := range s.days {
		if _, ok := s.days[date][name]; ok {
			s.delete(date, name)
			removed++
		}
	}
	return removed
}

// RetainEmployees 只保留花名册内员工的记录
func (s *Sheet) RetainEmployees(roster []string) {
	keep := make(map[string]bool, len(roster))
	for _, name := range roster {
		keep[name] = true
	}
	drop := make(map[string]bool)
	for _, day := range s.days {
		for name := range day {
			if !keep[name] {
				drop[name] = true
			}
		}
	}
	for name := range drop {
		s.removeEmployee(name)
	}
}

func (s *Sheet) delete(date, employee string) {
	day, ok := s.days[date]
	if !ok {
		return
	}
	delete(day, employee)
	if len(day) == 0 {
		delete(s.days, date)
	}
}

// ── 日期辅助 ──

// ParseDay 解析 YYYY-MM-DD
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// IsFuture 判断 day 是否晚于 now 所在时区的当天
func IsFuture(day, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return d.After(today)
}
