package attendance

import (
	"context"
	"strings"
	"time"

	"letnex-erp/backend/internal/model"
)

// Saver 考勤持久化接口，按 (date, employee) upsert
type Saver interface {
	Upsert(ctx context.Context, rec *model.Attendance) error
}

// Tracker 在 Sheet 上执行考勤标记
//
// 写入先作用于 Sheet（待确认），存储确认后生效；
// 存储失败时该单元格恢复为最后一次确认的值。
type Tracker struct {
	sheet *Sheet
	saver Saver
	now   func() time.Time
}

// NewTracker 创建 Tracker；sheet 必须包含目标日期已有的记录
func NewTracker(sheet *Sheet, saver Saver, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{sheet: sheet, saver: saver, now: now}
}

// SetStatus 标记某员工某日的考勤，返回存储后的记录及是否为新建
func (t *Tracker) SetStatus(ctx context.Context, date, employee string, status model.AttendanceStatus, reason string) (*model.Attendance, bool, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, false, err
	}
	if IsFuture(day, t.now()) {
		return nil, false, ErrFutureDate
	}
	date = day.Format(model.DateLayout)

	employee = strings.TrimSpace(employee)
	if employee == "" {
		return nil, false, ErrMissingEmployee
	}
	if !status.Valid() {
		return nil, false, ErrInvalidStatus
	}

	reason = strings.TrimSpace(reason)
	if status == model.StatusPresent {
		reason = ""
	}

	// 状态不变时允许只修改原因；其他情况转入非出勤状态都必须填写原因
	cur, exists := t.sheet.Lookup(date, employee)
	if status.RequiresReason() && reason == "" && !(exists && cur.Status == status) {
		return nil, false, ErrReasonRequired
	}

	prev, existed := t.sheet.Set(date, employee, Entry{Status: status, Reason: reason})

	rec := &model.Attendance{
		Date:     date,
		Employee: employee,
		Status:   status,
		Reason:   reason,
	}
	if err := t.saver.Upsert(ctx, rec); err != nil {
		t.sheet.Restore(date, employee, prev, existed)
		return nil, false, err
	}

	return rec, !existed, nil
}
