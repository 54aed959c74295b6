package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"letnex-erp/backend/config"
	"letnex-erp/backend/internal/attendance"
	"letnex-erp/backend/internal/dto"
	"letnex-erp/backend/internal/model"
	"letnex-erp/backend/internal/repository"
	apperrors "letnex-erp/backend/pkg/errors"
)

// AttendanceService 考勤业务接口
type AttendanceService interface {
	List(ctx context.Context) ([]dto.AttendanceResponse, error)
	// Mark 按 (date, employee) upsert，返回 created=true 表示新建
	Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*dto.SaveAttendanceResponse, bool, error)
	Day(ctx context.Context, date string) (*dto.AttendanceDayResponse, error)
	Summary(ctx context.Context, date string) (*dto.AttendanceSummaryResponse, error)
	// Print 生成单日打印用 HTML
	Print(ctx context.Context, date string) ([]byte, error)
}

type attendanceService struct {
	repo   *repository.Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(cfg *config.AttendanceConfig, repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{
		repo:   repo,
		loc:    cfg.Location(),
		now:    time.Now,
		logger: logger,
	}
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context) ([]dto.AttendanceResponse, error) {
	recs, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, apperrors.Store("list attendance", err)
	}

	result := make([]dto.AttendanceResponse, 0, len(recs))
	for i := range recs {
		result = append(result, toAttendanceResponse(&recs[i]))
	}
	return result, nil
}

// ────────────────────── Mark ──────────────────────

func (s *attendanceService) Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*dto.SaveAttendanceResponse, bool, error) {
	status, ok := model.ParseAttendanceStatus(req.Status)
	if !ok {
		return nil, false, attendance.ErrInvalidStatus
	}

	// 未来日期在任何存储调用之前拒绝
	day, err := attendance.ParseDay(req.Date)
	if err != nil {
		return nil, false, err
	}
	if attendance.IsFuture(day, s.today()) {
		return nil, false, attendance.ErrFutureDate
	}
	date := day.Format(model.DateLayout)

	recs, err := s.repo.Attendance.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("查询当日考勤失败", zap.String("date", date), zap.Error(err))
		return nil, false, apperrors.Store("list attendance by date", err)
	}

	tracker := attendance.NewTracker(attendance.Reshape(recs), s.repo.Attendance, s.today)
	rec, created, err := tracker.SetStatus(ctx, date, req.Employee, status, req.Reason)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) || errors.Is(err, apperrors.ErrMissingFields) {
			return nil, false, err
		}
		s.logger.Error("保存考勤失败",
			zap.String("date", date),
			zap.String("employee", req.Employee),
			zap.Error(err),
		)
		return nil, false, apperrors.Store("upsert attendance", err)
	}

	// 回读以拿到数据库分配的 ID 与时间戳
	stored, err := s.repo.Attendance.Find(ctx, rec.Date, rec.Employee)
	if err != nil {
		s.logger.Warn("回读考勤记录失败", zap.String("date", rec.Date), zap.Error(err))
		stored = rec
	}

	msg := "Updated successfully"
	if created {
		msg = "Added successfully"
	}
	return &dto.SaveAttendanceResponse{Message: msg, Data: toAttendanceResponse(stored)}, created, nil
}

// ────────────────────── Day / Summary ──────────────────────

func (s *attendanceService) Day(ctx context.Context, date string) (*dto.AttendanceDayResponse, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	sheet, roster, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	return &dto.AttendanceDayResponse{
		Date:    date,
		Rows:    attendance.BuildDay(sheet, roster, date),
		Summary: attendance.Summarize(sheet, date),
	}, nil
}

func (s *attendanceService) Summary(ctx context.Context, date string) (*dto.AttendanceSummaryResponse, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	sheet, _, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	sum := attendance.Summarize(sheet, date)
	return &dto.AttendanceSummaryResponse{Date: date, Summary: sum, Total: sum.Total()}, nil
}

// ────────────────────── Print ──────────────────────

func (s *attendanceService) Print(ctx context.Context, date string) ([]byte, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	sheet, roster, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	view, err := attendance.BuildPrintView(sheet, roster, date)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := view.Render(&buf); err != nil {
		s.logger.Error("渲染打印视图失败", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── 内部辅助方法 ──

// today 考勤时区下的当前时间
func (s *attendanceService) today() time.Time {
	return s.now().In(s.loc)
}

// resolveDate 校验日期，空值取今天
func (s *attendanceService) resolveDate(date string) (string, error) {
	if strings.TrimSpace(date) == "" {
		return s.today().Format(model.DateLayout), nil
	}
	day, err := attendance.ParseDay(date)
	if err != nil {
		return "", err
	}
	return day.Format(model.DateLayout), nil
}

// loadDay 从存储重建当日 Sheet，只保留在册成员
func (s *attendanceService) loadDay(ctx context.Context, date string) (*attendance.Sheet, []string, error) {
	roster, err := loadRoster(ctx, s.repo)
	if err != nil {
		s.logger.Error("查询花名册失败", zap.Error(err))
		return nil, nil, err
	}
	recs, err := s.repo.Attendance.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("查询当日考勤失败", zap.String("date", date), zap.Error(err))
		return nil, nil, apperrors.Store("list attendance by date", err)
	}

	sheet := attendance.Reshape(recs)
	sheet.RetainEmployees(roster)
	return sheet, roster, nil
}

func toAttendanceResponse(rec *model.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:        rec.AttendanceID,
		Date:      rec.Date,
		Employee:  rec.Employee,
		Status:    string(rec.Status),
		Reason:    rec.Reason,
		CreatedAt: dto.FormatTimestamp(rec.CreatedAt),
		UpdatedAt: dto.FormatTimestamp(rec.UpdatedAt),
	}
}
