package attendance

import (
	"errors"
	"fmt"

	apperrors "letnex-erp/backend/pkg/errors"
)

var (
	ErrInvalidDate     = fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrInvalidInput)
	ErrFutureDate      = fmt.Errorf("%w: attendance cannot be marked for a future date", apperrors.ErrInvalidInput)
	ErrInvalidStatus   = fmt.Errorf("%w: unknown attendance status", apperrors.ErrInvalidInput)
	ErrReasonRequired  = fmt.Errorf("%w: a reason is required for this status", apperrors.ErrMissingFields)
	ErrMissingEmployee = fmt.Errorf("%w: employee", apperrors.ErrMissingFields)
	ErrInvalidScope    = fmt.Errorf("%w: scope must be month or year", apperrors.ErrInvalidInput)

	// ErrEmptyReport 导出区间内没有任何记录，属于提示而非错误
	ErrEmptyReport = errors.New("no data found for this period")
)
