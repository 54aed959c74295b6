package errors

import (
	"errors"
	"fmt"
)

// ── 错误分类 ──
//
// 各业务模块的哨兵错误通过 %w 包装以下基础错误，
// Handler 层据此决定 HTTP 状态码。

var (
	// ErrMissingFields 创建时缺少必填字段 → 400
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidInput 枚举值或日期格式非法 → 400
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound 更新/删除目标不存在 → 404
	ErrNotFound = errors.New("not found")
	// ErrConflict 自然键重复 → 409
	ErrConflict = errors.New("already exists")
)

// StoreError 数据库操作失败 → 500
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store 包装仓储层错误，err 为 nil 时返回 nil
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStore 判断是否为数据库错误
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
