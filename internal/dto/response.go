package dto

import "time"

// ── 通用格式 ──

// TimestampLayout 响应中 createdAt / updatedAt 的格式
const TimestampLayout = "2006-01-02T15:04:05Z07:00"

// FormatTimestamp 格式化时间戳，零值返回空串
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

// DeleteResponse 删除成功响应
type DeleteResponse struct {
	Message string `json:"message"`
}
