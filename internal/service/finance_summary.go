package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"letnex-erp/backend/internal/dto"
	apperrors "letnex-erp/backend/pkg/errors"
)

// ErrInvalidPeriod 汇总周期非法
var ErrInvalidPeriod = fmt.Errorf("%w: period must be monthly or yearly", apperrors.ErrInvalidInput)

const (
	periodMonthly = "monthly"
	periodYearly  = "yearly"
)

// amountEntry 参与汇总的一笔金额
type amountEntry struct {
	date   time.Time
	amount decimal.Decimal
}

// summarizeAmounts 按月（2006-01）或按年（2006）累计金额，周期升序
func summarizeAmounts(period string, entries []amountEntry) (*dto.FinanceSummaryResponse, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		period = periodMonthly
	}

	var layout string
	switch period {
	case periodMonthly:
		layout = "2006-01"
	case periodYearly:
		layout = "2006"
	default:
		return nil, ErrInvalidPeriod
	}

	buckets := make(map[string]*dto.FinanceBucket)
	total := decimal.Zero
	for _, e := range entries {
		key := e.date.Format(layout)
		b, ok := buckets[key]
		if !ok {
			b = &dto.FinanceBucket{Period: key, Total: decimal.Zero}
			buckets[key] = b
		}
		b.Total = b.Total.Add(e.amount)
		b.Count++
		total = total.Add(e.amount)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	resp := &dto.FinanceSummaryResponse{
		Period:  period,
		Buckets: make([]dto.FinanceBucket, 0, len(keys)),
		Total:   total,
	}
	for _, k := range keys {
		resp.Buckets = append(resp.Buckets, *buckets[k])
	}
	return resp, nil
}
