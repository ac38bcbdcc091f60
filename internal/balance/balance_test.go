package balance_test

import (
	"testing"

	"go-leaveai/internal/balance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyApproval(t *testing.T) {
	cases := []struct {
		name          string
		total         int64
		used          int64
		pending       int64
		days          int64
		wantUsed      int64
		wantPending   int64
		wantRemaining int64
	}{
		{"books pending days", 20, 5, 3, 3, 8, 0, 12},
		{"pending never negative", 20, 5, 1, 4, 9, 0, 11},
		{"other pending requests stay", 20, 0, 10, 2, 2, 8, 18},
		{"overdrawn allocation", 10, 9, 0, 3, 12, 0, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := balance.ApplyApproval(balance.LeaveBalance{
				TotalDays:   decimal.NewFromInt(tc.total),
				UsedDays:    decimal.NewFromInt(tc.used),
				PendingDays: decimal.NewFromInt(tc.pending),
			}, decimal.NewFromInt(tc.days))

			assert.True(t, decimal.NewFromInt(tc.wantUsed).Equal(got.UsedDays), "used %s", got.UsedDays)
			assert.True(t, decimal.NewFromInt(tc.wantPending).Equal(got.PendingDays), "pending %s", got.PendingDays)
			assert.True(t, decimal.NewFromInt(tc.wantRemaining).Equal(got.RemainingDays), "remaining %s", got.RemainingDays)
			assert.True(t, got.RemainingDays.Equal(got.TotalDays.Sub(got.UsedDays)))
			assert.False(t, got.PendingDays.IsNegative())
		})
	}
}
