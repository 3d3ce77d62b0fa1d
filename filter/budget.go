package filter

import (
	"context"

	"github.com/rentkit/rentkit/core"
)

// BudgetFilter 按预算上限过滤：平均月租超出 MaxRent 的候选被移除。
type BudgetFilter struct {
	// MaxRent 是预算上限；<= 0 时回退到 QueryContext.MaxRent。
	// 两者都 <= 0 表示不限预算（全部保留）。
	MaxRent float64
}

func NewBudgetFilter(maxRent float64) *BudgetFilter {
	return &BudgetFilter{MaxRent: maxRent}
}

func (f *BudgetFilter) Name() string {
	return "filter.budget"
}

func (f *BudgetFilter) ShouldFilter(
	_ context.Context,
	qctx *core.QueryContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil || c.Neighborhood == nil {
		return true, nil
	}

	maxRent := f.MaxRent
	if maxRent <= 0 && qctx != nil {
		maxRent = qctx.MaxRent
	}
	if maxRent <= 0 {
		return false, nil
	}
	return c.AverageRent > maxRent, nil
}
