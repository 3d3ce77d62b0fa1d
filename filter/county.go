package filter

import (
	"context"

	"github.com/rentkit/rentkit/core"
)

// CountyFilter 按县名精确匹配过滤：不属于目标县的候选被移除。
type CountyFilter struct {
	// County 是目标县名；为空时回退到 QueryContext.County。
	// 两者都为空表示不限县（全部保留）。
	County string
}

func NewCountyFilter(county string) *CountyFilter {
	return &CountyFilter{County: county}
}

func (f *CountyFilter) Name() string {
	return "filter.county"
}

func (f *CountyFilter) ShouldFilter(
	_ context.Context,
	qctx *core.QueryContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil || c.Neighborhood == nil {
		return true, nil
	}

	county := f.County
	if county == "" && qctx != nil {
		county = qctx.County
	}
	if county == "" {
		return false, nil
	}
	return c.County != county, nil
}
