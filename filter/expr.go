package filter

import (
	"context"

	"github.com/rentkit/rentkit/core"
	"github.com/rentkit/rentkit/pkg/dsl"
)

// ExprFilter 按 CEL 表达式过滤：表达式求值为 false 的候选被移除。
// 表达式语法见 pkg/dsl，例如 `n.crime_rate < 5.0 && n.grocery_count > 0`。
type ExprFilter struct {
	// Expr 是过滤表达式；为空时回退到 QueryContext.Expr。
	// 两者都为空表示不过滤。
	Expr string
}

func NewExprFilter(expr string) *ExprFilter {
	return &ExprFilter{Expr: expr}
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	qctx *core.QueryContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil || c.Neighborhood == nil {
		return true, nil
	}

	expr := f.Expr
	if expr == "" && qctx != nil {
		expr = qctx.Expr
	}
	if expr == "" {
		return false, nil
	}

	keep, err := dsl.NewEval(c, qctx).Evaluate(expr)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
