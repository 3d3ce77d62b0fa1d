package pipeline

import (
	"context"

	"github.com/rentkit/rentkit/core"
)

// Pipeline 是 Rentkit 的核心抽象：把一次查询拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	qctx *core.QueryContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, qctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
