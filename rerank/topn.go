package rerank

import (
	"context"

	"github.com/rentkit/rentkit/core"
	"github.com/rentkit/rentkit/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在排序后截取前 N 个社区。
// 通常在排序（Rank）节点之后使用，对应界面上“Top 10 社区”一类的展示。
//
// 示例：
//
//	p := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rank.Node{Model: m},      // 排序
//	        &rerank.TopNNode{N: 10},   // 截取 Top 10
//	    },
//	}
type TopNNode struct {
	// N 要保留的社区数量（Top N）
	// 如果 N <= 0 或未指定，则返回完整排名（不截断）
	// 如果 N > len(items)，则返回所有社区
	N int
}

func (n *TopNNode) Name() string        { return "rerank.topn" }
func (n *TopNNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.QueryContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.N <= 0 {
		return items, nil
	}
	if len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
