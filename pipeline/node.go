package pipeline

import (
	"context"

	"github.com/rentkit/rentkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindFilter    Kind = "filter"    // 过滤阶段：剔除不满足县/预算/表达式约束的候选
	KindNormalize Kind = "normalize" // 归一化阶段：在当前视图上把原始指标映射到 [0,1]
	KindRank      Kind = "rank"      // 排序阶段：按权重合成综合分并排序
	KindReRank    Kind = "rerank"    // 重排阶段：在排序结果上做截断/业务调优
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 items -> 输出 items”的形态，方便 Filter 截断、Rank 排序、ReRank 重排等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		qctx *core.QueryContext,
		items []*core.Candidate,
	) ([]*core.Candidate, error)
}
