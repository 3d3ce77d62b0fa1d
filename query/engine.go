// Package query 是引擎的查询门面：组合过滤、归一化、打分与聚合，
// 供展示层（外部协作方）以一次调用完成一次交互。
package query

import (
	"context"

	"github.com/rentkit/rentkit/core"
	"github.com/rentkit/rentkit/dataset"
	"github.com/rentkit/rentkit/filter"
	"github.com/rentkit/rentkit/model"
	"github.com/rentkit/rentkit/norm"
	"github.com/rentkit/rentkit/pipeline"
	"github.com/rentkit/rentkit/rank"
	"github.com/rentkit/rentkit/rerank"
)

// Query 是一次排名查询的全部输入。
type Query struct {
	County  string             // 县过滤，空串表示全部
	MaxRent float64            // 预算上限，<= 0 表示不限制
	Expr    string             // 可选 CEL 过滤表达式（见 pkg/dsl）
	Weights core.WeightVector  // 用户权重（未归一化）
	TopN    int                // <= 0 返回完整排名
	Params  map[string]any     // 请求级上下文参数
}

// Result 是一次排名查询的输出：有序候选列表 + 实际生效的归一化权重
// （后者用于界面展示/审计，权重语义不必由展示层重推一遍）。
type Result struct {
	Items          []*core.Candidate `json:"items"`
	AppliedWeights core.WeightVector `json:"applied_weights"`
}

// Engine 持有关系存储与可选的结果缓存。
// 所有查询都是对当前不可变快照的纯计算，可安全并发调用。
type Engine struct {
	data  *dataset.Store
	cache *ResultCache
}

// Option 配置 Engine 的可选能力。
type Option func(*Engine)

// WithCache 启用结果缓存：命中时跳过整条 pipeline。
// ttlSeconds <= 0 表示不过期（快照版本变化后旧 key 自然失效）。
func WithCache(s core.Store, ttlSeconds int) Option {
	return func(e *Engine) {
		e.cache = &ResultCache{Store: s, TTL: ttlSeconds}
	}
}

func NewEngine(data *dataset.Store, opts ...Option) *Engine {
	e := &Engine{data: data}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TopNeighborhoods 执行一次完整查询：过滤 → 归一化 → 打分排序 → TopN 截断。
// 归一化在过滤后的视图上进行，排名始终反映用户正在比较的集合。
// 过滤后视图为空时返回 EMPTY_DATASET（可用 core.IsEmptyDataset 判定），
// 调用方应呈现“无匹配社区”而不是崩溃。
func (e *Engine) TopNeighborhoods(ctx context.Context, q Query) (*Result, error) {
	applied, err := q.Weights.Normalize()
	if err != nil {
		return nil, err
	}

	snap := e.data.Snapshot()
	if e.cache != nil {
		if res, ok := e.cache.Get(ctx, snap.Version(), q); ok {
			return res, nil
		}
	}

	items := candidates(snap.Filter(q.County, q.MaxRent))

	qctx := &core.QueryContext{
		County:  q.County,
		MaxRent: q.MaxRent,
		Expr:    q.Expr,
		Weights: q.Weights,
		Params:  q.Params,
	}

	nodes := make([]pipeline.Node, 0, 4)
	if q.Expr != "" {
		nodes = append(nodes, &filter.FilterNode{Filters: []filter.Filter{filter.NewExprFilter(q.Expr)}})
	}
	nodes = append(nodes,
		&norm.MinMaxNode{},
		&rank.Node{Model: &model.LinearModel{Weights: applied}},
		&rerank.TopNNode{N: q.TopN},
	)

	ranked, err := (&pipeline.Pipeline{Nodes: nodes}).Run(ctx, qctx, items)
	if err != nil {
		return nil, err
	}

	res := &Result{Items: ranked, AppliedWeights: applied}
	if e.cache != nil {
		e.cache.Put(ctx, snap.Version(), q, res) // 尽力而为，失败不影响结果
	}
	return res, nil
}

// CountyStats 返回当前快照按县的聚合视图，按县名升序。
func (e *Engine) CountyStats() []core.CountyAggregate {
	return e.data.AggregateByCounty()
}

// Explain 返回单个社区在当前快照全量视图下的三个归一化分量与综合分，
// 支撑“展示底层计算过程”的界面能力。找不到记录时返回 NOT_FOUND。
func (e *Engine) Explain(ctx context.Context, name, county string, weights core.WeightVector) (*core.Candidate, error) {
	m, err := model.NewLinearModel(weights)
	if err != nil {
		return nil, err
	}

	snap := e.data.Snapshot()
	if _, ok := snap.Get(county, name); !ok {
		return nil, core.NewDomainError(core.ModuleQuery, core.ErrorCodeNotFound,
			"query: neighborhood "+name+" not found in county "+county)
	}

	items := candidates(snap.All())
	if _, err := (&norm.MinMaxNode{}).Process(ctx, nil, items); err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.Name == name && it.County == county {
			score, err := m.Score(it)
			if err != nil {
				return nil, err
			}
			it.Score = score
			return it, nil
		}
	}
	// Get 命中后不可能走到这里
	return nil, core.NewDomainError(core.ModuleQuery, core.ErrorCodeInternalError, "query: explain lookup failed")
}

// Summarize 计算一个排名视图的汇总统计（界面顶部的概览指标）。
func Summarize(items []*core.Candidate) core.Summary {
	s := core.Summary{Count: len(items)}
	if s.Count == 0 {
		return s
	}
	for _, it := range items {
		s.MeanRent += it.AverageRent
		s.MeanCrimeRate += it.CrimeRate
		s.MeanScore += it.Score
	}
	n := float64(s.Count)
	s.MeanRent /= n
	s.MeanCrimeRate /= n
	s.MeanScore /= n
	return s
}

func candidates(records []*core.Neighborhood) []*core.Candidate {
	out := make([]*core.Candidate, 0, len(records))
	for _, r := range records {
		out = append(out, core.NewCandidate(r))
	}
	return out
}
