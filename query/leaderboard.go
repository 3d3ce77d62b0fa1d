package query

import (
	"context"

	"github.com/rentkit/rentkit/core"
)

// Leaderboard 把一次排名的综合分发布到 KV 存储的有序集合，
// 供引擎之外的读方（看板、其他服务）按分数读取 TopN，
// 而不必重跑打分链路。member 使用联合主键 "county/name"。
type Leaderboard struct {
	Store core.KeyValueStore
	Key   string // 例如 "leaderboard:all" 或 "leaderboard:Alameda"
}

// Publish 将排名结果写入有序集合。
func (l *Leaderboard) Publish(ctx context.Context, items []*core.Candidate) error {
	if l.Store == nil || l.Key == "" {
		return core.NewDomainError(core.ModuleQuery, core.ErrorCodeInvalidInput, "query: leaderboard store and key are required")
	}
	for _, it := range items {
		if it == nil || it.Neighborhood == nil {
			continue
		}
		if err := l.Store.ZAdd(ctx, l.Key, it.Score, it.Key()); err != nil {
			return err
		}
	}
	return nil
}

// Top 按分数降序读取前 n 个成员（联合主键）。
func (l *Leaderboard) Top(ctx context.Context, n int64) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return l.Store.ZRange(ctx, l.Key, 0, n-1)
}

// Score 读取单个成员的综合分。
func (l *Leaderboard) Score(ctx context.Context, member string) (float64, error) {
	return l.Store.ZScore(ctx, l.Key, member)
}
