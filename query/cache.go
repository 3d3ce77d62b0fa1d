package query

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rentkit/rentkit/core"
)

// ResultCache 把序列化后的查询结果写入 core.Store。
// key 携带快照版本号：数据集刷新后旧条目自然失效，不需要显式清理。
// 缓存是尽力而为的加速层，读写失败都静默降级为直接计算。
type ResultCache struct {
	Store core.Store
	TTL   int // 秒；<= 0 表示不过期
}

func cacheKey(version int64, q Query) string {
	return fmt.Sprintf("rank:v%d:c=%s:r=%g:e=%s:w=%g,%g,%g:n=%d",
		version, q.County, q.MaxRent, q.Expr,
		q.Weights.Affordability, q.Weights.Amenities, q.Weights.Safety, q.TopN)
}

// Get 按查询签名读取缓存结果。
func (c *ResultCache) Get(ctx context.Context, version int64, q Query) (*Result, bool) {
	if c == nil || c.Store == nil {
		return nil, false
	}
	data, err := c.Store.Get(ctx, cacheKey(version, q))
	if err != nil {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// Put 按查询签名写入缓存结果。
func (c *ResultCache) Put(ctx context.Context, version int64, q Query, res *Result) {
	if c == nil || c.Store == nil || res == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = c.Store.Set(ctx, cacheKey(version, q), data, c.TTL)
}
