package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rentkit/rentkit/core"
)

// StoreSource 从 KV 存储读取一份 JSON 数组形式的记录快照。
// 典型用法：离线装载脚本把合并好的表格写入 Redis，引擎启动时从同一 key 读取。
type StoreSource struct {
	Store core.Store
	Key   string // 例如 "dataset:neighborhoods"
}

func (s *StoreSource) Name() string { return "source.store" }

func (s *StoreSource) Fetch(ctx context.Context) ([]*core.Neighborhood, error) {
	if s.Store == nil || s.Key == "" {
		return nil, core.NewDomainError(core.ModuleSource, core.ErrorCodeInvalidInput, "source: store and key are required")
	}

	data, err := s.Store.Get(ctx, s.Key)
	if err != nil {
		return nil, err
	}

	var records []*core.Neighborhood
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("source: parse %s: %w", s.Key, err)
	}
	return records, nil
}
