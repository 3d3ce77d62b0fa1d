// Package source 定义数据装载边界：外部协作方（文件解析、一次性抓取脚本等）
// 把已经落地的表格数据经由 Source 交给引擎。引擎自身不发起任何远程指标调用；
// 这里只负责把三类来源（租金、配套、犯罪率）按主键合并成完整记录。
package source

import (
	"context"

	"github.com/rentkit/rentkit/core"
)

// Source 是基础记录来源：提供带 name/county/city/average_rent 的社区记录。
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]*core.Neighborhood, error)
}

// Amenities 是一个社区的配套设施计数。
type Amenities struct {
	Restaurants int `json:"restaurants"`
	Shops       int `json:"shops"`
	Groceries   int `json:"groceries"`
}

// Total 返回配套设施总数。
func (a Amenities) Total() int { return a.Restaurants + a.Shops + a.Groceries }

// AmenitySource 提供按社区名索引的配套数据（富化用，缺失时保持零值）。
type AmenitySource interface {
	Name() string
	Fetch(ctx context.Context) (map[string]Amenities, error)
}

// CrimeSource 提供按县名索引的犯罪率数据（富化用，缺失时保持零值）。
type CrimeSource interface {
	Name() string
	Fetch(ctx context.Context) (map[string]float64, error)
}
