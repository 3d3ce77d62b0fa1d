package core

import "github.com/rentkit/rentkit/pkg/utils"

// Neighborhood 是排名链路中的核心实体：一个社区在一次数据快照中的原始指标。
// 记录在 Load 时校验一次，之后在会话期间保持不可变；派生分数不落在该结构上。
type Neighborhood struct {
	Name   string `json:"name"`
	County string `json:"county"` // 与 Name 组成联合主键（同县内社区名唯一）
	City   string `json:"city"`

	AverageRent  float64 `json:"average_rent"`  // 平均月租，> 0
	AmenityCount int     `json:"amenity_count"` // 配套设施总数，>= 0
	CrimeRate    float64 `json:"crime_rate"`    // 犯罪率（每千人事件数），>= 0

	// 可选字段：配套设施拆分与人口统计，0 表示未知。
	// 拆分之和不得超过 AmenityCount（Load 时校验）。
	RestaurantCount int     `json:"restaurant_count,omitempty"`
	ShopCount       int     `json:"shop_count,omitempty"`
	GroceryCount    int     `json:"grocery_count,omitempty"`
	Population      int     `json:"population,omitempty"`
	MedianIncome    float64 `json:"median_income,omitempty"`
}

// Key 返回联合主键 "county/name"。
func (n *Neighborhood) Key() string { return n.County + "/" + n.Name }

// Candidate 是单次查询中的统一承载结构：不可变的 Neighborhood 加上
// 派生的归一化分量、综合分与 explain 标签。
// 每次查询重新构建，绝不作为数据源持久化；Labels 用于解释与观测。
type Candidate struct {
	*Neighborhood

	NormalizedRent    float64 `json:"normalized_rent"`    // 归一化租金分，越便宜越高
	NormalizedAmenity float64 `json:"normalized_amenity"` // 归一化配套分
	NormalizedSafety  float64 `json:"normalized_safety"`  // 归一化安全分
	Score             float64 `json:"composite_score"`    // 综合分（加权和）

	Labels map[string]utils.Label `json:"labels,omitempty"`
}

func NewCandidate(n *Neighborhood) *Candidate {
	return &Candidate{
		Neighborhood: n,
		Labels:       make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// GetLabel 获取 Label。
func (c *Candidate) GetLabel(key string) (utils.Label, bool) {
	if c.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := c.Labels[key]
	return lbl, ok
}
