package core

// WeightVector 是用户给出的三项相对重要性：可负担性、配套、安全。
// 三项均为非负实数，不要求和为 1；引擎内部统一归一化，
// 因此排名对权重的整体缩放不变。
//
// WeightVector 是每次查询构造的临时输入值对象，不在打分组件上保存状态，
// 以保持 score/rank 的引用透明。
type WeightVector struct {
	Affordability float64 `yaml:"affordability" json:"affordability"`
	Amenities     float64 `yaml:"amenities" json:"amenities"`
	Safety        float64 `yaml:"safety" json:"safety"`
}

// DefaultWeights 返回默认权重（与交互界面滑块的默认档位一致）。
func DefaultWeights() WeightVector {
	return WeightVector{Affordability: 0.4, Amenities: 0.3, Safety: 0.3}
}

// Sum 返回三项权重之和。
func (w WeightVector) Sum() float64 {
	return w.Affordability + w.Amenities + w.Safety
}

// Normalize 返回归一化后的权重副本：
// - 任一权重为负：返回 INVALID_INPUT 错误
// - 总和为 0：退化为等权 1/3（绝不除零）
// - 其余情况：各项除以总和
func (w WeightVector) Normalize() (WeightVector, error) {
	if w.Affordability < 0 || w.Amenities < 0 || w.Safety < 0 {
		return WeightVector{}, NewDomainError(ModuleRank, ErrorCodeInvalidInput, "rank: weights must be non-negative")
	}
	sum := w.Sum()
	if sum == 0 {
		third := 1.0 / 3.0
		return WeightVector{Affordability: third, Amenities: third, Safety: third}, nil
	}
	return WeightVector{
		Affordability: w.Affordability / sum,
		Amenities:     w.Amenities / sum,
		Safety:        w.Safety / sum,
	}, nil
}
