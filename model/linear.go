package model

import "github.com/rentkit/rentkit/core"

// LinearModel 对三个归一化分量做线性加权：
//
//	score = w_aff * normalized_rent + w_amen * normalized_amenity + w_safe * normalized_safety
//
// 权重在构造时归一化（和为 1），因此：
//   - 综合分落在 [0,1]（分量在 [0,1] 时）
//   - 排名对用户权重的整体缩放不变
//   - 综合分对 normalized_amenity / normalized_safety 单调不减，
//     且租金越低 normalized_rent 越高，便宜绝不会被惩罚
type LinearModel struct {
	Weights core.WeightVector // 已归一化权重（NewLinearModel 保证）
}

// NewLinearModel 用用户权重构造线性模型。
// 负权重返回 INVALID_INPUT；全零权重退化为等权 1/3。
func NewLinearModel(w core.WeightVector) (*LinearModel, error) {
	nw, err := w.Normalize()
	if err != nil {
		return nil, err
	}
	return &LinearModel{Weights: nw}, nil
}

func (m *LinearModel) Name() string { return "linear" }

func (m *LinearModel) Score(c *core.Candidate) (float64, error) {
	return m.Weights.Affordability*c.NormalizedRent +
		m.Weights.Amenities*c.NormalizedAmenity +
		m.Weights.Safety*c.NormalizedSafety, nil
}
