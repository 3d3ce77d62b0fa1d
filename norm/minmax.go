// Package norm 实现归一化层：把租金、配套、犯罪率三个异质指标
// 映射到可比较的 [0,1] 期望方向分值上。
package norm

import (
	"context"

	"github.com/rentkit/rentkit/core"
	"github.com/rentkit/rentkit/pipeline"
	"github.com/rentkit/rentkit/pkg/utils"
)

// Ranges 保存一个视图上三个指标的极值。
type Ranges struct {
	MinRent, MaxRent       float64
	MinAmenity, MaxAmenity float64
	MinCrime, MaxCrime     float64
}

// RangesOf 扫描视图计算三个指标的极值。空视图返回零值。
func RangesOf(items []*core.Candidate) Ranges {
	var r Ranges
	for i, it := range items {
		if it == nil || it.Neighborhood == nil {
			continue
		}
		amenity := float64(it.AmenityCount)
		if i == 0 {
			r.MinRent, r.MaxRent = it.AverageRent, it.AverageRent
			r.MinAmenity, r.MaxAmenity = amenity, amenity
			r.MinCrime, r.MaxCrime = it.CrimeRate, it.CrimeRate
			continue
		}
		r.MinRent = min(r.MinRent, it.AverageRent)
		r.MaxRent = max(r.MaxRent, it.AverageRent)
		r.MinAmenity = min(r.MinAmenity, amenity)
		r.MaxAmenity = max(r.MaxAmenity, amenity)
		r.MinCrime = min(r.MinCrime, it.CrimeRate)
		r.MaxCrime = max(r.MaxCrime, it.CrimeRate)
	}
	return r
}

// MinMaxNode 是归一化 Node：在“当前视图”（进入本节点的 items）上做
// min-max 归一化，而不是全量数据集——归一化始终反映用户正在比较的集合。
//
// 三个指标的期望方向：
//   - 租金越低越好：    normalized_rent    = (max_rent - rent) / (max_rent - min_rent)
//   - 配套越多越好：    normalized_amenity = (count - min_count) / (max_count - min_count)
//   - 犯罪率越低越好：  normalized_safety  = (max_crime - crime) / (max_crime - min_crime)
//
// 退化情形：某指标在视图上 max == min（包括只有一条记录的视图）时，
// 该指标对所有候选记为 1.0——视为并列最优而不是未定义，
// 既避免除零，也避免惩罚单条记录的视图。退化指标以 norm_degenerate 标签标出。
type MinMaxNode struct{}

func (n *MinMaxNode) Name() string        { return "norm.minmax" }
func (n *MinMaxNode) Kind() pipeline.Kind { return pipeline.KindNormalize }

func (n *MinMaxNode) Process(
	_ context.Context,
	_ *core.QueryContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(items) == 0 {
		return items, nil
	}

	r := RangesOf(items)
	rentSpan := r.MaxRent - r.MinRent
	amenitySpan := r.MaxAmenity - r.MinAmenity
	crimeSpan := r.MaxCrime - r.MinCrime

	for _, it := range items {
		if it == nil {
			continue
		}

		if rentSpan > 0 {
			it.NormalizedRent = (r.MaxRent - it.AverageRent) / rentSpan
		} else {
			it.NormalizedRent = 1.0
			it.PutLabel("norm_degenerate", utils.Label{Value: "rent", Source: "normalize"})
		}

		if amenitySpan > 0 {
			it.NormalizedAmenity = (float64(it.AmenityCount) - r.MinAmenity) / amenitySpan
		} else {
			it.NormalizedAmenity = 1.0
			it.PutLabel("norm_degenerate", utils.Label{Value: "amenity", Source: "normalize"})
		}

		if crimeSpan > 0 {
			it.NormalizedSafety = (r.MaxCrime - it.CrimeRate) / crimeSpan
		} else {
			it.NormalizedSafety = 1.0
			it.PutLabel("norm_degenerate", utils.Label{Value: "crime", Source: "normalize"})
		}
	}
	return items, nil
}
