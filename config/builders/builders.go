// Package builders 通过 init 注册全部内置 Node 的构建器。
// 配置驱动的入口需要空导入本包：
//
//	import _ "github.com/rentkit/rentkit/config/builders"
package builders

import (
	"fmt"

	"github.com/rentkit/rentkit/config"
	"github.com/rentkit/rentkit/core"
	"github.com/rentkit/rentkit/filter"
	"github.com/rentkit/rentkit/model"
	"github.com/rentkit/rentkit/norm"
	"github.com/rentkit/rentkit/pipeline"
	"github.com/rentkit/rentkit/pkg/conv"
	"github.com/rentkit/rentkit/rank"
	"github.com/rentkit/rentkit/rerank"
)

func init() {
	config.Register("filter.county", buildCountyFilterNode)
	config.Register("filter.budget", buildBudgetFilterNode)
	config.Register("filter.expr", buildExprFilterNode)
	config.Register("filter", buildFilterNode)
	config.Register("norm.minmax", buildMinMaxNode)
	config.Register("rank.linear", buildRankNode)
	config.Register("rerank.topn", buildTopNNode)
}

func buildCountyFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	county := conv.ConfigGet[string](cfg, "county", "")
	return &filter.FilterNode{Filters: []filter.Filter{filter.NewCountyFilter(county)}}, nil
}

func buildBudgetFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	maxRent := conv.ConfigGetFloat64(cfg, "max_rent", 0)
	return &filter.FilterNode{Filters: []filter.Filter{filter.NewBudgetFilter(maxRent)}}, nil
}

func buildExprFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	expr := conv.ConfigGet[string](cfg, "expr", "")
	return &filter.FilterNode{Filters: []filter.Filter{filter.NewExprFilter(expr)}}, nil
}

// buildFilterNode 构建组合过滤 Node，config 形如：
//
//	filters:
//	  - type: county
//	    county: Alameda
//	  - type: budget
//	    max_rent: 2500
//	  - type: expr
//	    expr: n.crime_rate < 5.0
func buildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		switch filterType := conv.ConfigGet[string](filterMap, "type", ""); filterType {
		case "county":
			filters = append(filters, filter.NewCountyFilter(conv.ConfigGet[string](filterMap, "county", "")))
		case "budget":
			filters = append(filters, filter.NewBudgetFilter(conv.ConfigGetFloat64(filterMap, "max_rent", 0)))
		case "expr":
			filters = append(filters, filter.NewExprFilter(conv.ConfigGet[string](filterMap, "expr", "")))
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}

func buildMinMaxNode(_ map[string]interface{}) (pipeline.Node, error) {
	return &norm.MinMaxNode{}, nil
}

func buildRankNode(cfg map[string]interface{}) (pipeline.Node, error) {
	weightsMap, ok := cfg["weights"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("weights not found")
	}
	weights := conv.MapToFloat64(weightsMap)

	m, err := model.NewLinearModel(core.WeightVector{
		Affordability: weights["affordability"],
		Amenities:     weights["amenities"],
		Safety:        weights["safety"],
	})
	if err != nil {
		return nil, err
	}
	return &rank.Node{Model: m}, nil
}

func buildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	n := conv.ConfigGetInt64(cfg, "n", 0)
	return &rerank.TopNNode{N: int(n)}, nil
}
