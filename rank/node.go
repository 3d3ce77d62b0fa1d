package rank

import (
	"context"
	"sort"

	"github.com/rentkit/rentkit/core"
	"github.com/rentkit/rentkit/model"
	"github.com/rentkit/rentkit/pipeline"
	"github.com/rentkit/rentkit/pkg/utils"
)

// Node 是打分排序 Node（不限定模型类型，LinearModel 是默认实现）。
// - 写入 labels：rank_model
// - 更新 Candidate.Score 并按分数降序排序
//
// 决定性：同分时按社区名升序、再按县名升序打破平局，保证排名可复现。
// 空输入返回 EMPTY_DATASET，由调用方以“无结果”呈现而不是崩溃。
type Node struct {
	Model model.ValueModel
}

func (n *Node) Name() string        { return "rank.model" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *Node) Process(
	_ context.Context,
	_ *core.QueryContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(items) == 0 {
		return nil, core.ErrEmptyDataset
	}
	if n.Model == nil {
		return nil, core.NewDomainError(core.ModuleRank, core.ErrorCodeInternalError, "rank: no value model configured")
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		score, err := n.Model.Score(it)
		if err != nil {
			return nil, err
		}
		it.Score = score
		it.PutLabel("rank_model", utils.Label{Value: n.Model.Name(), Source: "rank"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i] == nil {
			return false
		}
		if items[j] == nil {
			return true
		}
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].County < items[j].County
	})
	return items, nil
}
