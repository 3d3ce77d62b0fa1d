package model

import "github.com/rentkit/rentkit/core"

// ValueModel 是打分阶段的最小抽象：输入一条已归一化的候选，输出一个可比较的综合分。
// 权重是线性且用户指定的；这里不做任何统计/机器学习意义上的拟合。
type ValueModel interface {
	Name() string
	Score(c *core.Candidate) (float64, error)
}
