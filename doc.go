// Package rentkit 是一个社区租房价值排名工具包（Rental Ranking Kit）。
//
// 设计要点：
// - Snapshot-first: 数据集在 Load 时校验一次并冻结为不可变快照，单写多读
// - Pipeline-first: 查询逻辑通过 Node 串联（Filter → Normalize → Rank → ReRank）
// - Labels-first: 候选全链路携带 labels，支持 explain / 观测
package rentkit

import "github.com/rentkit/rentkit/pipeline"

// 轻量 facade：便于用户直接 import "rentkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindFilter    = pipeline.KindFilter
	KindNormalize = pipeline.KindNormalize
	KindRank      = pipeline.KindRank
	KindReRank    = pipeline.KindReRank
)
