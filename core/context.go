package core

// QueryContext 承载一次查询的过滤条件与权重，贯穿整个 Pipeline 透传。
// 它是每次请求构造的临时对象；数据快照本身不持有任何查询状态。
type QueryContext struct {
	County  string  // 县过滤，空串表示全部
	MaxRent float64 // 预算上限，<= 0 表示不限制
	Expr    string  // 可选的 CEL 过滤表达式（见 pkg/dsl）

	// Weights 是用户权重（未归一化）；归一化由打分组件完成
	Weights WeightVector

	// Params 请求级上下文参数，供自定义 Node / 表达式使用
	// 例如：latitude, longitude, commute_target 等
	Params map[string]any
}
