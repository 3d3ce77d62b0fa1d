package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rentkit/rentkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("n", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("query", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选过滤表达式的解释器，使用 CEL (Common Expression Language) 实现。
//
// 表达式语法（CEL 标准语法）：
//   - 基础：n.county == "Los Angeles" / n.city != "Oakland"
//   - 数值：n.average_rent <= 2500.0 / n.crime_rate < 3.0
//   - 逻辑：n.county == "Alameda" && n.amenity_count >= 20
//   - 包含：n.name.contains("Park")
//   - 上下文：n.average_rent <= query.max_rent
//
// 示例：
//   - `n.average_rent <= 2000.0 && n.crime_rate < 5.0` → 预算内且低犯罪率
//   - `n.grocery_count > 0 || n.restaurant_count > 5` → 有基本生活配套
type Eval struct {
	cand *core.Candidate
	qctx *core.QueryContext
	env  *cel.Env
}

// NewEval 创建一个新的表达式解释器。
func NewEval(cand *core.Candidate, qctx *core.QueryContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		cand: cand,
		qctx: qctx,
		env:  env,
	}
}

// Evaluate 解析并执行 CEL 表达式，返回布尔结果。
// 空表达式恒为 true。表达式对不存在的 key 求值会报错，
// 需要存在性检查时使用 `label.key != null`。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("dsl: cel environment unavailable")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	n := map[string]interface{}{}
	labelAccessor := map[string]interface{}{}
	if e.cand != nil && e.cand.Neighborhood != nil {
		n = map[string]interface{}{
			"name":               e.cand.Name,
			"county":             e.cand.County,
			"city":               e.cand.City,
			"average_rent":       e.cand.AverageRent,
			"amenity_count":      e.cand.AmenityCount,
			"crime_rate":         e.cand.CrimeRate,
			"restaurant_count":   e.cand.RestaurantCount,
			"shop_count":         e.cand.ShopCount,
			"grocery_count":      e.cand.GroceryCount,
			"population":         e.cand.Population,
			"median_income":      e.cand.MedianIncome,
			"score":              e.cand.Score,
			"normalized_rent":    e.cand.NormalizedRent,
			"normalized_amenity": e.cand.NormalizedAmenity,
			"normalized_safety":  e.cand.NormalizedSafety,
		}
		// label.xxx 直接取 Label 的 value，便于写短表达式
		for k, v := range e.cand.Labels {
			labelAccessor[k] = v.Value
		}
	}

	query := map[string]interface{}{}
	if e.qctx != nil {
		query = map[string]interface{}{
			"county":   e.qctx.County,
			"max_rent": e.qctx.MaxRent,
			"params":   e.qctx.Params,
		}
	}

	return map[string]interface{}{
		"n":     n,
		"label": labelAccessor,
		"query": query,
	}
}
