package dataset

import (
	"fmt"
	"sync"

	"github.com/rentkit/rentkit/core"
)

// Store 是关系存储：持有当前会话的 Neighborhood 快照并回答过滤/聚合查询。
//
// 并发模型：单写多读。Load 原子替换快照（独占写锁），读操作共享读锁后
// 拿到快照引用即可脱离锁工作——快照本身不可变，读之间互不干扰，
// 进行中的 Load 绝不会被部分观测到。
type Store struct {
	mu      sync.RWMutex
	snap    *Snapshot
	version int64
}

// NewStore 创建一个空的关系存储。
func NewStore() *Store {
	return &Store{snap: newSnapshot(0, nil)}
}

// Load 用 records 原子替换当前数据集。
// 任一记录缺必填字段、取值非法或县+名主键冲突时返回 SCHEMA_INVALID 错误，
// 此时已有快照保持不变。
func (st *Store) Load(records []*core.Neighborhood) error {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r == nil {
			return core.NewSchemaError(fmt.Sprintf("dataset: record %d is nil", i))
		}
		if err := validate(r); err != nil {
			return err
		}
		key := r.Key()
		if _, dup := seen[key]; dup {
			return core.NewSchemaError(fmt.Sprintf("dataset: duplicate neighborhood %q in county %q", r.Name, r.County))
		}
		seen[key] = struct{}{}
	}

	// 校验全部通过后才持锁替换，失败的 Load 不触碰旧快照。
	copied := make([]*core.Neighborhood, len(records))
	copy(copied, records)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.version++
	st.snap = newSnapshot(st.version, copied)
	return nil
}

// Snapshot 返回当前不可变快照。
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// Filter 在当前快照上执行过滤，语义见 Snapshot.Filter。
func (st *Store) Filter(county string, maxRent float64) []*core.Neighborhood {
	return st.Snapshot().Filter(county, maxRent)
}

// AggregateByCounty 在当前快照上执行按县聚合，语义见 Snapshot.AggregateByCounty。
func (st *Store) AggregateByCounty() []core.CountyAggregate {
	return st.Snapshot().AggregateByCounty()
}

// validate 对单条记录做 schema 校验。
// 动态按列名取值的那类运行时错误在这里一次性转为装载期的 SCHEMA_INVALID。
func validate(r *core.Neighborhood) error {
	switch {
	case r.Name == "":
		return core.NewSchemaError("dataset: neighborhood name is required")
	case r.County == "":
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has no county", r.Name))
	case r.City == "":
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has no city", r.Name))
	case r.AverageRent <= 0:
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has non-positive rent %v", r.Name, r.AverageRent))
	case r.AmenityCount < 0:
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has negative amenity count %d", r.Name, r.AmenityCount))
	case r.CrimeRate < 0:
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has negative crime rate %v", r.Name, r.CrimeRate))
	case r.RestaurantCount < 0 || r.ShopCount < 0 || r.GroceryCount < 0:
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has negative amenity breakdown", r.Name))
	case r.Population < 0:
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has negative population %d", r.Name, r.Population))
	case r.MedianIncome < 0:
		return core.NewSchemaError(fmt.Sprintf("dataset: neighborhood %q has negative median income %v", r.Name, r.MedianIncome))
	}

	// 拆分字段是可选的（0 表示未知），但已知部分之和不能超过总数。
	if breakdown := r.RestaurantCount + r.ShopCount + r.GroceryCount; breakdown > r.AmenityCount {
		return core.NewSchemaError(fmt.Sprintf(
			"dataset: neighborhood %q amenity breakdown %d exceeds total %d", r.Name, breakdown, r.AmenityCount))
	}
	return nil
}
