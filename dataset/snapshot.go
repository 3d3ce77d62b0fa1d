package dataset

import (
	"sort"
	"sync"

	"github.com/rentkit/rentkit/core"
)

// Snapshot 是一次 Load 产生的不可变数据集：加载时校验一次，之后只读，
// 可被任意多个查询无锁并发共享。按县聚合在快照上惰性计算并缓存，
// 快照被替换时缓存随之整体作废。
type Snapshot struct {
	version int64
	records []*core.Neighborhood
	byKey   map[string]*core.Neighborhood

	aggOnce sync.Once
	aggs    []core.CountyAggregate
}

func newSnapshot(version int64, records []*core.Neighborhood) *Snapshot {
	byKey := make(map[string]*core.Neighborhood, len(records))
	for _, r := range records {
		byKey[r.Key()] = r
	}
	return &Snapshot{
		version: version,
		records: records,
		byKey:   byKey,
	}
}

// Version 返回快照版本号，单调递增；可用作缓存 key 的一部分。
func (s *Snapshot) Version() int64 { return s.version }

// Len 返回快照中的记录数。
func (s *Snapshot) Len() int { return len(s.records) }

// All 返回快照中全部记录。返回新切片，底层记录共享但约定只读。
func (s *Snapshot) All() []*core.Neighborhood {
	out := make([]*core.Neighborhood, len(s.records))
	copy(out, s.records)
	return out
}

// Get 按联合主键（county, name）查找记录。
func (s *Snapshot) Get(county, name string) (*core.Neighborhood, bool) {
	n, ok := s.byKey[county+"/"+name]
	return n, ok
}

// Filter 返回同时满足两个谓词的子集：
// - county 非空时要求县名精确匹配
// - maxRent > 0 时要求 AverageRent <= maxRent
// 两者都省略时返回全集（恒等）。
func (s *Snapshot) Filter(county string, maxRent float64) []*core.Neighborhood {
	out := make([]*core.Neighborhood, 0, len(s.records))
	for _, r := range s.records {
		if county != "" && r.County != county {
			continue
		}
		if maxRent > 0 && r.AverageRent > maxRent {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AggregateByCounty 返回快照中每个县一条聚合记录，按县名升序。
// 结果在快照上惰性计算一次，之后直接复用。
func (s *Snapshot) AggregateByCounty() []core.CountyAggregate {
	s.aggOnce.Do(func() {
		type acc struct {
			rent  float64
			crime float64
			count int
		}
		byCounty := make(map[string]*acc)
		for _, r := range s.records {
			a, ok := byCounty[r.County]
			if !ok {
				a = &acc{}
				byCounty[r.County] = a
			}
			a.rent += r.AverageRent
			a.crime += r.CrimeRate
			a.count++
		}

		aggs := make([]core.CountyAggregate, 0, len(byCounty))
		for county, a := range byCounty {
			aggs = append(aggs, core.CountyAggregate{
				County:        county,
				MeanRent:      a.rent / float64(a.count),
				MeanCrimeRate: a.crime / float64(a.count),
				Count:         a.count,
			})
		}
		sort.Slice(aggs, func(i, j int) bool { return aggs[i].County < aggs[j].County })
		s.aggs = aggs
	})

	out := make([]core.CountyAggregate, len(s.aggs))
	copy(out, s.aggs)
	return out
}
