package source

import (
	"context"

	"github.com/rentkit/rentkit/core"
)

// MemorySource 是内存记录来源，用于测试/原型/内嵌数据。
type MemorySource struct {
	Records []*core.Neighborhood
}

func (s *MemorySource) Name() string { return "source.memory" }

func (s *MemorySource) Fetch(_ context.Context) ([]*core.Neighborhood, error) {
	return s.Records, nil
}

// MemoryAmenitySource 是内存配套数据来源，按社区名索引。
type MemoryAmenitySource struct {
	Data map[string]Amenities
}

func (s *MemoryAmenitySource) Name() string { return "source.memory_amenity" }

func (s *MemoryAmenitySource) Fetch(_ context.Context) (map[string]Amenities, error) {
	return s.Data, nil
}

// MemoryCrimeSource 是内存犯罪率来源，按县名索引。
type MemoryCrimeSource struct {
	Data map[string]float64
}

func (s *MemoryCrimeSource) Name() string { return "source.memory_crime" }

func (s *MemoryCrimeSource) Fetch(_ context.Context) (map[string]float64, error) {
	return s.Data, nil
}
