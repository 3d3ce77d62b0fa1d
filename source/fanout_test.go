package source

import (
	"context"
	"errors"
	"testing"

	"github.com/rentkit/rentkit/core"
)

func TestFanout_Load_MergesSources(t *testing.T) {
	f := &Fanout{
		Rent: &MemorySource{Records: []*core.Neighborhood{
			{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2400},
			{Name: "Temescal", County: "Alameda", City: "Oakland", AverageRent: 2100},
			{Name: "Silver Lake", County: "Los Angeles", City: "Los Angeles", AverageRent: 2600},
		}},
		Amenity: &MemoryAmenitySource{Data: map[string]Amenities{
			"Rockridge":   {Restaurants: 20, Shops: 10, Groceries: 5},
			"Silver Lake": {Restaurants: 30, Shops: 8, Groceries: 4},
		}},
		Crime: &MemoryCrimeSource{Data: map[string]float64{
			"Alameda": 3.2,
		}},
	}

	records, err := f.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Load() returned %d records, want 3", len(records))
	}

	byName := make(map[string]*core.Neighborhood, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}

	// 配套按社区名连接
	rr := byName["Rockridge"]
	if rr.AmenityCount != 35 || rr.RestaurantCount != 20 || rr.ShopCount != 10 || rr.GroceryCount != 5 {
		t.Errorf("Rockridge amenities = %d (%d/%d/%d), want 35 (20/10/5)",
			rr.AmenityCount, rr.RestaurantCount, rr.ShopCount, rr.GroceryCount)
	}
	// 犯罪率按县连接
	if rr.CrimeRate != 3.2 || byName["Temescal"].CrimeRate != 3.2 {
		t.Errorf("Alameda crime rates = %v, %v, want 3.2", rr.CrimeRate, byName["Temescal"].CrimeRate)
	}
	// 缺失的富化 key 保持零值
	if byName["Temescal"].AmenityCount != 0 {
		t.Errorf("Temescal amenity count = %d, want 0 (missing key)", byName["Temescal"].AmenityCount)
	}
	if byName["Silver Lake"].CrimeRate != 0 {
		t.Errorf("Silver Lake crime rate = %v, want 0 (missing key)", byName["Silver Lake"].CrimeRate)
	}
}

func TestFanout_Load_RequiresRentSource(t *testing.T) {
	_, err := (&Fanout{}).Load(context.Background())
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	if !core.IsInvalidInput(err) {
		t.Errorf("Load() error = %v, want INVALID_INPUT", err)
	}
}

type failingCrimeSource struct{}

func (failingCrimeSource) Name() string { return "source.failing_crime" }
func (failingCrimeSource) Fetch(context.Context) (map[string]float64, error) {
	return nil, errors.New("crime source unavailable")
}

func TestFanout_Load_EnrichmentFailureFails(t *testing.T) {
	f := &Fanout{
		Rent: &MemorySource{Records: []*core.Neighborhood{
			{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2400},
		}},
		Crime: failingCrimeSource{},
	}

	if _, err := f.Load(context.Background()); err == nil {
		t.Fatal("Load() expected error when enrichment source fails, got nil")
	}
}

func TestFanout_Load_DoesNotMutateBaseRecords(t *testing.T) {
	base := &core.Neighborhood{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2400}
	f := &Fanout{
		Rent: &MemorySource{Records: []*core.Neighborhood{base}},
		Amenity: &MemoryAmenitySource{Data: map[string]Amenities{
			"Rockridge": {Restaurants: 20, Shops: 10, Groceries: 5},
		}},
	}

	records, err := f.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if base.AmenityCount != 0 {
		t.Errorf("base record mutated: amenity count = %d", base.AmenityCount)
	}
	if records[0].AmenityCount != 35 {
		t.Errorf("merged record amenity count = %d, want 35", records[0].AmenityCount)
	}
}

func TestStoreSource_Fetch(t *testing.T) {
	// StoreSource 的 JSON 解析在 memory store 上验证（见 store 包测试的写入路径）
	s := &StoreSource{}
	if _, err := s.Fetch(context.Background()); !core.IsInvalidInput(err) {
		t.Errorf("Fetch() without store = %v, want INVALID_INPUT", err)
	}
}
