package dataset

import (
	"testing"

	"github.com/rentkit/rentkit/core"
)

func sampleRecords() []*core.Neighborhood {
	return []*core.Neighborhood{
		{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2400, AmenityCount: 35, CrimeRate: 3.2},
		{Name: "Temescal", County: "Alameda", City: "Oakland", AverageRent: 2100, AmenityCount: 28, CrimeRate: 4.1},
		{Name: "Silver Lake", County: "Los Angeles", City: "Los Angeles", AverageRent: 2600, AmenityCount: 42, CrimeRate: 5.0},
	}
}

func TestStore_Load_FilterIdentity(t *testing.T) {
	st := NewStore()
	if err := st.Load(sampleRecords()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// 不带任何谓词的 filter 恒等返回全集
	got := st.Filter("", 0)
	if len(got) != 3 {
		t.Fatalf("Filter(none) returned %d records, want 3", len(got))
	}
}

func TestStore_Filter(t *testing.T) {
	st := NewStore()
	if err := st.Load(sampleRecords()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name    string
		county  string
		maxRent float64
		want    int
	}{
		{name: "by county", county: "Alameda", want: 2},
		{name: "by budget", maxRent: 2400, want: 2},
		{name: "by both", county: "Alameda", maxRent: 2200, want: 1},
		{name: "no match", county: "Alameda", maxRent: 1000, want: 0},
		{name: "unknown county", county: "Marin", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := st.Filter(tt.county, tt.maxRent)
			if len(got) != tt.want {
				t.Errorf("Filter(%q, %v) returned %d records, want %d", tt.county, tt.maxRent, len(got), tt.want)
			}
		})
	}
}

func TestStore_Load_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		records []*core.Neighborhood
	}{
		{
			name:    "missing name",
			records: []*core.Neighborhood{{County: "Alameda", City: "Oakland", AverageRent: 2000}},
		},
		{
			name:    "missing county",
			records: []*core.Neighborhood{{Name: "Rockridge", City: "Oakland", AverageRent: 2000}},
		},
		{
			name:    "missing city",
			records: []*core.Neighborhood{{Name: "Rockridge", County: "Alameda", AverageRent: 2000}},
		},
		{
			name:    "non-positive rent",
			records: []*core.Neighborhood{{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 0}},
		},
		{
			name:    "negative crime rate",
			records: []*core.Neighborhood{{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2000, CrimeRate: -1}},
		},
		{
			name: "duplicate composite key",
			records: []*core.Neighborhood{
				{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2000},
				{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2500},
			},
		},
		{
			name: "breakdown exceeds amenity total",
			records: []*core.Neighborhood{
				{Name: "Rockridge", County: "Alameda", City: "Oakland", AverageRent: 2000,
					AmenityCount: 5, RestaurantCount: 4, ShopCount: 3, GroceryCount: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewStore()
			err := st.Load(tt.records)
			if err == nil {
				t.Fatal("Load() expected schema error, got nil")
			}
			if !core.IsSchemaError(err) {
				t.Errorf("Load() error = %v, want SCHEMA_INVALID", err)
			}
		})
	}
}

func TestStore_Load_KeepsPreviousSnapshotOnError(t *testing.T) {
	st := NewStore()
	if err := st.Load(sampleRecords()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	v1 := st.Snapshot().Version()

	bad := []*core.Neighborhood{{Name: "Broken", County: "", City: "Oakland", AverageRent: 2000}}
	if err := st.Load(bad); err == nil {
		t.Fatal("Load() expected error, got nil")
	}

	snap := st.Snapshot()
	if snap.Version() != v1 {
		t.Errorf("snapshot version changed after failed load: %d -> %d", v1, snap.Version())
	}
	if snap.Len() != 3 {
		t.Errorf("snapshot len = %d after failed load, want 3", snap.Len())
	}
}

func TestStore_AggregateByCounty(t *testing.T) {
	st := NewStore()
	if err := st.Load(sampleRecords()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	aggs := st.AggregateByCounty()
	if len(aggs) != 2 {
		t.Fatalf("AggregateByCounty() returned %d entries, want 2", len(aggs))
	}

	// 按县名升序
	if aggs[0].County != "Alameda" || aggs[1].County != "Los Angeles" {
		t.Errorf("aggregates out of order: %v, %v", aggs[0].County, aggs[1].County)
	}

	if aggs[0].Count+aggs[1].Count != 3 {
		t.Errorf("aggregate counts sum to %d, want 3", aggs[0].Count+aggs[1].Count)
	}

	wantRent := (2400.0 + 2100.0) / 2
	if aggs[0].MeanRent != wantRent {
		t.Errorf("Alameda mean rent = %v, want %v", aggs[0].MeanRent, wantRent)
	}
	wantCrime := (3.2 + 4.1) / 2
	if aggs[0].MeanCrimeRate != wantCrime {
		t.Errorf("Alameda mean crime = %v, want %v", aggs[0].MeanCrimeRate, wantCrime)
	}
}

func TestStore_SnapshotVersionIncrements(t *testing.T) {
	st := NewStore()
	if v := st.Snapshot().Version(); v != 0 {
		t.Fatalf("empty store version = %d, want 0", v)
	}
	if err := st.Load(sampleRecords()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v := st.Snapshot().Version(); v != 1 {
		t.Errorf("version after first load = %d, want 1", v)
	}
	if err := st.Load(sampleRecords()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v := st.Snapshot().Version(); v != 2 {
		t.Errorf("version after second load = %d, want 2", v)
	}
}
