package norm

import (
	"context"
	"math"
	"testing"

	"github.com/rentkit/rentkit/core"
)

func candidates(records ...*core.Neighborhood) []*core.Candidate {
	out := make([]*core.Candidate, 0, len(records))
	for _, r := range records {
		out = append(out, core.NewCandidate(r))
	}
	return out
}

func TestMinMaxNode_TwoRecords(t *testing.T) {
	items := candidates(
		&core.Neighborhood{Name: "A", County: "LA", City: "LA", AverageRent: 1000, AmenityCount: 10, CrimeRate: 5},
		&core.Neighborhood{Name: "B", County: "LA", City: "LA", AverageRent: 2000, AmenityCount: 20, CrimeRate: 1},
	)

	got, err := (&MinMaxNode{}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	a, b := got[0], got[1]
	// A 更便宜但配套更少、犯罪率更高
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"normalized_rent(A)", a.NormalizedRent, 1.0},
		{"normalized_rent(B)", b.NormalizedRent, 0.0},
		{"normalized_amenity(A)", a.NormalizedAmenity, 0.0},
		{"normalized_amenity(B)", b.NormalizedAmenity, 1.0},
		{"normalized_safety(A)", a.NormalizedSafety, 0.0},
		{"normalized_safety(B)", b.NormalizedSafety, 1.0},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestMinMaxNode_DegenerateRange(t *testing.T) {
	// 单条记录的视图：三个指标的 max == min，全部记为并列最优 1.0
	items := candidates(
		&core.Neighborhood{Name: "A", County: "LA", City: "LA", AverageRent: 1500, AmenityCount: 12, CrimeRate: 2},
	)

	got, err := (&MinMaxNode{}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	a := got[0]
	if a.NormalizedRent != 1.0 || a.NormalizedAmenity != 1.0 || a.NormalizedSafety != 1.0 {
		t.Errorf("degenerate view normalized = (%v, %v, %v), want all 1.0",
			a.NormalizedRent, a.NormalizedAmenity, a.NormalizedSafety)
	}
	if _, ok := a.GetLabel("norm_degenerate"); !ok {
		t.Error("degenerate view should carry norm_degenerate label")
	}
}

func TestMinMaxNode_PartialDegenerate(t *testing.T) {
	// 租金相同（退化），其余指标正常
	items := candidates(
		&core.Neighborhood{Name: "A", County: "LA", City: "LA", AverageRent: 1500, AmenityCount: 10, CrimeRate: 5},
		&core.Neighborhood{Name: "B", County: "LA", City: "LA", AverageRent: 1500, AmenityCount: 20, CrimeRate: 1},
	)

	got, err := (&MinMaxNode{}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, it := range got {
		if it.NormalizedRent != 1.0 {
			t.Errorf("%s normalized_rent = %v, want 1.0 (degenerate)", it.Name, it.NormalizedRent)
		}
	}
	if got[0].NormalizedAmenity != 0.0 || got[1].NormalizedAmenity != 1.0 {
		t.Errorf("amenity normalization broken: %v, %v", got[0].NormalizedAmenity, got[1].NormalizedAmenity)
	}
}

func TestMinMaxNode_Bounds(t *testing.T) {
	items := candidates(
		&core.Neighborhood{Name: "A", County: "X", City: "X", AverageRent: 900, AmenityCount: 3, CrimeRate: 7.5},
		&core.Neighborhood{Name: "B", County: "X", City: "X", AverageRent: 1800, AmenityCount: 11, CrimeRate: 2.25},
		&core.Neighborhood{Name: "C", County: "X", City: "X", AverageRent: 3100, AmenityCount: 47, CrimeRate: 0.5},
		&core.Neighborhood{Name: "D", County: "X", City: "X", AverageRent: 1250, AmenityCount: 19, CrimeRate: 4.0},
	)

	got, err := (&MinMaxNode{}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, it := range got {
		for name, v := range map[string]float64{
			"normalized_rent":    it.NormalizedRent,
			"normalized_amenity": it.NormalizedAmenity,
			"normalized_safety":  it.NormalizedSafety,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s: %s = %v, out of [0,1]", it.Name, name, v)
			}
		}
	}
}

func TestMinMaxNode_EmptyView(t *testing.T) {
	got, err := (&MinMaxNode{}).Process(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty view returned %d items", len(got))
	}
}
