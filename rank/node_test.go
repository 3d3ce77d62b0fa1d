package rank

import (
	"context"
	"testing"

	"github.com/rentkit/rentkit/core"
	"github.com/rentkit/rentkit/model"
)

func scored(name, county string, rent, amenity, safety float64) *core.Candidate {
	c := core.NewCandidate(&core.Neighborhood{Name: name, County: county, City: county, AverageRent: 1000})
	c.NormalizedRent = rent
	c.NormalizedAmenity = amenity
	c.NormalizedSafety = safety
	return c
}

func equalWeightModel(t *testing.T) model.ValueModel {
	t.Helper()
	m, err := model.NewLinearModel(core.WeightVector{Affordability: 1, Amenities: 1, Safety: 1})
	if err != nil {
		t.Fatalf("NewLinearModel() error = %v", err)
	}
	return m
}

func TestNode_RanksDescending(t *testing.T) {
	items := []*core.Candidate{
		scored("Low", "X", 0.1, 0.1, 0.1),
		scored("High", "X", 0.9, 0.9, 0.9),
		scored("Mid", "X", 0.5, 0.5, 0.5),
	}

	got, err := (&Node{Model: equalWeightModel(t)}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantOrder := []string{"High", "Mid", "Low"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("rank[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("scores not descending at %d: %v < %v", i, got[i-1].Score, got[i].Score)
		}
	}
	if _, ok := got[0].GetLabel("rank_model"); !ok {
		t.Error("ranked candidate should carry rank_model label")
	}
}

func TestNode_TieBreakByName(t *testing.T) {
	// 同分：按社区名升序，保证排名可复现
	items := []*core.Candidate{
		scored("Zeta", "X", 0.5, 0.5, 0.5),
		scored("Alpha", "X", 0.5, 0.5, 0.5),
		scored("Mira", "X", 0.5, 0.5, 0.5),
	}

	got, err := (&Node{Model: equalWeightModel(t)}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantOrder := []string{"Alpha", "Mira", "Zeta"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("rank[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestNode_EmptyInput(t *testing.T) {
	_, err := (&Node{Model: equalWeightModel(t)}).Process(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("Process() on empty input expected error, got nil")
	}
	if !core.IsEmptyDataset(err) {
		t.Errorf("Process() error = %v, want EMPTY_DATASET", err)
	}
}

func TestNode_WeightScalingInvariance(t *testing.T) {
	build := func() []*core.Candidate {
		return []*core.Candidate{
			scored("A", "X", 1.0, 0.0, 0.0),
			scored("B", "X", 0.0, 1.0, 1.0),
			scored("C", "X", 0.4, 0.6, 0.2),
		}
	}

	rankNames := func(w core.WeightVector) []string {
		m, err := model.NewLinearModel(w)
		if err != nil {
			t.Fatalf("NewLinearModel() error = %v", err)
		}
		got, err := (&Node{Model: m}).Process(context.Background(), nil, build())
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		names := make([]string, len(got))
		for i, it := range got {
			names[i] = it.Name
		}
		return names
	}

	base := rankNames(core.WeightVector{Affordability: 1, Amenities: 2, Safety: 3})
	scaled := rankNames(core.WeightVector{Affordability: 100, Amenities: 200, Safety: 300})

	for i := range base {
		if base[i] != scaled[i] {
			t.Fatalf("rank order changed under uniform weight scaling: %v vs %v", base, scaled)
		}
	}
}
