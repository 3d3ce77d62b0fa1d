package rerank

import (
	"context"
	"testing"

	"github.com/rentkit/rentkit/core"
)

func TestTopNNode_Process(t *testing.T) {
	items := []*core.Candidate{
		core.NewCandidate(&core.Neighborhood{Name: "A"}),
		core.NewCandidate(&core.Neighborhood{Name: "B"}),
		core.NewCandidate(&core.Neighborhood{Name: "C"}),
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "truncate", n: 2, want: 2},
		{name: "n exceeds set size", n: 10, want: 3},
		{name: "zero returns all", n: 0, want: 3},
		{name: "negative returns all", n: -1, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&TopNNode{N: tt.n}).Process(context.Background(), nil, items)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Process() returned %d items, want %d", len(got), tt.want)
			}
			// 截断保持原有顺序
			if len(got) > 0 && got[0].Name != "A" {
				t.Errorf("Process() head = %s, want A", got[0].Name)
			}
		})
	}
}
