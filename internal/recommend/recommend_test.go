package recommend

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/kaixianglim/event-recommender/internal/model"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name      string
		interests []string
		tags      []string
		want      float64
	}{
		{
			name:      "both empty",
			interests: nil,
			tags:      nil,
			want:      0,
		},
		{
			name:      "empty interests",
			interests: nil,
			tags:      []string{"music", "jazz"},
			want:      0,
		},
		{
			name:      "empty tags",
			interests: []string{"music", "jazz"},
			tags:      nil,
			want:      0,
		},
		{
			name:      "identical sets",
			interests: []string{"music", "jazz"},
			tags:      []string{"jazz", "music"},
			want:      1,
		},
		{
			name:      "disjoint sets",
			interests: []string{"running"},
			tags:      []string{"painting", "museums"},
			want:      0,
		},
		{
			name:      "half overlap",
			interests: []string{"jazz", "music"},
			tags:      []string{"music", "karaoke", "jazz", "funk"},
			want:      0.5, // intersection 2, union 4
		},
		{
			name:      "two thirds overlap",
			interests: []string{"jazz", "music"},
			tags:      []string{"music", "karaoke", "jazz"},
			want:      2.0 / 3.0,
		},
		{
			name:      "case folded",
			interests: []string{"Jazz", "MUSIC"},
			tags:      []string{"jazz", "music"},
			want:      1,
		},
		{
			name:      "duplicates collapse",
			interests: []string{"jazz", "jazz", "jazz"},
			tags:      []string{"jazz"},
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.interests, tt.tags)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity() = %v, want %v", got, tt.want)
			}
			// Symmetry holds for every pair.
			if rev := Similarity(tt.tags, tt.interests); math.Abs(rev-got) > 1e-9 {
				t.Errorf("Similarity not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

type fakeSource struct {
	users  map[int64]*model.User
	events []model.Event
	err    error
}

func (f *fakeSource) GetUser(_ context.Context, id int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeSource) ListEvents(context.Context) ([]model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func TestRecommend(t *testing.T) {
	source := &fakeSource{
		users: map[int64]*model.User{
			1: {ID: 1, Name: "Dana", Interests: []string{"jazz", "music"}},
		},
		events: []model.Event{
			{ID: 1, Title: "Jazz Night", Tags: []string{"jazz", "music"}},                  // score 1.0
			{ID: 2, Title: "Karaoke", Tags: []string{"music", "karaoke", "jazz", "funk"}},  // score 0.5
			{ID: 3, Title: "Open Mic", Tags: []string{"music", "jazz", "band", "karaoke"}}, // score 0.5
			{ID: 4, Title: "Pottery", Tags: []string{"ceramics"}},                          // score 0.0
		},
	}
	rec := New(source)

	t.Run("threshold is strict", func(t *testing.T) {
		got, err := rec.Recommend(context.Background(), 1, 0.5)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		// Events scoring exactly 0.5 are excluded.
		if len(got) != 1 {
			t.Fatalf("got %d recommendations, want 1", len(got))
		}
		if got[0].Event.ID != 1 || got[0].Score != 1.0 {
			t.Errorf("got event %d score %v, want event 1 score 1.0", got[0].Event.ID, got[0].Score)
		}
	})

	t.Run("sorted descending with stable ties", func(t *testing.T) {
		got, err := rec.Recommend(context.Background(), 1, 0.1)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		wantOrder := []int64{1, 2, 3}
		if len(got) != len(wantOrder) {
			t.Fatalf("got %d recommendations, want %d", len(got), len(wantOrder))
		}
		for i, want := range wantOrder {
			if got[i].Event.ID != want {
				t.Errorf("position %d: event %d, want %d", i, got[i].Event.ID, want)
			}
		}
		for i := 1; i < len(got); i++ {
			if got[i].Score > got[i-1].Score {
				t.Errorf("scores not descending at %d: %v > %v", i, got[i].Score, got[i-1].Score)
			}
		}
	})

	t.Run("no event at or below threshold", func(t *testing.T) {
		got, err := rec.Recommend(context.Background(), 1, 0.1)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		for _, r := range got {
			if r.Score <= 0.1 {
				t.Errorf("event %d score %v at or below threshold", r.Event.ID, r.Score)
			}
		}
	})

	t.Run("unknown user yields empty list", func(t *testing.T) {
		got, err := rec.Recommend(context.Background(), 99, 0.0)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d recommendations for unknown user, want 0", len(got))
		}
	})

	t.Run("source errors propagate", func(t *testing.T) {
		broken := New(&fakeSource{err: errors.New("store down")})
		if _, err := broken.Recommend(context.Background(), 1, 0.5); err == nil {
			t.Error("expected error from broken source")
		}
	})
}
