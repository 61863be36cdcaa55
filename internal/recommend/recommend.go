// Package recommend matches users to events by shared-interest scoring.
//
// The package has no dependency on the repository layer; the Source
// interface lets the caller supply user and event snapshots without
// creating import cycles.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kaixianglim/event-recommender/internal/model"
)

// Similarity computes the Jaccard similarity between a user's interest
// set and an event's tag set: |intersection| / |union| after case-folding
// both sides. It returns 0.0 when either input is empty and is symmetric
// in its arguments.
func Similarity(userInterests, eventTags []string) float64 {
	if len(userInterests) == 0 || len(eventTags) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(userInterests))
	for _, s := range userInterests {
		setA[strings.ToLower(s)] = struct{}{}
	}
	setB := make(map[string]struct{}, len(eventTags))
	for _, s := range eventTags {
		setB[strings.ToLower(s)] = struct{}{}
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Source supplies the data the recommender scores over.
// GetUser returns (nil, nil) for an unknown user id.
type Source interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
}

// ScoredEvent is an event together with its similarity score.
type ScoredEvent struct {
	Event model.Event
	Score float64
}

// Recommender produces ranked, thresholded recommendation lists. Results
// are recomputed on every call; registration state and the event set can
// change between requests, so nothing is cached here.
type Recommender struct {
	source Source
}

// New constructs a Recommender over the given source.
func New(source Source) *Recommender {
	return &Recommender{source: source}
}

// Recommend scores every event against the user's interests and returns
// those strictly above the threshold, sorted by score descending. Ties
// keep the original event order. An unknown user yields an empty list.
func (r *Recommender) Recommend(ctx context.Context, userID int64, threshold float64) ([]ScoredEvent, error) {
	user, err := r.source.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user %d: %w", userID, err)
	}
	if user == nil {
		return nil, nil
	}

	events, err := r.source.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var recs []ScoredEvent
	for _, event := range events {
		score := Similarity(user.Interests, event.Tags)
		// Strictly greater: an event scoring exactly the threshold
		// is excluded.
		if score > threshold {
			recs = append(recs, ScoredEvent{Event: event, Score: score})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs, nil
}
