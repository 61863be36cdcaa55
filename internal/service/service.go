// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kaixianglim/event-recommender/internal/analytics"
	"github.com/kaixianglim/event-recommender/internal/filter"
	"github.com/kaixianglim/event-recommender/internal/model"
	"github.com/kaixianglim/event-recommender/internal/recommend"
	"github.com/kaixianglim/event-recommender/internal/repository"
)

// Service orchestrates the store, the recommender, the filter engine and
// the preference aggregator behind one API surface.
type Service struct {
	users         *repository.UserRepository
	events        *repository.EventRepository
	registrations *repository.RegistrationRepository
	recommender   *recommend.Recommender
	validate      *validator.Validate

	// defaultThreshold is used when the caller does not supply one.
	defaultThreshold float64
}

// New constructs a Service with its dependencies.
func New(
	users *repository.UserRepository,
	events *repository.EventRepository,
	registrations *repository.RegistrationRepository,
	defaultThreshold float64,
) *Service {
	return &Service{
		users:            users,
		events:           events,
		registrations:    registrations,
		recommender:      recommend.New(recommendSource{users: users, events: events}),
		validate:         validator.New(validator.WithRequiredStructEnabled()),
		defaultThreshold: defaultThreshold,
	}
}

// recommendSource adapts the repositories to the recommender's Source
// interface, translating ErrNotFound into the (nil, nil) contract.
type recommendSource struct {
	users  *repository.UserRepository
	events *repository.EventRepository
}

func (s recommendSource) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

func (s recommendSource) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.events.List(ctx)
}

// ─── Users ────────────────────────────────────────────────────────────────────

// ListUsers returns all users.
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a single user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// CreateUser validates the request and delegates to the repository.
func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	return s.users.Create(ctx, req)
}

// ─── Events ───────────────────────────────────────────────────────────────────

// ListEvents returns all events, optionally narrowed by a facet. Passing
// "All" (or an empty string) for either argument returns everything.
func (s *Service) ListEvents(ctx context.Context, filterType, filterValue string) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	if filterType == "" || filterValue == "" {
		return events, nil
	}
	return filter.Apply(events, filterType, filterValue, time.Now()), nil
}

// FilterOptions derives the legal values for a filter type from the live
// event collection.
func (s *Service) FilterOptions(ctx context.Context, filterType string) ([]string, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Options(events, filterType), nil
}

// GetEvent returns a single event by id.
func (s *Service) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	return s.events.GetByID(ctx, id)
}

// CreateEvent validates the request and delegates to the repository.
func (s *Service) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}
	return s.events.Create(ctx, req)
}

// UpdateEvent validates the request and rewrites the mutable fields of an
// existing event.
func (s *Service) UpdateEvent(ctx context.Context, id int64, req model.UpdateEventRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}
	return s.events.Update(ctx, id, req)
}

// Organiser returns the organiser reference for an event, nil when the
// event has none.
func (s *Service) Organiser(ctx context.Context, eventID int64) (*int64, error) {
	return s.events.OrganiserID(ctx, eventID)
}

// IsOrganiser reports whether the user organises the event.
func (s *Service) IsOrganiser(ctx context.Context, userID, eventID int64) (bool, error) {
	organiser, err := s.events.OrganiserID(ctx, eventID)
	if err != nil {
		return false, err
	}
	return organisedBy(organiser, userID), nil
}

// organisedBy reports whether the organiser reference points at userID.
// A nil reference (event without an organiser) matches no one.
func organisedBy(organiser *int64, userID int64) bool {
	return organiser != nil && *organiser == userID
}

// ─── Registrations ────────────────────────────────────────────────────────────

// Register creates a registration for the (user, event) pair. Duplicate
// pairs and unknown ids surface as the repository's sentinel errors.
func (s *Service) Register(ctx context.Context, userID, eventID int64) (*model.Registration, error) {
	return s.registrations.Register(ctx, userID, eventID)
}

// Unregister removes the registration for the (user, event) pair.
func (s *Service) Unregister(ctx context.Context, userID, eventID int64) error {
	return s.registrations.Unregister(ctx, userID, eventID)
}

// IsRegistered reports the registration status of the pair.
func (s *Service) IsRegistered(ctx context.Context, userID, eventID int64) (bool, error) {
	return s.registrations.IsRegistered(ctx, userID, eventID)
}

// ListUserEvents returns the events a user is registered for, ordered by
// event date ascending.
func (s *Service) ListUserEvents(ctx context.Context, userID int64) ([]model.RegisteredEvent, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.registrations.ListUserEvents(ctx, userID)
}

// ─── Recommendations ──────────────────────────────────────────────────────────

// Recommend returns the ranked events scoring strictly above the
// threshold for the user, each annotated with the user's current
// registration status. A nil threshold selects the configured default.
func (s *Service) Recommend(ctx context.Context, userID int64, threshold *float64) ([]model.Recommendation, error) {
	th := s.defaultThreshold
	if threshold != nil {
		th = *threshold
	}

	scored, err := s.recommender.Recommend(ctx, userID, th)
	if err != nil {
		return nil, err
	}

	recs := make([]model.Recommendation, 0, len(scored))
	for _, sc := range scored {
		registered, err := s.registrations.IsRegistered(ctx, userID, sc.Event.ID)
		if err != nil {
			return nil, err
		}
		recs = append(recs, model.Recommendation{
			Event:      sc.Event,
			Score:      sc.Score,
			Registered: registered,
		})
	}
	return recs, nil
}

// ─── Analytics ────────────────────────────────────────────────────────────────

// AggregatePreferences computes day and office-location distributions for
// the queried interests across the whole user base.
func (s *Service) AggregatePreferences(ctx context.Context, req model.AggregateRequest) (map[string]model.InterestProfile, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid aggregate request: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateByInterest(users, req.Interests), nil
}
