package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaixianglim/event-recommender/internal/model"
)

// RegistrationRepository handles persistence for registrations.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Register creates a registration stamped with the current time.
//
// The UNIQUE (user_id, event_id) constraint is the arbiter for duplicate
// pairs: two concurrent registrations race on it and the loser gets
// ErrAlreadyRegistered, which is the designed outcome. Invalid user or
// event ids trip the foreign keys and surface as ErrNotFound.
func (r *RegistrationRepository) Register(ctx context.Context, userID, eventID int64) (*model.Registration, error) {
	reg := &model.Registration{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now().UTC(),
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (id, user_id, event_id, registered_at)
		 VALUES ($1, $2, $3, $4)`,
		reg.ID, reg.UserID, reg.EventID, reg.RegisteredAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, ErrAlreadyRegistered
		case isForeignKeyViolation(err):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

// Unregister removes the registration for a (user, event) pair.
// Returns ErrNotFound when no matching registration existed. Registering
// again afterwards creates a fresh row with a new timestamp.
func (r *RegistrationRepository) Unregister(ctx context.Context, userID, eventID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM registrations WHERE user_id = $1 AND event_id = $2`,
		userID, eventID,
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IsRegistered reports whether the (user, event) pair has a registration.
func (r *RegistrationRepository) IsRegistered(ctx context.Context, userID, eventID int64) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE user_id = $1 AND event_id = $2`,
		userID, eventID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return count > 0, nil
}

// ListUserEvents returns the events a user is registered for, joined with
// the registration date, ordered by event date ascending.
func (r *RegistrationRepository) ListUserEvents(ctx context.Context, userID int64) ([]model.RegisteredEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.title, e.description, e.category, e.tags, e.location,
		        e.date, e.time, e.price, e.organiser_id, e.image_url,
		        reg.registered_at
		 FROM events e
		 JOIN registrations reg ON e.id = reg.event_id
		 WHERE reg.user_id = $1
		 ORDER BY e.date`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}
	defer rows.Close()

	var events []model.RegisteredEvent
	for rows.Next() {
		var (
			re       model.RegisteredEvent
			tags     string
			imageURL *string
		)
		err := rows.Scan(&re.ID, &re.Title, &re.Description, &re.Category,
			&tags, &re.Location, &re.Date, &re.Time, &re.Price,
			&re.OrganiserID, &imageURL, &re.RegisteredAt)
		if err != nil {
			return nil, fmt.Errorf("scan registered event: %w", err)
		}
		re.Tags = decodeList(tags)
		if imageURL != nil {
			re.ImageURL = *imageURL
		}
		events = append(events, re)
	}
	return events, rows.Err()
}
