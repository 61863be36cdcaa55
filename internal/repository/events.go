package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaixianglim/event-recommender/internal/model"
)

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, category, tags, location, date, time, price, organiser_id, image_url`

// List returns all events in insertion order. Recommendation tie-breaks
// rely on this ordering being stable.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID returns a single event or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id,
	)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// Create inserts a new event and returns it with its assigned id.
// A dangling organiser reference surfaces as ErrNotFound.
func (r *EventRepository) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	tags, err := encodeList(req.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Price:       req.Price,
		OrganiserID: req.OrganiserID,
		ImageURL:    req.ImageURL,
	}
	err = r.db.QueryRow(ctx,
		`INSERT INTO events (title, description, category, tags, location, date, time, price, organiser_id, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		req.Title, req.Description, req.Category, tags, req.Location,
		req.Date, req.Time, req.Price, req.OrganiserID, nullable(req.ImageURL),
	).Scan(&event.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

// Update rewrites the mutable columns of an event. The id and organiser
// reference are immutable after creation.
func (r *EventRepository) Update(ctx context.Context, id int64, req model.UpdateEventRequest) error {
	tags, err := encodeList(req.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET title = $1, description = $2, category = $3, tags = $4,
		     location = $5, date = $6, time = $7, price = $8, image_url = $9
		 WHERE id = $10`,
		req.Title, req.Description, req.Category, tags, req.Location,
		req.Date, req.Time, req.Price, nullable(req.ImageURL), id,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// OrganiserID returns the organiser reference for an event, or nil when
// the event has no organiser. Missing events yield ErrNotFound.
func (r *EventRepository) OrganiserID(ctx context.Context, eventID int64) (*int64, error) {
	var organiser *int64
	err := r.db.QueryRow(ctx,
		`SELECT organiser_id FROM events WHERE id = $1`, eventID,
	).Scan(&organiser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get organiser: %w", err)
	}
	return organiser, nil
}

// scanEvent reads one event row, decoding the tags column. Malformed tag
// values decode to empty slices rather than failing the read.
func scanEvent(row pgx.Row) (model.Event, error) {
	var (
		e        model.Event
		tags     string
		imageURL *string
	)
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &tags,
		&e.Location, &e.Date, &e.Time, &e.Price, &e.OrganiserID, &imageURL)
	if err != nil {
		return model.Event{}, err
	}
	e.Tags = decodeList(tags)
	if imageURL != nil {
		e.ImageURL = *imageURL
	}
	return e, nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isForeignKeyViolation reports whether err is a PostgreSQL foreign key
// violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
