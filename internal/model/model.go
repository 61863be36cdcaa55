// Package model defines the core domain types for the event recommender.
package model

import "time"

// User is a person who can be matched to events. Category, Interests and
// PreferredDays are stored as JSON-encoded string lists; the repository
// codec is the only place that sees the encoded form.
type User struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Category       []string `json:"category"`
	Interests      []string `json:"interests"`
	PreferredDays  []string `json:"preferred_day"`
	OfficeLocation string   `json:"office_location,omitempty"`
}

// Event is a bookable event. Date is an ISO calendar string (YYYY-MM-DD)
// and Time a free-text range such as "0900H - 1700H". OrganiserID is an
// optional reference to the user who created the event.
type Event struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Price       float64  `json:"price"`
	OrganiserID *int64   `json:"organiser_id,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// IsFree reports whether the event costs nothing.
func (e *Event) IsFree() bool {
	return e.Price == 0
}

// Registration links a user to an event they intend to attend.
// At most one registration exists per (user, event) pair.
type Registration struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	EventID      int64     `json:"event_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RegisteredEvent is an event joined with the caller's registration date,
// as returned by the "my events" query.
type RegisteredEvent struct {
	Event
	RegisteredAt time.Time `json:"registered_at"`
}

// Recommendation pairs an event with its similarity score and the
// requesting user's current registration status.
type Recommendation struct {
	Event      Event   `json:"event"`
	Score      float64 `json:"score"`
	Registered bool    `json:"registered"`
}

// CreateUserRequest is the payload for adding a user.
type CreateUserRequest struct {
	Name           string   `json:"name" validate:"required,max=120"`
	Category       []string `json:"category"`
	Interests      []string `json:"interests" validate:"required,min=1,dive,required"`
	PreferredDays  []string `json:"preferred_day" validate:"dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	OfficeLocation string   `json:"office_location"`
}

// CreateEventRequest is the payload for adding an event.
type CreateEventRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
	Location    string   `json:"location" validate:"required"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	OrganiserID *int64   `json:"organiser_id"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
}

// UpdateEventRequest is the payload for editing an event. The id and
// organiser reference are immutable after creation and so do not appear.
type UpdateEventRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
	Location    string   `json:"location" validate:"required"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
}

// AggregateRequest asks for preference distributions for a set of interests.
type AggregateRequest struct {
	Interests []string `json:"interests" validate:"required,min=1,dive,required"`
}

// InterestProfile holds the per-interest frequency distributions produced
// by the preference aggregator.
type InterestProfile struct {
	PreferredDay   map[string]int `json:"preferred_day"`
	OfficeLocation map[string]int `json:"office_location"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
