package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaixianglim/event-recommender/internal/model"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, interests, preferred_day, office_location
		 FROM users
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID returns a single user or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, category, interests, preferred_day, office_location
		 FROM users WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user and returns it with its assigned id.
func (r *UserRepository) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	category, err := encodeList(req.Category)
	if err != nil {
		return nil, fmt.Errorf("encode category: %w", err)
	}
	interests, err := encodeList(req.Interests)
	if err != nil {
		return nil, fmt.Errorf("encode interests: %w", err)
	}
	days, err := encodeList(req.PreferredDays)
	if err != nil {
		return nil, fmt.Errorf("encode preferred days: %w", err)
	}

	user := &model.User{
		Name:           req.Name,
		Category:       req.Category,
		Interests:      req.Interests,
		PreferredDays:  req.PreferredDays,
		OfficeLocation: req.OfficeLocation,
	}
	err = r.db.QueryRow(ctx,
		`INSERT INTO users (name, category, interests, preferred_day, office_location)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		req.Name, category, interests, days, req.OfficeLocation,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// scanUser reads one user row, decoding the JSON list columns. Malformed
// list values decode to empty slices rather than failing the read.
func scanUser(row pgx.Row) (model.User, error) {
	var (
		u                         model.User
		category, interests, days *string
		office                    *string
	)
	if err := row.Scan(&u.ID, &u.Name, &category, &interests, &days, &office); err != nil {
		return model.User{}, err
	}
	if category != nil {
		u.Category = decodeList(*category)
	}
	if interests != nil {
		u.Interests = decodeList(*interests)
	}
	if days != nil {
		u.PreferredDays = decodeList(*days)
	}
	if office != nil {
		u.OfficeLocation = *office
	}
	return u, nil
}
