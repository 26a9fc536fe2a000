package data

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"unicode/utf8"

	"moviecollection/internal/validator"

	"github.com/google/uuid"
)

type Movie struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      Rating    `json:"rating"`
	ReleaseDate time.Time `json:"releaseDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MovieInput carries the user-settable fields of a movie. The server owns
// the id and both timestamps.
type MovieInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      Rating    `json:"rating"`
	ReleaseDate time.Time `json:"releaseDate"`
}

// ValidateMovieInput applies the write rules for both create and update
// payloads. Field keys use the wire casing that error responses carry.
func ValidateMovieInput(v *validator.Validator, input *MovieInput) {
	v.Check(input.Title != "", "Title", "must be provided")

	v.Check(input.Description != "", "Description", "must be provided")
	v.Check(utf8.RuneCountInString(input.Description) <= 250, "Description", "must not be more than 250 characters long")
	// only meaningful once both fields are present
	v.Check(input.Description == "" || input.Description != input.Title, "Description", "must be different from Title")

	switch {
	case input.Rating == RatingUnknown:
		v.AddError("Rating", "must be provided")
	case !input.Rating.IsValid():
		v.AddError("Rating", "must be a recognized rating")
	}

	v.Check(!input.ReleaseDate.IsZero(), "ReleaseDate", "must be provided")
	// a release date equal to the validation instant is allowed
	v.Check(!input.ReleaseDate.After(time.Now().UTC()), "ReleaseDate", "must not be in the future")
}

// MovieModel wraps the sql.DB connection pool and implements MovieStore
// against PostgreSQL.
type MovieModel struct {
	DB *sql.DB
}

// Insert stores a new movie, assigning its id and setting both timestamps to
// the same UTC instant.
func (m MovieModel) Insert(input *MovieInput) (*Movie, error) {
	now := time.Now().UTC()

	movie := &Movie{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		ReleaseDate: input.ReleaseDate.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO movies (id, title, description, rating, release_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	args := []any{movie.ID, movie.Title, movie.Description, movie.Rating, movie.ReleaseDate, movie.CreatedAt, movie.UpdatedAt}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return movie, nil
}

func (m MovieModel) Get(id uuid.UUID) (*Movie, error) {
	query := `
		SELECT id, title, description, rating, release_date, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var movie Movie

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Rating,
		&movie.ReleaseDate,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &movie, nil
}

func (m MovieModel) GetAll() ([]*Movie, error) {
	query := `
		SELECT id, title, description, rating, release_date, created_at, updated_at
		FROM movies
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// never nil, so an empty collection serializes as [] and not null
	movies := []*Movie{}

	for rows.Next() {
		var movie Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Rating,
			&movie.ReleaseDate,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

// Update overwrites the four mutable fields of an existing movie and bumps
// updated_at. The id and created_at never change.
func (m MovieModel) Update(id uuid.UUID, input *MovieInput) (*Movie, error) {
	movie := &Movie{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		ReleaseDate: input.ReleaseDate.UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	query := `
		UPDATE movies
		SET title = $1, description = $2, rating = $3, release_date = $4, updated_at = $5
		WHERE id = $6
		RETURNING created_at
	`

	args := []any{movie.Title, movie.Description, movie.Rating, movie.ReleaseDate, movie.UpdatedAt, movie.ID}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, args...).Scan(&movie.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return movie, nil
}

// Delete removes a movie and returns the record as it was before deletion.
func (m MovieModel) Delete(id uuid.UUID) (*Movie, error) {
	query := `
		DELETE FROM movies
		WHERE id = $1
		RETURNING id, title, description, rating, release_date, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var movie Movie

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Rating,
		&movie.ReleaseDate,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &movie, nil
}
