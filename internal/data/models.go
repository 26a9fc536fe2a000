package data

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errors.New("record not found")

// MovieStore is the persistence gateway for movies. MovieModel implements it
// against PostgreSQL; tests swap in an in-memory implementation.
type MovieStore interface {
	Insert(input *MovieInput) (*Movie, error)
	Get(id uuid.UUID) (*Movie, error)
	GetAll() ([]*Movie, error)
	Update(id uuid.UUID, input *MovieInput) (*Movie, error)
	Delete(id uuid.UUID) (*Movie, error)
}

// Models gathers the data models in one place.
type Models struct {
	Movies MovieStore
}

func NewModels(db *sql.DB) Models {
	return Models{
		Movies: MovieModel{DB: db},
	}
}
