// Package store holds the repository interfaces the core services depend on,
// plus the GORM/Postgres and in-memory implementations. Handlers and services
// never issue queries themselves.
package store

import (
	"errors"

	"hunthub/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a uniqueness constraint rejects a write.
	ErrConflict = errors.New("record already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByUsername(username string) (*models.User, error)
}

type ProductRepository interface {
	Create(product *models.Product) error
	ByID(id uint) (*models.Product, error)
	// Page returns products ordered by votes_total DESC, pub_date DESC.
	Page(offset, limit int) ([]models.Product, error)
	Count() (int64, error)
}

type VoteRepository interface {
	// Record inserts the vote and increments the product's votes_total as a
	// single transaction. Returns ErrConflict when the (user, product) pair
	// has already voted.
	Record(userID, productID uint) error
	Exists(userID, productID uint) (bool, error)
}
