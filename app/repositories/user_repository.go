package repositories

import (
	"context"
	"errors"

	"estatehub/app/models"

	"github.com/dgraph-io/badger/v4"
)

// UsernameKeyPrefix indexes users by username to keep usernames unique.
const UsernameKeyPrefix = "username:"

// BadgerUserRepository implements UserStore using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create stores a new user, rejecting a taken username
func (r *BadgerUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		nameKey := []byte(UsernameKeyPrefix + user.Username)
		if _, err := txn.Get(nameKey); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if user.ID == "" {
			user.ID = NewID()
		}
		user.BeforeCreate()

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(nameKey, []byte(user.ID))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		return readEntity(txn, userKey(id), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
