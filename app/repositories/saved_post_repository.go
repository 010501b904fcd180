package repositories

import (
	"context"
	"errors"

	"estatehub/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerSavedPostRepository implements SavedPostStore using BadgerDB
type BadgerSavedPostRepository struct {
	db *badger.DB
}

// NewBadgerSavedPostRepository creates a new BadgerSavedPostRepository
func NewBadgerSavedPostRepository(db *badger.DB) *BadgerSavedPostRepository {
	return &BadgerSavedPostRepository{db: db}
}

// Exists reports whether userID has saved postID
func (r *BadgerSavedPostRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(savedKey(userID, postID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// Create links a user to a post. The post must exist.
func (r *BadgerSavedPostRepository) Create(ctx context.Context, saved *models.SavedPost) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(postKey(saved.PostID)); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		key := savedKey(saved.UserID, saved.PostID)
		if _, err := txn.Get(key); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		saved.BeforeCreate()
		data, err := marshalEntity(saved)
		if err != nil {
			return err
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		// Reverse index so deleting the post can find its links.
		return txn.Set(savedByKey(saved.PostID, saved.UserID), nil)
	})
}

// Delete removes the link between userID and postID
func (r *BadgerSavedPostRepository) Delete(ctx context.Context, userID, postID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := savedKey(userID, postID)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(savedByKey(postID, userID))
	})
}
