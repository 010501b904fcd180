package repositories

import (
	"context"
	"errors"
	"fmt"

	"estatehub/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostStore using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create stores a new post and its detail in one transaction
func (r *BadgerPostRepository) Create(ctx context.Context, post *models.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if post.ID == "" {
			post.ID = NewID()
		}
		key := postKey(post.ID)
		if _, err := txn.Get(key); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		post.BeforeCreate()
		return writePost(txn, post)
	})
}

// GetByID retrieves a post and its detail
func (r *BadgerPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		if err := readEntity(txn, postKey(id), &post); err != nil {
			return err
		}

		var detail models.PostDetail
		err := readEntity(txn, postDetailKey(id), &detail)
		switch {
		case err == nil:
			post.PostDetail = &detail
		case !errors.Is(err, ErrNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns every post matching filter, newest first
func (r *BadgerPostRepository) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %w", err)
			}
			if filter.Match(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	SortNewestFirst(posts)
	return posts, nil
}

// Update overwrites an existing post and upserts its detail
func (r *BadgerPostRepository) Update(ctx context.Context, post *models.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(postKey(post.ID)); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return writePost(txn, post)
	})
}

// Delete removes a post, its detail and the saved links pointing at it
func (r *BadgerPostRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		keys := [][]byte{key, postDetailKey(id)}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		prefix := savedByPrefix(id)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			indexKey := it.Item().KeyCopy(nil)
			userID := string(indexKey[len(prefix):])
			keys = append(keys, indexKey, savedKey(userID, id))
		}
		it.Close()

		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// writePost stores the post row and, when present, its detail.
func writePost(txn *badger.Txn, post *models.Post) error {
	row := *post
	row.PostDetail = nil
	row.User = nil

	data, err := marshalEntity(&row)
	if err != nil {
		return err
	}
	if err := txn.Set(postKey(post.ID), data); err != nil {
		return err
	}

	if post.PostDetail == nil {
		return nil
	}
	if post.PostDetail.ID == "" {
		post.PostDetail.ID = NewID()
	}
	post.PostDetail.PostID = post.ID

	data, err = marshalEntity(post.PostDetail)
	if err != nil {
		return err
	}
	return txn.Set(postDetailKey(post.ID), data)
}

// readEntity loads the value at key into entity, mapping a missing key to
// ErrNotFound.
func readEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}
