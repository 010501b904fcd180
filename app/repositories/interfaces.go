package repositories

import (
	"context"

	"estatehub/app/models"
)

// PostStore defines the persistence capability for posts and their details
type PostStore interface {
	// List returns the posts matching filter, newest first, without details.
	List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	// GetByID returns the post with its detail attached.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// Create assigns ids and stores the post and its detail atomically.
	Create(ctx context.Context, post *models.Post) error
	// Update stores the post and its detail atomically.
	Update(ctx context.Context, post *models.Post) error
	// Delete removes the post, its detail and every saved link to it.
	Delete(ctx context.Context, id string) error
}

// SavedPostStore defines the persistence capability for bookmarks
type SavedPostStore interface {
	Exists(ctx context.Context, userID, postID string) (bool, error)
	Create(ctx context.Context, saved *models.SavedPost) error
	Delete(ctx context.Context, userID, postID string) error
}

// UserStore defines the persistence capability for users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores groups the stores of one backend.
type Stores struct {
	Posts      PostStore
	SavedPosts SavedPostStore
	Users      UserStore
	Health     Pinger
}
