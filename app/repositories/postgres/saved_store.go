package postgres

import (
	"context"

	"estatehub/app/models"
	"estatehub/app/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SavedPostStore implements repositories.SavedPostStore on PostgreSQL.
type SavedPostStore struct {
	pool *pgxpool.Pool
}

func NewSavedPostStore(pool *pgxpool.Pool) *SavedPostStore {
	return &SavedPostStore{pool: pool}
}

func (s *SavedPostStore) Exists(ctx context.Context, userID, postID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM saved_posts WHERE user_id = $1 AND post_id = $2)`,
		userID, postID).Scan(&exists)
	return exists, translate(err)
}

func (s *SavedPostStore) Create(ctx context.Context, saved *models.SavedPost) error {
	saved.BeforeCreate()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO saved_posts (user_id, post_id, created_at) VALUES ($1, $2, $3)`,
		saved.UserID, saved.PostID, saved.CreatedAt)
	return translate(err)
}

func (s *SavedPostStore) Delete(ctx context.Context, userID, postID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM saved_posts WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
