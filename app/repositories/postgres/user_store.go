package postgres

import (
	"context"

	"estatehub/app/models"
	"estatehub/app/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore implements repositories.UserStore on PostgreSQL.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = repositories.NewID()
	}
	user.BeforeCreate()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, avatar, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Email, user.Avatar, user.CreatedAt)
	return translate(err)
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, email, avatar, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.Avatar, &u.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
