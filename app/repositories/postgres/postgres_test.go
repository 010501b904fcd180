package postgres

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"estatehub/app/errs"
	"estatehub/app/models"
	"estatehub/app/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args := buildListQuery(models.NewPostFilter())
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY p.created_at DESC")
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		two := 2
		filter := models.PostFilter{
			City:     "London",
			Type:     models.ListingRent,
			Property: models.PropertyHouse,
			Bedroom:  &two,
			MinPrice: 100,
			MaxPrice: 900,
		}

		query, args := buildListQuery(filter)
		assert.Contains(t, query, "WHERE p.city = $1 AND p.type = $2 AND p.property = $3 AND p.bedroom = $4 AND p.price >= $5 AND p.price <= $6")
		assert.Equal(t, []any{"London", "rent", "house", 2, 100, 900}, args)
	})

	t.Run("upper bound alone", func(t *testing.T) {
		filter := models.NewPostFilter()
		filter.MaxPrice = 500

		query, args := buildListQuery(filter)
		assert.Contains(t, query, "WHERE p.price <= $1")
		assert.Equal(t, []any{500}, args)
	})

	t.Run("lower bound beyond column range", func(t *testing.T) {
		filter := models.NewPostFilter()
		filter.MinPrice = math.MaxInt32 + 1

		query, args := buildListQuery(filter)
		assert.Contains(t, query, "WHERE FALSE")
		assert.Empty(t, args)
	})

	t.Run("bedroom beyond column range", func(t *testing.T) {
		filter := models.NewPostFilter()
		bedroom := 3000000000
		filter.Bedroom = &bedroom

		query, args := buildListQuery(filter)
		assert.Contains(t, query, "WHERE FALSE")
		assert.Empty(t, args)
	})
}

func TestTranslate(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translate(nil))
	})

	t.Run("no rows", func(t *testing.T) {
		err := translate(fmt.Errorf("scan: %w", pgx.ErrNoRows))
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("unique violation", func(t *testing.T) {
		err := translate(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_username_key"})
		assert.ErrorIs(t, err, repositories.ErrAlreadyExists)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := translate(&pgconn.PgError{
			Code:           foreignKeyViolation,
			TableName:      "posts",
			ConstraintName: "posts_user_id_fkey",
		})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "The referenced User does not exist", httpErr.Message)
		assert.Equal(t, "USER_NOT_FOUND", httpErr.Code)
	})

	t.Run("not null violation", func(t *testing.T) {
		err := translate(&pgconn.PgError{Code: notNullViolation, ColumnName: "post_id"})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, "The Post Id is required", httpErr.Message)
		assert.Equal(t, []errs.FieldError{{Field: "post_id", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("other driver error", func(t *testing.T) {
		src := &pgconn.PgError{Code: "40001"}
		err := translate(src)
		assert.ErrorIs(t, err, src)
		assert.NotErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("plain error passes through", func(t *testing.T) {
		src := errors.New("connection reset")
		assert.Equal(t, src, translate(src))
	})
}

func TestHumanizing(t *testing.T) {
	assert.Equal(t, "user_id", foreignKeyColumn("posts", "posts_user_id_fkey"))
	assert.Equal(t, "post_id", foreignKeyColumn("saved_posts", "saved_posts_post_id_fkey"))
	assert.Equal(t, "", foreignKeyColumn("posts", "custom_constraint"))

	assert.Equal(t, "User", entityName("user_id", "posts"))
	assert.Equal(t, "Post", entityName("", "posts"))
	assert.Equal(t, "Record", entityName("", ""))
	assert.Equal(t, "Post Detail", humanize("post_detail"))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "001_create_estate_tables.sql", entries[0].Name())
}
