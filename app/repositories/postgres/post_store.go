package postgres

import (
	"context"
	"fmt"
	"math"
	"strings"

	"estatehub/app/models"
	"estatehub/app/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postColumns = `p.id, p.title, p.price, p.images, p.address, p.city, p.bedroom,
	p.bathroom, p.latitude, p.longitude, p.type, p.property, p.created_at, p.user_id`

// PostStore implements repositories.PostStore on PostgreSQL.
type PostStore struct {
	pool *pgxpool.Pool
}

func NewPostStore(pool *pgxpool.Pool) *PostStore {
	return &PostStore{pool: pool}
}

// buildListQuery renders the filter as a parameterised SELECT.
func buildListQuery(filter models.PostFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.City != "" {
		add("p.city = $%d", filter.City)
	}
	if filter.Type != "" {
		add("p.type = $%d", string(filter.Type))
	}
	if filter.Property != "" {
		add("p.property = $%d", string(filter.Property))
	}
	// Columns are INTEGER, so a value past int32 can match nothing.
	if filter.Bedroom != nil {
		if *filter.Bedroom > math.MaxInt32 {
			where = append(where, "FALSE")
		} else {
			add("p.bedroom = $%d", *filter.Bedroom)
		}
	}
	if filter.MinPrice > math.MaxInt32 {
		where = append(where, "FALSE")
	} else if filter.MinPrice > 0 {
		add("p.price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice < math.MaxInt32 {
		add("p.price <= $%d", filter.MaxPrice)
	}

	query := "SELECT " + postColumns + " FROM posts p"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id ASC"
	return query, args
}

func (s *PostStore) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	query, args := buildListQuery(filter)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(postScanTargets(&p)...); err != nil {
			return nil, translate(err)
		}
		posts = append(posts, &p)
	}
	return posts, translate(rows.Err())
}

func (s *PostStore) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var (
		p      models.Post
		d      models.PostDetail
		detail *string
		desc   *string
	)
	targets := append(postScanTargets(&p),
		&detail, &desc, &d.Utilities, &d.Pet, &d.Income, &d.Size, &d.School, &d.Bus, &d.Restaurant)

	err := s.pool.QueryRow(ctx, `SELECT `+postColumns+`,
		d.id, d."desc", d.utilities, d.pet, d.income, d.size, d.school, d.bus, d.restaurant
		FROM posts p LEFT JOIN post_details d ON d.post_id = p.id
		WHERE p.id = $1`, id).Scan(targets...)
	if err != nil {
		return nil, translate(err)
	}

	if detail != nil {
		d.ID = *detail
		d.PostID = p.ID
		if desc != nil {
			d.Desc = *desc
		}
		p.PostDetail = &d
	}
	return &p, nil
}

// Create inserts the post and its detail in one transaction.
func (s *PostStore) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = repositories.NewID()
	}
	post.BeforeCreate()

	return translate(pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO posts
			(id, title, price, images, address, city, bedroom, bathroom,
			 latitude, longitude, type, property, created_at, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			post.ID, post.Title, post.Price, post.Images, post.Address, post.City,
			post.Bedroom, post.Bathroom, post.Latitude, post.Longitude,
			string(post.Type), string(post.Property), post.CreatedAt, post.UserID)
		if err != nil {
			return err
		}
		return upsertDetail(ctx, tx, post)
	}))
}

// Update rewrites the mutable columns and upserts the detail in one
// transaction. Owner and creation time are never touched.
func (s *PostStore) Update(ctx context.Context, post *models.Post) error {
	return translate(pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE posts SET
			title = $2, price = $3, images = $4, address = $5, city = $6,
			bedroom = $7, bathroom = $8, latitude = $9, longitude = $10,
			type = $11, property = $12
			WHERE id = $1`,
			post.ID, post.Title, post.Price, post.Images, post.Address, post.City,
			post.Bedroom, post.Bathroom, post.Latitude, post.Longitude,
			string(post.Type), string(post.Property))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repositories.ErrNotFound
		}
		return upsertDetail(ctx, tx, post)
	}))
}

// Delete removes the post. Details and saved links go with it through
// ON DELETE CASCADE.
func (s *PostStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func upsertDetail(ctx context.Context, tx pgx.Tx, post *models.Post) error {
	d := post.PostDetail
	if d == nil {
		return nil
	}
	if d.ID == "" {
		d.ID = repositories.NewID()
	}
	d.PostID = post.ID

	// RETURNING id keeps the stored id when the detail already existed.
	return tx.QueryRow(ctx, `INSERT INTO post_details
		(id, post_id, "desc", utilities, pet, income, size, school, bus, restaurant)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (post_id) DO UPDATE SET
			"desc" = EXCLUDED."desc", utilities = EXCLUDED.utilities,
			pet = EXCLUDED.pet, income = EXCLUDED.income, size = EXCLUDED.size,
			school = EXCLUDED.school, bus = EXCLUDED.bus, restaurant = EXCLUDED.restaurant
		RETURNING id`,
		d.ID, d.PostID, d.Desc, d.Utilities, d.Pet, d.Income,
		d.Size, d.School, d.Bus, d.Restaurant).Scan(&d.ID)
}

func postScanTargets(p *models.Post) []any {
	return []any{
		&p.ID, &p.Title, &p.Price, &p.Images, &p.Address, &p.City, &p.Bedroom,
		&p.Bathroom, &p.Latitude, &p.Longitude, &p.Type, &p.Property, &p.CreatedAt, &p.UserID,
	}
}
