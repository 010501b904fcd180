package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPost() *Post {
	return &Post{
		ID:       "p1",
		Title:    "Sunny flat",
		Price:    1200,
		Address:  "1 Main St",
		City:     "London",
		Bedroom:  2,
		Bathroom: 1,
		Type:     ListingRent,
		Property: PropertyApartment,
		UserID:   "u1",
	}
}

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Post)
		wantErr bool
	}{
		{
			name:    "valid post",
			mutate:  func(p *Post) {},
			wantErr: false,
		},
		{
			name:    "title too short",
			mutate:  func(p *Post) { p.Title = "ab" },
			wantErr: true,
		},
		{
			name:    "negative price",
			mutate:  func(p *Post) { p.Price = -1 },
			wantErr: true,
		},
		{
			name:    "price beyond column range",
			mutate:  func(p *Post) { p.Price = 2147483648 },
			wantErr: true,
		},
		{
			name:    "price at column limit",
			mutate:  func(p *Post) { p.Price = 2147483647 },
			wantErr: false,
		},
		{
			name:    "bedroom beyond column range",
			mutate:  func(p *Post) { p.Bedroom = 3000000000 },
			wantErr: true,
		},
		{
			name:    "bathroom beyond column range",
			mutate:  func(p *Post) { p.Bathroom = 2147483648 },
			wantErr: true,
		},
		{
			name:    "detail size beyond column range",
			mutate: func(p *Post) {
				size := 2147483648
				p.PostDetail = &PostDetail{Desc: "Lovely", Size: &size}
			},
			wantErr: true,
		},
		{
			name:    "unknown type",
			mutate:  func(p *Post) { p.Type = "lease" },
			wantErr: true,
		},
		{
			name:    "unknown property",
			mutate:  func(p *Post) { p.Property = "castle" },
			wantErr: true,
		},
		{
			name:    "missing city",
			mutate:  func(p *Post) { p.City = "" },
			wantErr: true,
		},
		{
			name:    "detail without desc",
			mutate:  func(p *Post) { p.PostDetail = &PostDetail{} },
			wantErr: true,
		},
		{
			name:    "detail with desc",
			mutate:  func(p *Post) { p.PostDetail = &PostDetail{Desc: "Lovely"} },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(post)
			err := post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := validPost()

	assert.True(t, post.CreatedAt.IsZero())
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())
	assert.NotNil(t, post.Images)
}

func TestPostOwnership(t *testing.T) {
	post := validPost()

	assert.True(t, post.IsOwnedBy("u1"))
	assert.False(t, post.IsOwnedBy("u2"))
	assert.False(t, post.IsOwnedBy(""))
}

func TestPostSetDetail(t *testing.T) {
	post := validPost()

	t.Run("set valid detail", func(t *testing.T) {
		detail := &PostDetail{Desc: "Close to the park"}
		err := post.SetDetail(detail)
		assert.NoError(t, err)
		assert.Equal(t, post.ID, detail.PostID)
		assert.Equal(t, detail, post.PostDetail)
	})

	t.Run("set nil detail", func(t *testing.T) {
		err := post.SetDetail(nil)
		assert.Error(t, err)
	})
}
