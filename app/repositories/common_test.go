package repositories

import (
	"testing"
	"time"

	"estatehub/app/models"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "post:abc", string(postKey("abc")))
	assert.Equal(t, "postdetail:abc", string(postDetailKey("abc")))
	assert.Equal(t, "user:u1", string(userKey("u1")))
	assert.Equal(t, "saved:u1:abc", string(savedKey("u1", "abc")))
	assert.Equal(t, "savedby:abc:u1", string(savedByKey("abc", "u1")))
	assert.Equal(t, "savedby:abc:", string(savedByPrefix("abc")))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSortNewestFirst(t *testing.T) {
	now := time.Now()
	posts := []*models.Post{
		{ID: "old", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "b", CreatedAt: now.Add(-time.Hour)},
		{ID: "a", CreatedAt: now.Add(-time.Hour)},
	}

	SortNewestFirst(posts)

	var ids []string
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"new", "a", "b", "old"}, ids)
}

func TestMarshalEntity(t *testing.T) {
	post := &models.Post{ID: "p1", Title: "Loft", Images: []string{"a.jpg"}}
	data, err := marshalEntity(post)
	assert.NoError(t, err)

	var decoded models.Post
	assert.NoError(t, unmarshalEntity(data, &decoded))
	assert.Equal(t, post.Title, decoded.Title)

	assert.Error(t, unmarshalEntity([]byte("{"), &decoded))
}
