package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSavedPost(t *testing.T) {
	t.Run("valid link", func(t *testing.T) {
		saved, err := NewSavedPost("u2", validPost())
		require.NoError(t, err)
		assert.Equal(t, "u2", saved.UserID)
		assert.Equal(t, "p1", saved.PostID)
	})

	t.Run("nil post", func(t *testing.T) {
		_, err := NewSavedPost("u2", nil)
		assert.Error(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := NewSavedPost("", validPost())
		assert.Error(t, err)
	})
}

func TestSavedPostBeforeCreate(t *testing.T) {
	saved := &SavedPost{UserID: "u1", PostID: "p1"}
	saved.BeforeCreate()
	assert.False(t, saved.CreatedAt.IsZero())

	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	saved.CreatedAt = stamp
	saved.BeforeCreate()
	assert.Equal(t, stamp, saved.CreatedAt)
}

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"valid user", User{Username: "jane", Email: "jane@example.com"}, false},
		{"username too short", User{Username: "j", Email: "jane@example.com"}, true},
		{"bad email", User{Username: "jane", Email: "jane"}, true},
		{"bad avatar", User{Username: "jane", Email: "jane@example.com", Avatar: strPtr("not a url")}, true},
		{"good avatar", User{Username: "jane", Email: "jane@example.com", Avatar: strPtr("https://cdn.example.com/a.png")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserOwner(t *testing.T) {
	user := &User{ID: "u1", Username: "jane", Email: "jane@example.com", Avatar: strPtr("https://cdn.example.com/a.png")}
	owner := user.Owner()
	assert.Equal(t, "jane", owner.Username)
	assert.Equal(t, user.Avatar, owner.Avatar)
}

func strPtr(s string) *string { return &s }
