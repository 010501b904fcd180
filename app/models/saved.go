package models

import (
	"errors"
	"time"
)

// NewSavedPost links the user to the post.
func NewSavedPost(userID string, post *Post) (*SavedPost, error) {
	if post == nil {
		return nil, errors.New("post cannot be nil")
	}

	saved := &SavedPost{UserID: userID, PostID: post.ID}
	if err := saved.Validate(); err != nil {
		return nil, err
	}
	return saved, nil
}

// Validate checks the saved post link.
func (s *SavedPost) Validate() error {
	return validate.Struct(s)
}

// BeforeCreate stamps the creation time.
func (s *SavedPost) BeforeCreate() {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
}

// Validate checks the user against its struct tags.
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate stamps the creation time.
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
}

// Owner returns the public projection of the user.
func (u *User) Owner() *PostOwner {
	return &PostOwner{Username: u.Username, Avatar: u.Avatar}
}
