package services

import (
	"context"
	"errors"
	"fmt"

	"estatehub/app/models"
	"estatehub/app/repositories"
)

// SavedPostService handles bookmarking of posts
type SavedPostService struct {
	saved repositories.SavedPostStore
	posts repositories.PostStore
}

// NewSavedPostService creates a new SavedPostService
func NewSavedPostService(saved repositories.SavedPostStore, posts repositories.PostStore) *SavedPostService {
	return &SavedPostService{
		saved: saved,
		posts: posts,
	}
}

// ToggleSave saves the post for userID, or removes it when already saved.
// It reports whether the post is saved afterwards.
func (s *SavedPostService) ToggleSave(ctx context.Context, userID, postID string) (bool, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("get post %s: %w", postID, err)
	}

	exists, err := s.saved.Exists(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("check saved post %s: %w", postID, err)
	}

	if exists {
		err := s.saved.Delete(ctx, userID, postID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return false, fmt.Errorf("unsave post %s: %w", postID, err)
		}
		return false, nil
	}

	saved, err := models.NewSavedPost(userID, post)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	err = s.saved.Create(ctx, saved)
	if err != nil && !errors.Is(err, repositories.ErrAlreadyExists) {
		return false, fmt.Errorf("save post %s: %w", postID, err)
	}
	return true, nil
}
