package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estatehub/app/models"
	"estatehub/app/repositories"
)

// PostService handles business logic for property listings
type PostService struct {
	posts repositories.PostStore
	saved repositories.SavedPostStore
	users repositories.UserStore
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostStore, saved repositories.SavedPostStore, users repositories.UserStore) *PostService {
	return &PostService{
		posts: posts,
		saved: saved,
		users: users,
	}
}

// ListPosts returns the posts matching filter, newest first
func (s *PostService) ListPosts(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPost retrieves a post with its detail and owner. IsSaved is only set
// when viewerID is non-empty and that user saved the post.
func (s *PostService) GetPost(ctx context.Context, id, viewerID string) (*models.PostView, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}

	owner, err := s.users.GetByID(ctx, post.UserID)
	switch {
	case err == nil:
		post.User = owner.Owner()
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("get owner of post %s: %w", id, err)
	}

	view := &models.PostView{Post: post}
	if viewerID == "" {
		return view, nil
	}

	view.IsSaved, err = s.saved.Exists(ctx, viewerID, id)
	if err != nil {
		return nil, fmt.Errorf("check saved post %s: %w", id, err)
	}
	return view, nil
}

// CreatePost stores a new post owned by userID together with its detail.
// Client-supplied ids and timestamps are discarded.
func (s *PostService) CreatePost(ctx context.Context, userID string, post *models.Post, detail *models.PostDetail) (*models.Post, error) {
	if post == nil || detail == nil {
		return nil, ErrMissingData
	}

	post.ID = ""
	post.UserID = userID
	post.CreatedAt = time.Time{}
	post.User = nil
	detail.ID = ""
	if err := post.SetDetail(detail); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// UpdatePost applies update to the post if userID owns it
func (s *PostService) UpdatePost(ctx context.Context, userID, id string, update *models.PostUpdate) (*models.Post, error) {
	if update == nil || update.IsEmpty() {
		return nil, fmt.Errorf("%w: no updatable fields", ErrInvalidInput)
	}
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	if !post.IsOwnedBy(userID) {
		return nil, ErrNotOwner
	}

	update.Apply(post)
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	return post, nil
}

// DeletePost removes the post if userID owns it
func (s *PostService) DeletePost(ctx context.Context, userID, id string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get post %s: %w", id, err)
	}
	if !post.IsOwnedBy(userID) {
		return ErrNotOwner
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}
