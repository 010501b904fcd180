package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.PostDetail != nil {
		return p.PostDetail.Validate()
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// IsOwnedBy reports whether userID is the owner of the post.
func (p *Post) IsOwnedBy(userID string) bool {
	return userID != "" && p.UserID == userID
}

// SetDetail attaches the detail to the post and updates its PostID
func (p *Post) SetDetail(detail *PostDetail) error {
	if detail == nil {
		return errors.New("post detail cannot be nil")
	}

	detail.PostID = p.ID
	p.PostDetail = detail
	return nil
}

// Validate checks the detail against its struct tags.
func (d *PostDetail) Validate() error {
	return validate.Struct(d)
}
