package models

import "math"

// PostFilter narrows a post listing. Zero-valued string fields and a nil
// Bedroom are unconstrained. The price range is inclusive on both ends.
type PostFilter struct {
	City     string
	Type     ListingType
	Property PropertyKind
	Bedroom  *int
	MinPrice int
	MaxPrice int
}

// NewPostFilter returns a filter that matches every post.
func NewPostFilter() PostFilter {
	return PostFilter{MaxPrice: math.MaxInt}
}

// Match reports whether the post satisfies every constraint of the filter.
func (f PostFilter) Match(p *Post) bool {
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Property != "" && p.Property != f.Property {
		return false
	}
	if f.Bedroom != nil && p.Bedroom != *f.Bedroom {
		return false
	}
	return p.Price >= f.MinPrice && p.Price <= f.MaxPrice
}
