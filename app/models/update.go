package models

// PostUpdate carries the mutable fields of a post. Nil fields are left
// unchanged. ID, UserID and CreatedAt are not updatable.
type PostUpdate struct {
	Title      *string           `json:"title" validate:"omitempty,min=3,max=200"`
	Price      *int              `json:"price" validate:"omitempty,gte=0,max=2147483647"`
	Images     *[]string         `json:"images" validate:"omitempty,dive,required"`
	Address    *string           `json:"address" validate:"omitempty,min=1"`
	City       *string           `json:"city" validate:"omitempty,min=1"`
	Bedroom    *int              `json:"bedroom" validate:"omitempty,gte=0,max=2147483647"`
	Bathroom   *int              `json:"bathroom" validate:"omitempty,gte=0,max=2147483647"`
	Latitude   *string           `json:"latitude"`
	Longitude  *string           `json:"longitude"`
	Type       *ListingType      `json:"type" validate:"omitempty,oneof=buy rent"`
	Property   *PropertyKind     `json:"property" validate:"omitempty,oneof=apartment house condo land"`
	PostDetail *PostDetailUpdate `json:"postDetail"`
}

// PostDetailUpdate carries the mutable fields of a post detail.
type PostDetailUpdate struct {
	Desc       *string `json:"desc" validate:"omitempty,min=1"`
	Utilities  *string `json:"utilities"`
	Pet        *string `json:"pet"`
	Income     *string `json:"income"`
	Size       *int    `json:"size" validate:"omitempty,gte=0,max=2147483647"`
	School     *int    `json:"school" validate:"omitempty,gte=0,max=2147483647"`
	Bus        *int    `json:"bus" validate:"omitempty,gte=0,max=2147483647"`
	Restaurant *int    `json:"restaurant" validate:"omitempty,gte=0,max=2147483647"`
}

// Validate checks the update against its struct tags.
func (u *PostUpdate) Validate() error {
	return validate.Struct(u)
}

// IsEmpty reports whether the update changes nothing.
func (u *PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Price == nil && u.Images == nil &&
		u.Address == nil && u.City == nil && u.Bedroom == nil &&
		u.Bathroom == nil && u.Latitude == nil && u.Longitude == nil &&
		u.Type == nil && u.Property == nil &&
		(u.PostDetail == nil || u.PostDetail.IsEmpty())
}

// IsEmpty reports whether the detail update changes nothing.
func (d *PostDetailUpdate) IsEmpty() bool {
	return d.Desc == nil && d.Utilities == nil && d.Pet == nil &&
		d.Income == nil && d.Size == nil && d.School == nil &&
		d.Bus == nil && d.Restaurant == nil
}

// Apply copies every set field onto the post. A post without a detail gets
// one when the update carries detail fields.
func (u *PostUpdate) Apply(p *Post) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Images != nil {
		p.Images = append([]string{}, (*u.Images)...)
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.Bedroom != nil {
		p.Bedroom = *u.Bedroom
	}
	if u.Bathroom != nil {
		p.Bathroom = *u.Bathroom
	}
	if u.Latitude != nil {
		p.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		p.Longitude = *u.Longitude
	}
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.Property != nil {
		p.Property = *u.Property
	}

	if u.PostDetail == nil || u.PostDetail.IsEmpty() {
		return
	}
	if p.PostDetail == nil {
		p.PostDetail = &PostDetail{PostID: p.ID}
	}
	u.PostDetail.apply(p.PostDetail)
}

func (d *PostDetailUpdate) apply(pd *PostDetail) {
	if d.Desc != nil {
		pd.Desc = *d.Desc
	}
	if d.Utilities != nil {
		pd.Utilities = d.Utilities
	}
	if d.Pet != nil {
		pd.Pet = d.Pet
	}
	if d.Income != nil {
		pd.Income = d.Income
	}
	if d.Size != nil {
		pd.Size = d.Size
	}
	if d.School != nil {
		pd.School = d.School
	}
	if d.Bus != nil {
		pd.Bus = d.Bus
	}
	if d.Restaurant != nil {
		pd.Restaurant = d.Restaurant
	}
}
