package models

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ListingType tells whether a post offers the property for sale or for rent.
type ListingType string

const (
	ListingBuy  ListingType = "buy"
	ListingRent ListingType = "rent"
)

// PropertyKind is the category of the listed property.
type PropertyKind string

const (
	PropertyApartment PropertyKind = "apartment"
	PropertyHouse     PropertyKind = "house"
	PropertyCondo     PropertyKind = "condo"
	PropertyLand      PropertyKind = "land"
)

// Post represents a property listing.
type Post struct {
	ID        string       `json:"id"`
	Title     string       `json:"title" validate:"required,min=3,max=200"`
	Price     int          `json:"price" validate:"gte=0,max=2147483647"`
	Images    []string     `json:"images" validate:"omitempty,dive,required"`
	Address   string       `json:"address" validate:"required"`
	City      string       `json:"city" validate:"required"`
	Bedroom   int          `json:"bedroom" validate:"gte=0,max=2147483647"`
	Bathroom  int          `json:"bathroom" validate:"gte=0,max=2147483647"`
	Latitude  string       `json:"latitude"`
	Longitude string       `json:"longitude"`
	Type      ListingType  `json:"type" validate:"required,oneof=buy rent"`
	Property  PropertyKind `json:"property" validate:"required,oneof=apartment house condo land"`
	CreatedAt time.Time    `json:"createdAt"`
	UserID    string       `json:"userId"`

	PostDetail *PostDetail `json:"postDetail,omitempty" validate:"-"`
	User       *PostOwner  `json:"user,omitempty" validate:"-"`
}

// PostDetail holds the extended description of a post.
type PostDetail struct {
	ID         string  `json:"id"`
	Desc       string  `json:"desc" validate:"required"`
	Utilities  *string `json:"utilities,omitempty"`
	Pet        *string `json:"pet,omitempty"`
	Income     *string `json:"income,omitempty"`
	Size       *int    `json:"size,omitempty" validate:"omitempty,gte=0,max=2147483647"`
	School     *int    `json:"school,omitempty" validate:"omitempty,gte=0,max=2147483647"`
	Bus        *int    `json:"bus,omitempty" validate:"omitempty,gte=0,max=2147483647"`
	Restaurant *int    `json:"restaurant,omitempty" validate:"omitempty,gte=0,max=2147483647"`
	PostID     string  `json:"postId"`
}

// PostOwner is the public part of the user owning a post.
type PostOwner struct {
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

// PostView is a post as seen by a particular viewer.
type PostView struct {
	*Post
	IsSaved bool `json:"isSaved"`
}

// SavedPost links a user to a post they bookmarked.
// (UserID, PostID) is unique.
type SavedPost struct {
	UserID    string    `json:"userId" validate:"required"`
	PostID    string    `json:"postId" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is an account that can own and save posts.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email"`
	Avatar    *string   `json:"avatar,omitempty" validate:"omitempty,url"`
	CreatedAt time.Time `json:"createdAt"`
}
