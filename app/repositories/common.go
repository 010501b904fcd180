package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"estatehub/app/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix       = "post:"
	PostDetailKeyPrefix = "postdetail:"
	UserKeyPrefix       = "user:"
	SavedKeyPrefix      = "saved:"
	// SavedByKeyPrefix indexes saved links by post so deletes can cascade.
	SavedByKeyPrefix = "savedby:"
)

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

func postKey(id string) []byte       { return []byte(PostKeyPrefix + id) }
func postDetailKey(id string) []byte { return []byte(PostDetailKeyPrefix + id) }
func userKey(id string) []byte       { return []byte(UserKeyPrefix + id) }

func savedKey(userID, postID string) []byte {
	return []byte(SavedKeyPrefix + userID + ":" + postID)
}

func savedByKey(postID, userID string) []byte {
	return []byte(SavedByKeyPrefix + postID + ":" + userID)
}

func savedByPrefix(postID string) []byte {
	return []byte(SavedByKeyPrefix + postID + ":")
}

// SortNewestFirst orders posts by creation time, newest first, breaking
// ties by id so listings are stable.
func SortNewestFirst(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
