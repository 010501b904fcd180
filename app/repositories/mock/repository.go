package mock

import (
	"context"
	"fmt"
	"sync"

	"estatehub/app/models"
	"estatehub/app/repositories"
)

// Store is an in-memory backend. Records are copied on the way in and out
// so callers cannot mutate stored state.
type Store struct {
	posts  map[string]*models.Post
	saved  map[string]*models.SavedPost
	users  map[string]*models.User
	nextID int
	err    error
	mutex  sync.RWMutex
}

type PostRepository struct{ *Store }

type SavedPostRepository struct{ *Store }

type UserRepository struct{ *Store }

func NewStore() *Store {
	return &Store{
		posts:  make(map[string]*models.Post),
		saved:  make(map[string]*models.SavedPost),
		users:  make(map[string]*models.User),
		nextID: 1,
	}
}

// Stores returns the mock stores sharing this backend.
func (m *Store) Stores() repositories.Stores {
	return repositories.Stores{
		Posts:      PostRepository{m},
		SavedPosts: SavedPostRepository{m},
		Users:      UserRepository{m},
		Health:     m,
	}
}

// FailWith makes every following call return err. Pass nil to recover.
func (m *Store) FailWith(err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.err = err
}

func (m *Store) Ping(ctx context.Context) error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.err
}

// SavedCount returns the number of saved links pointing at postID.
func (m *Store) SavedCount(postID string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	count := 0
	for _, s := range m.saved {
		if s.PostID == postID {
			count++
		}
	}
	return count
}

func (m *Store) newID(prefix string) string {
	id := fmt.Sprintf("%s%d", prefix, m.nextID)
	m.nextID++
	return id
}

func savedKey(userID, postID string) string {
	return userID + ":" + postID
}

func copyPost(p *models.Post) *models.Post {
	c := *p
	c.Images = append([]string(nil), p.Images...)
	if p.PostDetail != nil {
		d := *p.PostDetail
		c.PostDetail = &d
	}
	if p.User != nil {
		u := *p.User
		c.User = &u
	}
	return &c
}

// PostStore implementation
func (m PostRepository) Create(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.err != nil {
		return m.err
	}

	if post.ID == "" {
		post.ID = m.newID("post-")
	}
	if _, exists := m.posts[post.ID]; exists {
		return repositories.ErrAlreadyExists
	}
	post.BeforeCreate()
	if post.PostDetail != nil {
		if post.PostDetail.ID == "" {
			post.PostDetail.ID = m.newID("detail-")
		}
		post.PostDetail.PostID = post.ID
	}
	m.posts[post.ID] = copyPost(post)
	return nil
}

func (m PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return copyPost(post), nil
}

func (m PostRepository) Update(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.err != nil {
		return m.err
	}

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	if post.PostDetail != nil {
		if post.PostDetail.ID == "" {
			post.PostDetail.ID = m.newID("detail-")
		}
		post.PostDetail.PostID = post.ID
	}
	m.posts[post.ID] = copyPost(post)
	return nil
}

func (m PostRepository) Delete(ctx context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.err != nil {
		return m.err
	}

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	for key, s := range m.saved {
		if s.PostID == id {
			delete(m.saved, key)
		}
	}
	return nil
}

func (m PostRepository) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	posts := []*models.Post{}
	for _, post := range m.posts {
		if filter.Match(post) {
			c := copyPost(post)
			c.PostDetail = nil
			posts = append(posts, c)
		}
	}
	repositories.SortNewestFirst(posts)
	return posts, nil
}

// SavedPostStore implementation
func (m SavedPostRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.err != nil {
		return false, m.err
	}

	_, exists := m.saved[savedKey(userID, postID)]
	return exists, nil
}

func (m SavedPostRepository) Create(ctx context.Context, saved *models.SavedPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.err != nil {
		return m.err
	}

	if _, exists := m.posts[saved.PostID]; !exists {
		return repositories.ErrNotFound
	}
	key := savedKey(saved.UserID, saved.PostID)
	if _, exists := m.saved[key]; exists {
		return repositories.ErrAlreadyExists
	}
	saved.BeforeCreate()
	c := *saved
	m.saved[key] = &c
	return nil
}

func (m SavedPostRepository) Delete(ctx context.Context, userID, postID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.err != nil {
		return m.err
	}

	key := savedKey(userID, postID)
	if _, exists := m.saved[key]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.saved, key)
	return nil
}

// UserStore implementation
func (m UserRepository) Create(ctx context.Context, user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.err != nil {
		return m.err
	}

	for _, u := range m.users {
		if u.Username == user.Username {
			return repositories.ErrAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = m.newID("user-")
	}
	user.BeforeCreate()
	c := *user
	m.users[user.ID] = &c
	return nil
}

func (m UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	c := *user
	return &c, nil
}
