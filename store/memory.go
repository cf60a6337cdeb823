package store

import (
	"context"
	"sort"
	"sync"

	"espora/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by tests and local development. It
// applies the same set/counter semantics as the Mongo implementation:
// AddToUserSet never duplicates, RemoveFromUserSet on an absent value is a
// no-op, IncPostCounter is unconditional.
var _ Store = (*Memory)(nil)

type Memory struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	posts    map[string]*models.Post
	coments  map[string]*models.Coment
	replys   map[string]*models.Reply
	pushSubs []models.PushSubscription
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]*models.User),
		posts:   make(map[string]*models.Post),
		coments: make(map[string]*models.Coment),
		replys:  make(map[string]*models.Reply),
	}
}

func (m *Memory) InsertUser(ctx context.Context, u *models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	m.users[u.ID.Hex()] = &cp
	return u.ID.Hex(), nil
}

func (m *Memory) GetUser(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) MergeUser(ctx context.Context, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "birthdate":
			u.Birthdate = v.(string)
		case "country":
			u.Country = v.(string)
		case "region":
			u.Region = v.(string)
		case "category":
			u.Category = v.(string)
		case "artisticStyle":
			u.ArtisticStyle = v.(string)
		case "aboutYourProject":
			u.AboutYourProject = v.(string)
		case "wantsFromEspora":
			u.WantsFromEspora = v.(string)
		case "profilePhoto":
			u.ProfilePhoto = v.(string)
		case "registerCompleted":
			u.RegisterCompleted = v.(bool)
		}
	}
	return nil
}

func (m *Memory) userSet(u *models.User, field string) *[]string {
	switch field {
	case FieldLikedPostIds:
		return &u.LikedPostIds
	case FieldSavedPostIds:
		return &u.SavedPostIds
	case FieldFollowers:
		return &u.Followers
	case FieldFollowed:
		return &u.Followed
	}
	return nil
}

func (m *Memory) AddToUserSet(ctx context.Context, id, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	set := m.userSet(u, field)
	if set == nil {
		return nil
	}
	for _, v := range *set {
		if v == value {
			return nil
		}
	}
	*set = append(*set, value)
	return nil
}

func (m *Memory) RemoveFromUserSet(ctx context.Context, id, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	set := m.userSet(u, field)
	if set == nil {
		return nil
	}
	out := (*set)[:0]
	for _, v := range *set {
		if v != value {
			out = append(out, v)
		}
	}
	*set = out
	return nil
}

func (m *Memory) InsertPost(ctx context.Context, p *models.Post) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	m.posts[p.ID.Hex()] = &cp
	return p.ID.Hex(), nil
}

func (m *Memory) GetPost(ctx context.Context, id string) (*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *Memory) ListPosts(ctx context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	posts := make([]models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (m *Memory) ListPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var posts []models.Post
	for _, p := range m.posts {
		if p.UserID == userID {
			posts = append(posts, *p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (m *Memory) SetPostImgs(ctx context.Context, id string, imgs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return ErrNotFound
	}
	p.Imgs = imgs
	return nil
}

func (m *Memory) IncPostCounter(ctx context.Context, id, field string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return ErrNotFound
	}
	switch field {
	case FieldLikes:
		p.Likes += delta
	case FieldSaves:
		p.Saves += delta
	}
	return nil
}

func (m *Memory) InsertComent(ctx context.Context, c *models.Coment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	cp := *c
	m.coments[c.ID.Hex()] = &cp
	return c.ID.Hex(), nil
}

func (m *Memory) GetComent(ctx context.Context, id string) (*models.Coment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.coments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *Memory) ListComents(ctx context.Context, postID string) ([]models.Coment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var coments []models.Coment
	for _, c := range m.coments {
		if c.PostID == postID {
			coments = append(coments, *c)
		}
	}
	sort.Slice(coments, func(i, j int) bool { return coments[i].CreatedAt.Before(coments[j].CreatedAt) })
	return coments, nil
}

func (m *Memory) InsertReply(ctx context.Context, r *models.Reply) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	cp := *r
	m.replys[r.ID.Hex()] = &cp
	return r.ID.Hex(), nil
}

func (m *Memory) ListReplys(ctx context.Context, comentID string) ([]models.Reply, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var replys []models.Reply
	for _, r := range m.replys {
		if r.ComentID == comentID {
			replys = append(replys, *r)
		}
	}
	sort.Slice(replys, func(i, j int) bool { return replys[i].CreatedAt.Before(replys[j].CreatedAt) })
	return replys, nil
}

func (m *Memory) InsertPushSub(ctx context.Context, s *models.PushSubscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.pushSubs {
		if existing.UserID == s.UserID && existing.Sub.Endpoint == s.Sub.Endpoint {
			m.pushSubs[i] = *s
			return nil
		}
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	m.pushSubs = append(m.pushSubs, *s)
	return nil
}

func (m *Memory) ListPushSubs(ctx context.Context, userID string) ([]models.PushSubscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var subs []models.PushSubscription
	for _, s := range m.pushSubs {
		if s.UserID == userID {
			subs = append(subs, s)
		}
	}
	return subs, nil
}
