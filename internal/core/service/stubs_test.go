package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// The stubs mirror the Mongo repositories: ids are ObjectID hex strings and
// malformed ids yield domain.ErrInvalidID.

func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
	order []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	copy.ID = primitive.NewObjectID().Hex()
	r.users[copy.ID] = copy
	r.order = append(r.order, copy.ID)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.User, error) {
	u, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubPostRepo struct {
	posts map[string]*domain.BlogPost
	finds int

	// afterFind runs once the stored copy has been read.
	afterFind func()
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.BlogPost)}
}

func clonePost(p *domain.BlogPost) *domain.BlogPost {
	clone := *p
	if p.Tags != nil {
		clone.Tags = append([]string{}, p.Tags...)
	}
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	copy := clonePost(post)
	copy.ID = primitive.NewObjectID().Hex()
	r.posts[copy.ID] = copy
	return clonePost(copy), nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.BlogPost, error) {
	r.finds++
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	found := clonePost(p)
	if hook := r.afterFind; hook != nil {
		r.afterFind = nil
		hook()
	}
	return found, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.BlogPost, error) {
	ids := make([]string, 0, len(r.posts))
	for id := range r.posts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.BlogPost, 0, len(ids))
	for _, id := range ids {
		out = append(out, clonePost(r.posts[id]))
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.BlogPost) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	copy := *c
	copy.ID = primitive.NewObjectID().Hex()
	r.comments[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	out := *c
	return &out, nil
}

func (r *stubCommentRepo) List(_ context.Context) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		copy := *c
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) error {
	if _, ok := r.comments[c.ID]; !ok {
		return domain.ErrCommentNotFound
	}
	copy := *c
	r.comments[c.ID] = &copy
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

type stubPostCache struct {
	entries map[string]*domain.BlogPost
	hits    int
}

func newStubPostCache() *stubPostCache {
	return &stubPostCache{entries: make(map[string]*domain.BlogPost)}
}

func (c *stubPostCache) Get(_ context.Context, id string) (*domain.BlogPost, bool, error) {
	p, ok := c.entries[id]
	if !ok {
		return nil, false, nil
	}
	c.hits++
	return clonePost(p), true, nil
}

func (c *stubPostCache) Set(_ context.Context, post *domain.BlogPost) error {
	c.entries[post.ID] = clonePost(post)
	return nil
}

func (c *stubPostCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	return nil
}
