package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/alstha/portfolio-api/internal/auth"
	"github.com/alstha/portfolio-api/internal/store"
	"github.com/alstha/portfolio-api/types"
	"github.com/google/uuid"
)

// The fakes below stand in for the postgres repositories so handler
// behavior can be exercised without a database.

type fakeContactRepo struct {
	contacts    map[string]types.Contact
	createCalls int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]types.Contact)}
}

func (f *fakeContactRepo) List(ctx context.Context) ([]types.Contact, error) {
	out := make([]types.Contact, 0, len(f.contacts))
	for _, c := range f.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContactRepo) Get(ctx context.Context, id string) (types.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return types.Contact{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeContactRepo) Create(ctx context.Context, contact types.Contact) (types.Contact, error) {
	f.createCalls++
	now := time.Now()
	contact.ID = uuid.NewString()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	f.contacts[contact.ID] = contact
	return contact, nil
}

func (f *fakeContactRepo) Update(ctx context.Context, contact types.Contact) (types.Contact, error) {
	existing, ok := f.contacts[contact.ID]
	if !ok {
		return types.Contact{}, store.ErrNotFound
	}
	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = time.Now()
	f.contacts[contact.ID] = contact
	return contact, nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.contacts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.contacts, id)
	return nil
}

type fakeFeedbackRepo struct {
	entries     map[string]types.Feedback
	createCalls int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{entries: make(map[string]types.Feedback)}
}

func (f *fakeFeedbackRepo) List(ctx context.Context) ([]types.Feedback, error) {
	out := make([]types.Feedback, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) Get(ctx context.Context, id string) (types.Feedback, error) {
	e, ok := f.entries[id]
	if !ok {
		return types.Feedback{}, store.ErrNotFound
	}
	return e, nil
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, entry types.Feedback) (types.Feedback, error) {
	f.createCalls++
	now := time.Now()
	entry.ID = uuid.NewString()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeFeedbackRepo) Update(ctx context.Context, entry types.Feedback) (types.Feedback, error) {
	existing, ok := f.entries[entry.ID]
	if !ok {
		return types.Feedback{}, store.ErrNotFound
	}
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = time.Now()
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeFeedbackRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

type fakeProjectRepo struct {
	projects    map[string]types.Project
	createCalls int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]types.Project)}
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]types.Project, error) {
	out := make([]types.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Get(ctx context.Context, id string) (types.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return types.Project{}, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, project types.Project) (types.Project, error) {
	f.createCalls++
	now := time.Now()
	project.ID = uuid.NewString()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	f.projects[project.ID] = project
	return project, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, project types.Project) (types.Project, error) {
	existing, ok := f.projects[project.ID]
	if !ok {
		return types.Project{}, store.ErrNotFound
	}
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now()
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	f.projects[project.ID] = project
	return project, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeBlogRepo struct {
	blogs map[string]types.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: make(map[string]types.Blog)}
}

func (f *fakeBlogRepo) List(ctx context.Context, publishedOnly bool) ([]types.Blog, error) {
	out := make([]types.Blog, 0, len(f.blogs))
	for _, b := range f.blogs {
		if publishedOnly && !b.Published {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlogRepo) Get(ctx context.Context, id string) (types.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return types.Blog{}, store.ErrNotFound
	}
	return b, nil
}

func (f *fakeBlogRepo) Create(ctx context.Context, blog types.Blog) (types.Blog, error) {
	now := time.Now()
	blog.ID = uuid.NewString()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Comments == nil {
		blog.Comments = []types.Comment{}
	}
	f.blogs[blog.ID] = blog
	return blog, nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, blog types.Blog) (types.Blog, error) {
	existing, ok := f.blogs[blog.ID]
	if !ok {
		return types.Blog{}, store.ErrNotFound
	}
	blog.CreatedAt = existing.CreatedAt
	blog.UpdatedAt = time.Now()
	if blog.Comments == nil {
		blog.Comments = []types.Comment{}
	}
	f.blogs[blog.ID] = blog
	return blog, nil
}

func (f *fakeBlogRepo) AppendComment(ctx context.Context, blogID string, comment types.Comment) (types.Comment, error) {
	blog, ok := f.blogs[blogID]
	if !ok {
		return types.Comment{}, store.ErrNotFound
	}
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	blog.Comments = append(blog.Comments, comment)
	f.blogs[blogID] = blog
	return comment, nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

type fakeUserRepo struct {
	users       map[string]types.User
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]types.User)}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]types.User, error) {
	out := make([]types.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Get(ctx context.Context, id string) (types.User, error) {
	u, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	f.createCalls++
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user types.User) (types.User, error) {
	existing, ok := f.users[user.ID]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// Cookie helpers shared by handler tests.

func insiderPrincipal() types.Principal {
	return types.Principal{
		ID:    "admin-1",
		Role:  types.RoleInsider,
		Name:  "Alstha Admin",
		Email: "admin@alstha.com",
	}
}

func outsiderPrincipal() types.Principal {
	return types.Principal{
		ID:    "user-1700000000000",
		Role:  types.RoleOutsider,
		Name:  "ann",
		Email: "ann@example.com",
	}
}

func sessionCookie(p types.Principal) *http.Cookie {
	return &http.Cookie{Name: auth.CookieName, Value: auth.IssueCredential(p)}
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
