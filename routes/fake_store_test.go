package routes

import (
	"sort"
	"time"

	"github.com/bloomwellness/studio-api/models"
	"github.com/bloomwellness/studio-api/store"
)

// fakeStore is an in-memory store.Store used to exercise the router without
// a database. mutations counts successful writes, so tests can assert that
// rejected requests never touched storage.
type fakeStore struct {
	owner string

	users        map[string]*models.User
	appointments map[uint]*models.Appointment
	posts        map[uint]*models.BlogPost
	submissions  map[uint]*models.ContactSubmission

	nextID    uint
	mutations int
}

func newFakeStore(owner string) *fakeStore {
	return &fakeStore{
		owner:        owner,
		users:        map[string]*models.User{},
		appointments: map[uint]*models.Appointment{},
		posts:        map[uint]*models.BlogPost{},
		submissions:  map[uint]*models.ContactSubmission{},
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) UpsertUser(in store.UserUpsert) error {
	if in.OpenID == "" {
		return store.ErrOpenIDRequired
	}
	f.mutations++

	u := f.users[in.OpenID]
	if u == nil {
		u = &models.User{OpenID: in.OpenID, Role: models.RoleUser}
		f.users[in.OpenID] = u
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.LoginMethod != nil {
		u.LoginMethod = *in.LoginMethod
	}
	if in.Role != nil {
		u.Role = *in.Role
	} else if f.owner != "" && in.OpenID == f.owner {
		u.Role = models.RoleAdmin
	}
	if in.LastSignedIn != nil {
		u.LastSignedIn = *in.LastSignedIn
	} else if u.LastSignedIn.IsZero() {
		u.LastSignedIn = time.Now()
	}
	return nil
}

func (f *fakeStore) GetUserByOpenID(openID string) (*models.User, error) {
	if u, ok := f.users[openID]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateAppointment(in store.NewAppointment) (*models.Appointment, error) {
	f.mutations++
	a := &models.Appointment{
		ID:              f.id(),
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		ServiceType:     in.ServiceType,
		AppointmentDate: in.AppointmentDate,
		Duration:        in.Duration,
		Notes:           in.Notes,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	}
	f.appointments[a.ID] = a
	copied := *a
	return &copied, nil
}

func (f *fakeStore) GetAppointmentByID(id uint) (*models.Appointment, error) {
	if a, ok := f.appointments[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) GetAppointments(filters store.AppointmentFilters) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, a := range f.appointments {
		if filters.Status != "" && string(a.Status) != filters.Status {
			continue
		}
		if filters.StartDate != nil && a.AppointmentDate.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && a.AppointmentDate.After(*filters.EndDate) {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out, nil
}

func (f *fakeStore) UpdateAppointmentStatus(id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	f.mutations++
	a.Status = status
	copied := *a
	return &copied, nil
}

func (f *fakeStore) CreateBlogPost(in store.NewBlogPost) (*models.BlogPost, error) {
	f.mutations++
	p := &models.BlogPost{
		ID:            f.id(),
		Title:         in.Title,
		Slug:          in.Slug,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		Author:        in.Author,
		Category:      in.Category,
		FeaturedImage: in.FeaturedImage,
		Published:     in.Published,
		CreatedAt:     time.Now(),
	}
	if in.Published == 1 {
		now := time.Now()
		p.PublishedAt = &now
	}
	f.posts[p.ID] = p
	copied := *p
	return &copied, nil
}

func (f *fakeStore) GetBlogPostByID(id uint) (*models.BlogPost, error) {
	if p, ok := f.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetPublishedBlogPosts(limit, offset int) ([]models.BlogPost, error) {
	if limit <= 0 {
		limit = 10
	}
	published := []models.BlogPost{}
	for _, p := range f.posts {
		if p.Published == 1 {
			published = append(published, *p)
		}
	}
	sort.Slice(published, func(i, j int) bool {
		return published[i].PublishedAt.After(*published[j].PublishedAt)
	})
	if offset >= len(published) {
		return []models.BlogPost{}, nil
	}
	end := offset + limit
	if end > len(published) {
		end = len(published)
	}
	return published[offset:end], nil
}

func (f *fakeStore) GetAllBlogPosts() ([]models.BlogPost, error) {
	out := []models.BlogPost{}
	for _, p := range f.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) UpdateBlogPost(id uint, patch store.BlogPostPatch) (*models.BlogPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	f.mutations++
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.FeaturedImage != nil {
		p.FeaturedImage = *patch.FeaturedImage
	}
	if patch.Published != nil {
		p.Published = *patch.Published
		if *patch.Published == 1 && p.PublishedAt == nil {
			now := time.Now()
			p.PublishedAt = &now
		}
	}
	copied := *p
	return &copied, nil
}

func (f *fakeStore) DeleteBlogPost(id uint) (bool, error) {
	if _, ok := f.posts[id]; !ok {
		return false, nil
	}
	f.mutations++
	delete(f.posts, id)
	return true, nil
}

func (f *fakeStore) CreateContactSubmission(in store.NewContactSubmission) (*models.ContactSubmission, error) {
	f.mutations++
	s := &models.ContactSubmission{
		ID:        f.id(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	f.submissions[s.ID] = s
	copied := *s
	return &copied, nil
}

func (f *fakeStore) GetContactSubmissionByID(id uint) (*models.ContactSubmission, error) {
	if s, ok := f.submissions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) GetContactSubmissions() ([]models.ContactSubmission, error) {
	out := []models.ContactSubmission{}
	for _, s := range f.submissions {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) MarkContactSubmissionAsRead(id uint) (bool, error) {
	s, ok := f.submissions[id]
	if !ok {
		return false, nil
	}
	f.mutations++
	s.Read = 1
	return true, nil
}

var _ store.Store = (*fakeStore)(nil)
