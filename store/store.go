// Package store is the sole gateway to the relational store. It converts
// domain calls into parameterized statements and shields callers from a
// missing database: reads degrade to empty/absent results and writes are
// not attempted, so the rest of the app keeps functioning in dev
// environments without a configured DATABASE_URL.
package store

import (
	"errors"
	"time"

	"github.com/bloomwellness/studio-api/db"
	"github.com/bloomwellness/studio-api/models"
)

// ErrOpenIDRequired is returned by UpsertUser when the external identity id
// is missing.
var ErrOpenIDRequired = errors.New("user openId is required for upsert")

// UserUpsert carries the fields merged into a user row on sign-in. Nil
// pointer fields are left untouched on an existing row.
type UserUpsert struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

// NewAppointment is the input for a public booking. Status is not part of
// the input: new appointments are always created pending.
type NewAppointment struct {
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	ServiceType     string
	AppointmentDate time.Time
	Duration        int
	Notes           string
}

// AppointmentFilters compose conjunctively; zero values are not applied.
type AppointmentFilters struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

type NewBlogPost struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	Author        string
	Category      string
	FeaturedImage string
	Published     int
}

// BlogPostPatch holds a partial update; nil fields are left unchanged.
type BlogPostPatch struct {
	Title         *string
	Slug          *string
	Excerpt       *string
	Content       *string
	Author        *string
	Category      *string
	FeaturedImage *string
	Published     *int
}

type NewContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Store exposes the typed persistence operations for the four entities.
// "Not found" is an absent result, never an error.
type Store interface {
	UpsertUser(in UserUpsert) error
	GetUserByOpenID(openID string) (*models.User, error)

	CreateAppointment(in NewAppointment) (*models.Appointment, error)
	GetAppointmentByID(id uint) (*models.Appointment, error)
	GetAppointments(f AppointmentFilters) ([]models.Appointment, error)
	UpdateAppointmentStatus(id uint, status models.AppointmentStatus) (*models.Appointment, error)

	CreateBlogPost(in NewBlogPost) (*models.BlogPost, error)
	GetBlogPostByID(id uint) (*models.BlogPost, error)
	GetBlogPostBySlug(slug string) (*models.BlogPost, error)
	GetPublishedBlogPosts(limit, offset int) ([]models.BlogPost, error)
	GetAllBlogPosts() ([]models.BlogPost, error)
	UpdateBlogPost(id uint, patch BlogPostPatch) (*models.BlogPost, error)
	DeleteBlogPost(id uint) (bool, error)

	CreateContactSubmission(in NewContactSubmission) (*models.ContactSubmission, error)
	GetContactSubmissionByID(id uint) (*models.ContactSubmission, error)
	GetContactSubmissions() ([]models.ContactSubmission, error)
	MarkContactSubmissionAsRead(id uint) (bool, error)
}

// DB implements Store on top of a lazily-connected GORM handle.
type DB struct {
	handle      *db.Handle
	ownerOpenID string
}

// New returns a Store backed by the given handle. ownerOpenID is the
// external identity auto-promoted to admin on upsert.
func New(handle *db.Handle, ownerOpenID string) *DB {
	return &DB{handle: handle, ownerOpenID: ownerOpenID}
}
