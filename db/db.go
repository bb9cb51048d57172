package db

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Handle is a lazily-initialized database connection. When no connection
// string is configured, Get reports the database as unavailable instead of
// failing, so the rest of the app can run in degraded mode (empty reads,
// no writes attempted).
type Handle struct {
	url string

	mu     sync.Mutex
	conn   *gorm.DB
	failed bool
}

// New returns a handle for the given connection string. The connection is
// not opened until the first Get.
func New(url string) *Handle {
	return &Handle{url: url}
}

// Get returns the shared connection, opening it on first use. The second
// return value is false when no database is configured or the connection
// could not be established.
func (h *Handle) Get() (*gorm.DB, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn != nil {
		return h.conn, true
	}
	if h.url == "" || h.failed {
		return nil, false
	}

	conn, err := gorm.Open(postgres.Open(h.url), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		// Remember the failure so every request does not retry the dial.
		h.failed = true
		log.WithError(err).Warn("Failed to connect to database, running in degraded mode")
		return nil, false
	}

	h.conn = conn
	log.Info("Database connection established")
	return h.conn, true
}
