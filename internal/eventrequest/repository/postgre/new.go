package postgre

import (
	"database/sql"
	"fmt"

	"event-approval/internal/eventrequest/repository"
	"event-approval/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for event requests.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("eventrequest/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("eventrequest/repository/postgre.%s", method)
}
