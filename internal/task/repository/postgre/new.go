package postgre

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-management/internal/task/repository"
	"task-management/pkg/log"
)

type implRepository struct {
	db  *gorm.DB
	l   log.Logger
	loc *time.Location
}

// New creates a GORM-backed Repository. loc is the timezone deadlines are
// read back in, so a DATE column keeps its calendar day.
func New(db *gorm.DB, l log.Logger, loc *time.Location) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{db: db, l: l, loc: loc}
}

// AutoMigrate creates or updates the tasks table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&taskRow{})
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
