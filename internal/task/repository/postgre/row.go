package postgre

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-management/internal/model"
)

type taskRow struct {
	ID              string     `gorm:"type:uuid;primaryKey"`
	UserID          string     `gorm:"type:uuid;index;not null"`
	Content         string     `gorm:"type:text;not null"`
	Category        string     `gorm:"type:varchar(64);not null;default:other"`
	Priority        int        `gorm:"not null;default:3"`
	Status          string     `gorm:"type:varchar(16);not null;default:pending"`
	Deadline        *time.Time `gorm:"type:date;index"`
	CalendarEventID string     `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (taskRow) TableName() string { return "tasks" }

// BeforeCreate assigns the id when the caller did not.
func (t *taskRow) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func (r *implRepository) toModel(row taskRow) model.Task {
	t := model.Task{
		ID:              row.ID,
		UserID:          row.UserID,
		Content:         row.Content,
		Category:        row.Category,
		Priority:        model.NormalizePriority(row.Priority),
		Status:          model.NormalizeStatus(row.Status),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		CalendarEventID: row.CalendarEventID,
	}
	if row.Deadline != nil && !row.Deadline.IsZero() {
		// DATE comes back as UTC midnight; keep the calendar day in r.loc.
		d := time.Date(row.Deadline.Year(), row.Deadline.Month(), row.Deadline.Day(), 0, 0, 0, 0, r.loc)
		t.Deadline = &d
	}
	return t
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
