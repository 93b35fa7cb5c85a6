package checkin

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CheckIn is one user-submitted mood moment. Rows are immutable once written;
// the insight engine only ever reads copies. Score is validated to 1-10 at the
// API boundary, so downstream analysis can assume it.
type CheckIn struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_check_in_user_created,priority:1" json:"user_id"`
	Score  int       `gorm:"not null" json:"score"`
	Note   string    `gorm:"type:text" json:"note,omitempty"`

	// Client-reported extras (app version, entry surface). Opaque to the server.
	Meta datatypes.JSON `gorm:"column:meta" json:"meta,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index:idx_check_in_user_created,priority:2,sort:desc" json:"created_at"`
}

func (CheckIn) TableName() string { return "check_in" }

// HasNote reports whether the entry carries usable free text.
func (c *CheckIn) HasNote() bool {
	return c != nil && len(c.Note) > 0
}
