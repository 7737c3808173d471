package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one append-only audit record. Rows are never updated or
// deleted; the repository exposes no mutation beyond Append.
type Entry struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Action     string    `gorm:"column:action;type:varchar(60);not null;index"`
	EntityType string    `gorm:"column:entity_type;type:varchar(40);not null;index"`
	EntityID   string    `gorm:"column:entity_id;type:varchar(60);not null;index"`
	EntityName string    `gorm:"column:entity_name;type:varchar(200);not null"`
	ActorID    string    `gorm:"column:actor_id;type:varchar(60);not null;index"`
	OccurredAt time.Time `gorm:"column:occurred_at;type:timestamptz;not null;index"`
}

func (Entry) TableName() string {
	return "audit_entries"
}
