package rbac

import (
	"time"

	"github.com/google/uuid"
)

// LeadPermission stores which UI modules a LEAD may access. It augments the
// static policy table, it does not replace it.
type LeadPermission struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LeadID    uuid.UUID `gorm:"column:lead_id;type:uuid;not null;uniqueIndex:uq_lead_permission_lead"`
	Modules   []string  `gorm:"column:modules;serializer:json"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (LeadPermission) TableName() string {
	return "lead_permissions"
}
