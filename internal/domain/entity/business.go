package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a PYME listing. Optional fields are nil when unset.
type Business struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Comuna      *string
	Category    *string
	Phone       *string
	Email       *string
	Website     *string
	OwnerID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanBeEditedBy reports whether the identity owns the business.
func (b *Business) CanBeEditedBy(identity *Identity) bool {
	if b == nil || identity == nil || b.OwnerID == nil {
		return false
	}

	return *b.OwnerID == identity.ID
}

// BusinessFilter holds the raw search inputs. Blank values mean no constraint.
type BusinessFilter struct {
	Comuna   string
	Category string
}

// BusinessProfile carries the editable fields of a business.
type BusinessProfile struct {
	Name        string
	Description *string
	Comuna      *string
	Category    *string
	Phone       *string
	Email       *string
	Website     *string
}
