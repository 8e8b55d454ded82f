package ownership

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContextKey is where middleware stores the resolved caller on the gin
// context.
const ContextKey = "caller"

// Caller is the identity attached to every authenticated request.
type Caller struct {
	ID          uuid.UUID
	IsSuperuser bool
}

// MayAccess reports whether the caller can read or mutate a record owned by
// ownerID. Superusers bypass the ownership check entirely.
func MayAccess(caller Caller, ownerID uuid.UUID) bool {
	return caller.IsSuperuser || ownerID == caller.ID
}

// Scope restricts list queries to the caller's own records. Superusers get
// an unrestricted query.
func Scope(caller Caller) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if caller.IsSuperuser {
			return db
		}
		return db.Where("owner_id = ?", caller.ID)
	}
}
