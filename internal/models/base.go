package models

import "time"

// BaseEntity carries the system-managed fields shared by every record. It is embedded
// by value; only the repository layer assigns these fields.
type BaseEntity struct {
	ID        string     `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// sameIdentity compares ids; unpersisted entities never match anything.
func (b BaseEntity) sameIdentity(other BaseEntity) bool {
	return b.ID != "" && b.ID == other.ID
}
