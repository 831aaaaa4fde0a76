package entity

import (
	"time"
)

// Base holds the identity, audit and soft-delete fields shared by every record.
type Base struct {
	ID         int64      `db:"id"`
	CreatedAt  time.Time  `db:"created_at"`
	CreatedBy  *string    `db:"created_by"`
	ModifiedAt *time.Time `db:"modified_at"`
	ModifiedBy *string    `db:"modified_by"`
	IsDeleted  bool       `db:"is_deleted"`
}

// MarkCreated stamps a record that is about to be inserted.
func (b *Base) MarkCreated(at time.Time, by *string) {
	b.CreatedAt = at
	b.CreatedBy = by
	b.ModifiedAt = nil
	b.ModifiedBy = nil
	b.IsDeleted = false
}

func (b *Base) MarkModified(at time.Time, by *string) {
	b.ModifiedAt = &at
	b.ModifiedBy = by
}

func (b *Base) MarkDeleted(at time.Time, by *string) {
	b.MarkModified(at, by)
	b.IsDeleted = true
}
