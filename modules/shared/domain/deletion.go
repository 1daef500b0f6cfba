package domain

import "time"

// Deletion is the soft-delete state of an aggregate.
// Hard deletes never pass through here; they remove the aggregate.
type Deletion struct {
	deleted   bool
	deletedAt *time.Time
}

// DeletionFrom rebuilds the state from stored values.
func DeletionFrom(deletedAt *time.Time) Deletion {
	if deletedAt == nil {
		return Deletion{}
	}
	at := *deletedAt
	return Deletion{deleted: true, deletedAt: &at}
}

func (d *Deletion) MarkDeleted() {
	now := time.Now().UTC()
	d.deleted = true
	d.deletedAt = &now
}

func (d *Deletion) Restore() {
	d.deleted = false
	d.deletedAt = nil
}

func (d Deletion) IsDeleted() bool { return d.deleted }

// DeletedAt returns the deletion time and whether the aggregate is deleted.
func (d Deletion) DeletedAt() (time.Time, bool) {
	if d.deletedAt == nil {
		return time.Time{}, false
	}
	return *d.deletedAt, true
}

// Status renders the state for humans: "Active" or "Deleted at <time>".
func (d Deletion) Status() string {
	if !d.deleted {
		return "Active"
	}
	if d.deletedAt == nil {
		return "Deleted"
	}
	return "Deleted at " + d.deletedAt.Local().Format(humanLayout)
}

func (d Deletion) String() string { return d.Status() }
