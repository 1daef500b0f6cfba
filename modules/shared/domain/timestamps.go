package domain

import (
	"fmt"
	"time"
)

const (
	humanLayout = "Jan 02, 2006 03:04 PM"
	dateLayout  = "2006-01-02"
	timeLayout  = "03:04 PM"
	never       = "Never"
)

// Timestamps records when an aggregate was created and last changed.
// UpdatedAt is absent until the first change after creation.
type Timestamps struct {
	createdAt time.Time
	updatedAt *time.Time
}

func NewTimestamps() Timestamps {
	return Timestamps{createdAt: time.Now().UTC()}
}

// TimestampsFrom rebuilds timestamps from stored values; a nil updatedAt
// means the aggregate was never changed.
func TimestampsFrom(createdAt time.Time, updatedAt *time.Time) Timestamps {
	t := Timestamps{createdAt: createdAt}
	if updatedAt != nil {
		u := *updatedAt
		t.updatedAt = &u
	}
	return t
}

func (t Timestamps) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last change time and whether there was one.
func (t Timestamps) UpdatedAt() (time.Time, bool) {
	if t.updatedAt == nil {
		return time.Time{}, false
	}
	return *t.updatedAt, true
}

// Touch marks the aggregate as changed now.
func (t *Timestamps) Touch() {
	now := time.Now().UTC()
	t.updatedAt = &now
}

func (t Timestamps) CreatedHuman() string { return t.createdAt.Local().Format(humanLayout) }
func (t Timestamps) CreatedDate() string  { return t.createdAt.Format(dateLayout) }
func (t Timestamps) CreatedTime() string  { return t.createdAt.Local().Format(timeLayout) }

func (t Timestamps) UpdatedHuman() string { return t.formatUpdated(humanLayout, true) }
func (t Timestamps) UpdatedDate() string  { return t.formatUpdated(dateLayout, false) }
func (t Timestamps) UpdatedTime() string  { return t.formatUpdated(timeLayout, true) }

func (t Timestamps) formatUpdated(layout string, local bool) string {
	if t.updatedAt == nil {
		return never
	}
	u := *t.updatedAt
	if local {
		u = u.Local()
	}
	return u.Format(layout)
}

func (t Timestamps) String() string {
	return fmt.Sprintf("Created: %s, Updated: %s", t.CreatedHuman(), t.UpdatedHuman())
}
