// Package datastore is the in-memory relational core of the emulator:
// three interlinked collections (people, rooms, memberships) behind a
// single process-wide handle, with referential integrity enforced here
// and nowhere else.
package datastore

import (
	"sync"
	"time"

	"collabmock/internal/domain"
)

// Timestamps are rendered the way the real service renders them:
// RFC3339 UTC with milliseconds.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Datastore owns the three collections and wires their cross-references.
// One lock serializes all of them: the authorization scan in membership
// create and the mutation in add must be observed atomically, and room
// create spans two collections.
type Datastore struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func(resourceType string) string

	People      *Directory
	Rooms       *Registry
	Memberships *Ledger
}

type Option func(*Datastore)

// WithClock overrides the timestamp source. Tests use this to get
// deterministic ordering.
func WithClock(now func() time.Time) Option {
	return func(d *Datastore) { d.now = now }
}

// WithIDFunc overrides the identifier generator.
func WithIDFunc(newID func(resourceType string) string) Option {
	return func(d *Datastore) { d.newID = newID }
}

func New(opts ...Option) *Datastore {
	d := &Datastore{now: time.Now, newID: NewID}
	for _, opt := range opts {
		opt(d)
	}
	d.People = &Directory{ds: d, people: make(map[domain.PersonID]domain.Person)}
	d.Rooms = &Registry{ds: d, rooms: make(map[domain.RoomID]domain.Room)}
	d.Memberships = &Ledger{ds: d, index: make(map[domain.MembershipID]int)}
	return d
}

func (d *Datastore) timestamp() string {
	return d.now().UTC().Format(timestampLayout)
}
