package datastore

import (
	"github.com/rs/zerolog/log"

	"collabmock/internal/domain"
)

// Directory is the read-only lookup over seeded person records.
type Directory struct {
	ds     *Datastore
	people map[domain.PersonID]domain.Person
}

// Init replaces the directory content with the given accounts. Expected to
// run once at startup, before any room or membership operation; re-seeding
// is permitted and unguarded.
func (d *Directory) Init(accounts []domain.Person) {
	d.ds.mu.Lock()
	defer d.ds.mu.Unlock()
	d.people = make(map[domain.PersonID]domain.Person, len(accounts))
	for _, p := range accounts {
		d.people[p.ID] = p
	}
	log.Debug().Str("module", "datastore.people").Int("count", len(accounts)).Msg("directory seeded")
}

// Find resolves a person by id. Pure lookup, no side effects.
func (d *Directory) Find(personID domain.PersonID) (domain.Person, error) {
	if personID == "" {
		panic("datastore: empty personID")
	}
	d.ds.mu.RLock()
	defer d.ds.mu.RUnlock()
	return d.findLocked(personID)
}

// findLocked is Find for callers already holding ds.mu.
func (d *Directory) findLocked(personID domain.PersonID) (domain.Person, error) {
	person, ok := d.people[personID]
	if !ok {
		log.Debug().Str("module", "datastore.people").Str("person", string(personID)).Msg("person not found")
		return domain.Person{}, newError(CodePersonNotFound, "could not find Person with id: %s", personID)
	}
	return person, nil
}
