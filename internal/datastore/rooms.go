package datastore

import (
	"sort"

	"github.com/rs/zerolog/log"

	"collabmock/internal/domain"
)

// Registry creates and lists room records.
type Registry struct {
	ds    *Datastore
	rooms map[domain.RoomID]domain.Room
}

// Create stores a new room and enrolls the actor as its sole initial member.
// Both writes happen under the same lock: a room is never observable without
// its creator membership.
func (r *Registry) Create(actor *domain.Person, title, roomType string) domain.Room {
	if actor == nil {
		panic("datastore: nil actor")
	}
	if title == "" {
		panic("datastore: empty title")
	}
	if roomType == "" {
		panic("datastore: empty room type")
	}

	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	now := r.ds.timestamp()
	room := domain.Room{
		ID:           domain.RoomID(r.ds.newID(resourceRoom)),
		Title:        title,
		Type:         roomType,
		IsLocked:     false,
		LastActivity: now,
		CreatorID:    actor.ID,
		Created:      now,
	}
	r.rooms[room.ID] = room
	r.ds.Memberships.add(actor.ID, room.ID, *actor)

	log.Info().Str("module", "datastore.rooms").Str("room", string(room.ID)).Str("creator", string(actor.ID)).Msg("room created")
	return room
}

// List returns every room, most recently active first; ties are unspecified.
// The reference service never scoped this to the actor's memberships and
// clients rely on the open listing, so the actor only gates the call.
func (r *Registry) List(actor *domain.Person) []domain.Room {
	if actor == nil {
		panic("datastore: nil actor")
	}

	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	list := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		list = append(list, room)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].LastActivity > list[j].LastActivity
	})
	return list
}

// Find resolves a single room by id.
func (r *Registry) Find(actor *domain.Person, roomID domain.RoomID) (domain.Room, error) {
	if actor == nil {
		panic("datastore: nil actor")
	}
	if roomID == "" {
		panic("datastore: empty roomID")
	}

	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		log.Debug().Str("module", "datastore.rooms").Str("room", string(roomID)).Msg("room not found")
		return domain.Room{}, newError(CodeRoomNotFound, "could not find Room with id: %s", roomID)
	}
	return room, nil
}
