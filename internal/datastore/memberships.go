package datastore

import (
	"github.com/rs/zerolog/log"

	"collabmock/internal/domain"
)

// Ledger creates, lists and looks up membership records, and is where the
// room-membership invariants are enforced.
type Ledger struct {
	ds *Datastore
	// memberships is the insertion-ordered backing store; index maps a
	// membership id to its slice position. Records are never removed.
	memberships []domain.Membership
	index       map[domain.MembershipID]int
}

// Create adds newMemberID to a room on behalf of actor. The actor must
// already be a member of the room, the candidate must not be, and the
// candidate must resolve through the directory. isModerator must be false:
// moderation is unsupported and asking for it is a caller bug, not a
// recoverable failure.
func (l *Ledger) Create(actor *domain.Person, roomID domain.RoomID, newMemberID domain.PersonID, isModerator bool) (domain.Membership, error) {
	if actor == nil {
		panic("datastore: nil actor")
	}
	if roomID == "" {
		panic("datastore: empty roomID")
	}
	if newMemberID == "" {
		panic("datastore: empty newMemberID")
	}
	if isModerator {
		panic("datastore: moderation is not supported")
	}

	l.ds.mu.Lock()
	defer l.ds.mu.Unlock()

	var foundActor, foundCandidate bool
	for _, m := range l.memberships {
		if m.RoomID != roomID {
			continue
		}
		if m.PersonID == actor.ID {
			foundActor = true
		}
		if m.PersonID == newMemberID {
			foundCandidate = true
		}
	}

	if !foundActor {
		log.Debug().Str("module", "datastore.memberships").Str("actor", string(actor.ID)).Str("room", string(roomID)).Msg("actor is not a member of the room")
		return domain.Membership{}, newError(CodeNotAMember, "cannot create membership in a room the actor is not part of")
	}
	if foundCandidate {
		log.Debug().Str("module", "datastore.memberships").Str("person", string(newMemberID)).Str("room", string(roomID)).Msg("participant is already a member")
		return domain.Membership{}, newError(CodeAlreadyAMember, "participant is already a member of the room")
	}

	person, err := l.ds.People.findLocked(newMemberID)
	if err != nil {
		log.Debug().Str("module", "datastore.memberships").Str("person", string(newMemberID)).Msg("details not found for person")
		return domain.Membership{}, newError(CodePersonNotFound, "details not found for specified person")
	}

	return l.add(actor.ID, roomID, person), nil
}

// add is the only mutation path into the ledger, so every stored membership
// passes through the same snapshot logic: the member's first email, display
// name and org id are copied at this instant and never refreshed. Callers
// must hold ds.mu and have done their own authorization checks.
func (l *Ledger) add(actorID domain.PersonID, roomID domain.RoomID, member domain.Person) domain.Membership {
	if actorID == "" || roomID == "" || member.ID == "" {
		panic("datastore: add requires an actor, a room and a member")
	}
	if len(member.Emails) == 0 {
		panic("datastore: member has no email")
	}

	membership := domain.Membership{
		ID:                domain.MembershipID(l.ds.newID(resourceMembership)),
		RoomID:            roomID,
		PersonID:          member.ID,
		PersonEmail:       member.Emails[0],
		PersonDisplayName: member.DisplayName,
		PersonOrgID:       member.OrgID,
		IsModerator:       false,
		IsMonitor:         false,
		Created:           l.ds.timestamp(),
	}
	l.index[membership.ID] = len(l.memberships)
	l.memberships = append(l.memberships, membership)

	log.Debug().Str("module", "datastore.memberships").Str("actor", string(actorID)).Str("room", string(roomID)).Str("person", string(member.ID)).Msg("membership added")
	return membership
}

// List returns the actor's memberships in insertion order.
func (l *Ledger) List(actor *domain.Person) []domain.Membership {
	if actor == nil {
		panic("datastore: nil actor")
	}

	l.ds.mu.RLock()
	defer l.ds.mu.RUnlock()

	list := make([]domain.Membership, 0)
	for _, m := range l.memberships {
		if m.PersonID == actor.ID {
			list = append(list, m)
		}
	}
	return list
}

// Find resolves a membership by id, then checks the actor shares a room with
// it. The two steps stay distinct on purpose: an outsider probing a known id
// gets NOT_MEMBER_OF_ROOM, not MEMBERSHIP_NOT_FOUND.
func (l *Ledger) Find(actor *domain.Person, membershipID domain.MembershipID) (domain.Membership, error) {
	if actor == nil {
		panic("datastore: nil actor")
	}
	if membershipID == "" {
		panic("datastore: empty membershipID")
	}

	l.ds.mu.RLock()
	defer l.ds.mu.RUnlock()

	i, ok := l.index[membershipID]
	if !ok {
		log.Debug().Str("module", "datastore.memberships").Str("membership", string(membershipID)).Msg("membership not found")
		return domain.Membership{}, newError(CodeMembershipNotFound, "membership does not exist with id: %s", membershipID)
	}
	target := l.memberships[i]

	for _, m := range l.memberships {
		if m.RoomID == target.RoomID && m.PersonID == actor.ID {
			return target, nil
		}
	}

	log.Debug().Str("module", "datastore.memberships").Str("actor", string(actor.ID)).Str("room", string(target.RoomID)).Msg("actor is not part of the membership's room")
	return domain.Membership{}, newError(CodeNotMemberOfRoom, "membership found but the user: %s is not part of room: %s", actor.ID, target.RoomID)
}
