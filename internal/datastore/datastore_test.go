package datastore

import (
	"testing"
	"time"

	"collabmock/internal/domain"
)

func alice() domain.Person {
	return domain.Person{
		ID:          "p-alice",
		Emails:      []string{"alice@example.com", "alice.work@example.com"},
		DisplayName: "Alice",
		OrgID:       "org-1",
	}
}

func bob() domain.Person {
	return domain.Person{
		ID:          "p-bob",
		Emails:      []string{"bob@example.com"},
		DisplayName: "Bob",
		OrgID:       "org-1",
	}
}

func carol() domain.Person {
	return domain.Person{
		ID:          "p-carol",
		Emails:      []string{"carol@example.com"},
		DisplayName: "Carol",
		OrgID:       "org-2",
	}
}

func newTestStore(t *testing.T, opts ...Option) *Datastore {
	t.Helper()
	ds := New(opts...)
	ds.People.Init([]domain.Person{alice(), bob(), carol()})
	return ds
}

// steppedClock returns a clock that advances by step on every read, so
// consecutive creations get strictly increasing timestamps.
func steppedClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}
