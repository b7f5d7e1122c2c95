package datastore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabmock/internal/domain"
)

func TestDirectoryFind(t *testing.T) {
	ds := newTestStore(t)

	person, err := ds.People.Find("p-alice")
	require.NoError(t, err)
	assert.Equal(t, domain.PersonID("p-alice"), person.ID)
	assert.Equal(t, "Alice", person.DisplayName)
	assert.Equal(t, []string{"alice@example.com", "alice.work@example.com"}, person.Emails)
}

func TestDirectoryFindUnknown(t *testing.T) {
	ds := newTestStore(t)

	_, err := ds.People.Find("p-nobody")
	require.Error(t, err)
	assert.Equal(t, CodePersonNotFound, CodeOf(err))

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Contains(t, se.Message, "p-nobody")
}

func TestDirectoryFindEmptyIDPanics(t *testing.T) {
	ds := newTestStore(t)

	assert.Panics(t, func() {
		_, _ = ds.People.Find("")
	})
}

func TestDirectoryReseedReplaces(t *testing.T) {
	ds := newTestStore(t)

	ds.People.Init([]domain.Person{bob()})

	_, err := ds.People.Find("p-alice")
	assert.Equal(t, CodePersonNotFound, CodeOf(err))

	person, err := ds.People.Find("p-bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", person.DisplayName)
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(errors.New("boom")))
	assert.Equal(t, Code(""), CodeOf(nil))
}
