package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreservesFileOrder(t *testing.T) {
	path := writeSeedFile(t, `[
		{"id": "p-1", "emails": ["one@example.com"], "displayName": "One", "orgId": "org"},
		{"id": "p-2", "emails": ["two@example.com", "two.alt@example.com"], "displayName": "Two", "orgId": "org"}
	]`)

	people, err := Load(path)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "One", people[0].DisplayName)
	assert.Equal(t, "Two", people[1].DisplayName)
	assert.Equal(t, []string{"two@example.com", "two.alt@example.com"}, people[1].Emails)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeSeedFile(t, `{"not": "an array"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsPersonWithoutEmails(t *testing.T) {
	path := writeSeedFile(t, `[
		{"id": "p-1", "emails": [], "displayName": "No Mail", "orgId": "org"}
	]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid person record 0")
}

func TestLoadRejectsPersonWithoutID(t *testing.T) {
	path := writeSeedFile(t, `[
		{"emails": ["x@example.com"], "displayName": "No ID", "orgId": "org"}
	]`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultsAreValid(t *testing.T) {
	defaults := Defaults()
	require.NotEmpty(t, defaults)
	for _, p := range defaults {
		assert.NoError(t, validate.Struct(&p))
	}
}
