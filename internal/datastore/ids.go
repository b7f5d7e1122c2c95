package datastore

import (
	"encoding/base64"

	"github.com/google/uuid"
)

const idScheme = "ciscospark://em/"

const (
	resourcePeople     = "PEOPLE"
	resourceRoom       = "ROOM"
	resourceMembership = "MEMBERSHIP"
)

// NewID mints an opaque resource identifier: a fresh UUID embedded in the
// platform URI scheme under the given resource tag, base64-encoded. Callers
// must treat the result as opaque; it is encoded, not encrypted. URL-safe
// alphabet without padding, because ids travel as path segments.
func NewID(resourceType string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(idScheme + resourceType + "/" + uuid.NewString()))
}
