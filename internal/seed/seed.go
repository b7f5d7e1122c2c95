// Package seed loads the person records the emulator starts with.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"collabmock/internal/domain"
)

var validate = validator.New()

// Load reads a JSON array of person records and validates each one: id,
// display name and org are required, and a person needs at least one email
// for membership snapshots to work. File order is preserved.
func Load(path string) ([]domain.Person, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var people []domain.Person
	if err := json.Unmarshal(raw, &people); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	for i := range people {
		if err := validate.Struct(&people[i]); err != nil {
			return nil, fmt.Errorf("invalid person record %d: %w", i, err)
		}
	}
	return people, nil
}

// Defaults are the built-in bot accounts used when no seed file is
// available, so the emulator is usable out of the box. The bearer token for
// each account is its id.
func Defaults() []domain.Person {
	return []domain.Person{
		{
			ID:          "Y2lzY29zcGFyazovL2VtL1BFT1BMRS84ODQ5YjBmYS01Y2MyLTQyODAtOWJkOS1lOWU4ZGFlMjg3NjE",
			Emails:      []string{"postman-test@collabmock.localhost"},
			DisplayName: "Postman Test",
			OrgID:       "Y2lzY29zcGFyazovL2VtL09SR0FOSVpBVElPTi9kZWZhdWx0",
		},
		{
			ID:          "Y2lzY29zcGFyazovL2VtL1BFT1BMRS9hNTE2YzQ3Ni0xNGYyLTQ1YTYtYmJlNS1hNjg4ODEwNzM0MDY",
			Emails:      []string{"bot@collabmock.localhost"},
			DisplayName: "Emulator Bot",
			OrgID:       "Y2lzY29zcGFyazovL2VtL09SR0FOSVpBVElPTi9kZWZhdWx0",
		},
	}
}
