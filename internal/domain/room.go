package domain

type RoomID string

// Room timestamps are kept as the wire strings (RFC3339 with milliseconds)
// so clients see exactly what the real service sends.
type Room struct {
	ID           RoomID   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	IsLocked     bool     `json:"isLocked"`
	LastActivity string   `json:"lastActivity"`
	CreatorID    PersonID `json:"creatorId"`
	Created      string   `json:"created"`
}
