package domain

type MembershipID string

// Membership links a person to a room. The person* fields are a snapshot of
// the directory record at creation time: copy-on-create, never synchronized.
type Membership struct {
	ID                MembershipID `json:"id"`
	RoomID            RoomID       `json:"roomId"`
	PersonID          PersonID     `json:"personId"`
	PersonEmail       string       `json:"personEmail"`
	PersonDisplayName string       `json:"personDisplayName"`
	PersonOrgID       string       `json:"personOrgId"`
	IsModerator       bool         `json:"isModerator"`
	IsMonitor         bool         `json:"isMonitor"`
	Created           string       `json:"created"`
}
