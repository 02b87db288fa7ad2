package models

import "time"

// Share is a directed edge: the owner's sensor data is visible to the target.
type Share struct {
	CreatedAt time.Time `json:"createdAt"`
	OwnerID   string    `json:"ownerId"`
	TargetID  string    `json:"targetId"`
}

// SharedUser is the counterpart of a share edge as seen by the current user.
// SharedAt is set only for edges where the current user is the recipient.
type SharedUser struct {
	SharedAt *time.Time `json:"sharedAt,omitempty"`
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone,omitempty"`
}

// ShareCandidate is a search hit with a flag telling whether the current
// user already shares data with it.
type ShareCandidate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	AlreadyShared bool   `json:"isShared"`
}
