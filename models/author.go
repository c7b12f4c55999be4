package models

import "time"

// Author is a synchronized catalog entry describing a content author.
type Author struct {
	// ID is the stable identifier assigned by the remote catalog.
	ID string `json:"id"`

	// Name is the author's display name.
	Name string `json:"name"`

	// Bio is an optional short biography.
	Bio string `json:"bio,omitempty"`

	// UpdatedAt is the remote modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID implements [Entity].
func (a Author) EntityID() string {
	return a.ID
}
