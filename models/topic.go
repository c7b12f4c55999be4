package models

import "time"

// Topic is a synchronized catalog entry describing a subject area that
// resources and authors are grouped under.
type Topic struct {
	// ID is the stable identifier assigned by the remote catalog.
	ID string `json:"id"`

	// Title is the human-readable topic name.
	Title string `json:"title"`

	// Summary is an optional short description.
	Summary string `json:"summary,omitempty"`

	// UpdatedAt is the remote modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID implements [Entity].
func (t Topic) EntityID() string {
	return t.ID
}
