package models

import "time"

// Comment is a single piece of user-authored content fetched from a social
// platform.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// IsSelfGenerated marks content that was produced by this product
	// (e.g. a posted roast). Such comments never feed a style profile.
	IsSelfGenerated bool `json:"is_self_generated,omitempty"`
}
