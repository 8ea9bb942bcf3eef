package model

import "time"

// Music represents a catalog track. ArtistID references the owning user;
// ArtistName is the display name snapshotted at creation time and is not
// re-derived when the owner renames themselves.
type Music struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Genre      string    `json:"genre,omitempty"`
	CoverURL   string    `json:"coverUrl,omitempty"`
	ArtistName string    `json:"artistName,omitempty"`
	ArtistID   int64     `json:"artistId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
