package model

import "time"

// Favorite is the join fact between a user and a track. The (UserID, MusicID)
// pair is unique; the composite index is the backstop for concurrent toggles.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"not null;uniqueIndex:uq_favorite_user_music"`
	MusicID   int64     `json:"musicId" gorm:"not null;uniqueIndex:uq_favorite_user_music"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the gorm table name in line with the raw SQL layer.
func (Favorite) TableName() string {
	return "favorites"
}
