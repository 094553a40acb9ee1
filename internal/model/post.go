package model

import "time"

// Post carries a snapshot of the creating user's username and email,
// taken at creation time and never updated afterwards.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;not null;index" json:"username"`
	Email     string    `gorm:"size:40;not null" json:"email"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
