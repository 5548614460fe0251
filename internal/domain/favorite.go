package domain

import "time"

type FavoriteAddress struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" gorm:"index"`
	Label     string    `json:"label"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}
