package model

import "time"

// Item is one inventory or shopping-list row. The two resources share this
// shape but live in separate tables and are never synchronized.
type Item struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	ItemName  string    `json:"itemName"`
	Quantity  string    `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
