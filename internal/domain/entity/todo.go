package entity

import "time"

// Todo is the authoritative record for a single todo item. The id is assigned
// by the store and never reused, even after the record is deleted.
type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
