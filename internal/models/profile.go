package models

import "time"

// Profile is a learner. Each profile owns its own cards, bucket placements
// and review history, and carries the practice day counter.
type Profile struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	CurrentDay int       `json:"current_day"`
	CreatedAt  time.Time `json:"created_at"`
}
