package models

import "time"

// Card is a single flashcard. Cards are immutable once created; the
// scheduler tracks them by pointer, so two cards with equal fields are still
// different cards.
type Card struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profile_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Hint      string    `json:"hint"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

type CardFilter struct {
	ProfileID int64
	Tag       string
	Bucket    *int
	Limit     int
	Offset    int
}

type ReviewHistory struct {
	ID         int64     `json:"id"`
	CardID     int64     `json:"card_id"`
	Difficulty int       `json:"difficulty"`
	Day        int       `json:"day"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
