package model

import "time"

// Notification rows are written by an external collaborator; this service
// only lists them and flips the read flag.
type Notification struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	ShowID        string    `db:"show_id" json:"show_id"`
	ShowName      string    `db:"show_name" json:"show_name"`
	EpisodeName   string    `db:"episode_name" json:"episode_name"`
	Season        int       `db:"season" json:"season"`
	EpisodeNumber int       `db:"episode_number" json:"episode_number"`
	Airdate       string    `db:"airdate" json:"airdate"`
	Message       string    `db:"message" json:"message"`
	Read          bool      `db:"read" json:"read"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
