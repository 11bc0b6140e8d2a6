package model

import (
	"time"

	"github.com/lib/pq"
)

type Show struct {
	ID         string         `db:"id" json:"id"`
	UserID     string         `db:"user_id" json:"user_id"`
	CatalogID  int64          `db:"catalog_id" json:"catalog_id"`
	Name       string         `db:"name" json:"name"`
	ImageURL   *string        `db:"image_url" json:"image_url"`
	Genres     pq.StringArray `db:"genres" json:"genres"`
	Rating     *float64       `db:"rating" json:"rating"`
	UserRating *float64       `db:"user_rating" json:"user_rating"`
	Premiered  *string        `db:"premiered" json:"premiered"`
	Status     *string        `db:"status" json:"status"`
	Summary    *string        `db:"summary" json:"summary"`
	AddedAt    time.Time      `db:"added_at" json:"added_at"`
}

type CreateShowParams struct {
	ID        string
	UserID    string
	CatalogID int64
	Name      string
	ImageURL  *string
	Genres    []string
	Rating    *float64
	Premiered *string
	Status    *string
	Summary   *string
}
