package model

import "time"

// Episode mirrors one catalog episode for one favorited show. Rows are
// bulk-created when the show is favorited and never re-synced afterwards.
// Airdate stays an ISO yyyy-mm-dd string so date comparison is lexicographic.
type Episode struct {
	ID               string     `db:"id" json:"id"`
	UserID           string     `db:"user_id" json:"user_id"`
	ShowID           string     `db:"show_id" json:"show_id"`
	CatalogEpisodeID int64      `db:"catalog_episode_id" json:"catalog_episode_id"`
	Season           int        `db:"season" json:"season"`
	Number           int        `db:"number" json:"number"`
	Name             string     `db:"name" json:"name"`
	Airdate          *string    `db:"airdate" json:"airdate"`
	Airstamp         *string    `db:"airstamp" json:"airstamp"`
	Runtime          *int       `db:"runtime" json:"runtime"`
	Summary          *string    `db:"summary" json:"summary"`
	Watched          bool       `db:"watched" json:"watched"`
	WatchedAt        *time.Time `db:"watched_at" json:"watched_at"`
}

// UpcomingEpisode is an episode enriched with display fields from its show.
// The show fields are omitted when the show row no longer exists.
type UpcomingEpisode struct {
	Episode
	ShowName  *string `json:"show_name,omitempty"`
	ShowImage *string `json:"show_image,omitempty"`
}

type CreateEpisodeParams struct {
	ID               string
	UserID           string
	ShowID           string
	CatalogEpisodeID int64
	Season           int
	Number           int
	Name             string
	Airdate          *string
	Airstamp         *string
	Runtime          *int
	Summary          *string
}
