package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tvtrackr/tracker-server-go/internal/database"
	"github.com/tvtrackr/tracker-server-go/internal/model"
)

type EpisodeRepository interface {
	FindByShowID(ctx context.Context, showID, userID string) ([]model.Episode, error)
	FindUpcoming(ctx context.Context, userID, fromDate string, limit int) ([]model.Episode, error)
	Create(ctx context.Context, params model.CreateEpisodeParams) (*model.Episode, error)
	SetWatched(ctx context.Context, id, userID string, watched bool, watchedAt *time.Time) (int64, error)
	DeleteByShowID(ctx context.Context, showID, userID string) error
}

type episodeRepo struct {
	db database.DBTX
}

func NewEpisodeRepository(db *sqlx.DB) EpisodeRepository {
	return &episodeRepo{db: db}
}

func (r *episodeRepo) FindByShowID(ctx context.Context, showID, userID string) ([]model.Episode, error) {
	episodes := []model.Episode{}
	err := r.db.SelectContext(ctx, &episodes, `
		SELECT * FROM episodes WHERE show_id = $1 AND user_id = $2
	`, showID, userID)
	if err != nil {
		return nil, err
	}
	return episodes, nil
}

// FindUpcoming returns unwatched episodes airing on or after fromDate
// (ISO yyyy-mm-dd), ascending by airdate. Episodes without an airdate never
// qualify as upcoming.
func (r *episodeRepo) FindUpcoming(ctx context.Context, userID, fromDate string, limit int) ([]model.Episode, error) {
	episodes := []model.Episode{}
	err := r.db.SelectContext(ctx, &episodes, `
		SELECT * FROM episodes
		WHERE user_id = $1
		AND airdate IS NOT NULL
		AND airdate >= $2
		AND watched = FALSE
		ORDER BY airdate ASC
		LIMIT $3
	`, userID, fromDate, limit)
	if err != nil {
		return nil, err
	}
	return episodes, nil
}

func (r *episodeRepo) Create(ctx context.Context, params model.CreateEpisodeParams) (*model.Episode, error) {
	var episode model.Episode
	err := r.db.GetContext(ctx, &episode, `
		INSERT INTO episodes (id, user_id, show_id, catalog_episode_id, season, number, name, airdate, airstamp, runtime, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING *
	`, params.ID, params.UserID, params.ShowID, params.CatalogEpisodeID,
		params.Season, params.Number, params.Name, params.Airdate, params.Airstamp,
		params.Runtime, params.Summary)
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

func (r *episodeRepo) SetWatched(ctx context.Context, id, userID string, watched bool, watchedAt *time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE episodes SET watched = $3, watched_at = $4
		WHERE id = $1 AND user_id = $2
	`, id, userID, watched, watchedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *episodeRepo) DeleteByShowID(ctx context.Context, showID, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM episodes WHERE show_id = $1 AND user_id = $2
	`, showID, userID)
	return err
}
