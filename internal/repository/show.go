package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tvtrackr/tracker-server-go/internal/database"
	"github.com/tvtrackr/tracker-server-go/internal/model"
)

type ShowRepository interface {
	FindByID(ctx context.Context, id string) (*model.Show, error)
	FindByUserAndCatalogID(ctx context.Context, userID string, catalogID int64) (*model.Show, error)
	FindAllByUserID(ctx context.Context, userID string) ([]model.Show, error)
	Create(ctx context.Context, params model.CreateShowParams) (*model.Show, error)
	UpdateUserRating(ctx context.Context, id, userID string, rating float64) (int64, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
}

type showRepo struct {
	db database.DBTX
}

func NewShowRepository(db *sqlx.DB) ShowRepository {
	return &showRepo{db: db}
}

func (r *showRepo) FindByID(ctx context.Context, id string) (*model.Show, error) {
	var show model.Show
	err := r.db.GetContext(ctx, &show, `
		SELECT * FROM shows WHERE id = $1
	`, id)
	return HandleNotFound(&show, err)
}

func (r *showRepo) FindByUserAndCatalogID(ctx context.Context, userID string, catalogID int64) (*model.Show, error) {
	var show model.Show
	err := r.db.GetContext(ctx, &show, `
		SELECT * FROM shows WHERE user_id = $1 AND catalog_id = $2
	`, userID, catalogID)
	return HandleNotFound(&show, err)
}

func (r *showRepo) FindAllByUserID(ctx context.Context, userID string) ([]model.Show, error) {
	shows := []model.Show{}
	err := r.db.SelectContext(ctx, &shows, `
		SELECT * FROM shows WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepo) Create(ctx context.Context, params model.CreateShowParams) (*model.Show, error) {
	var show model.Show
	err := r.db.GetContext(ctx, &show, `
		INSERT INTO shows (id, user_id, catalog_id, name, image_url, genres, rating, premiered, status, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING *
	`, params.ID, params.UserID, params.CatalogID, params.Name, params.ImageURL,
		pq.StringArray(params.Genres), params.Rating, params.Premiered, params.Status, params.Summary)
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *showRepo) UpdateUserRating(ctx context.Context, id, userID string, rating float64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE shows SET user_rating = $3 WHERE id = $1 AND user_id = $2
	`, id, userID, rating)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *showRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM shows WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
