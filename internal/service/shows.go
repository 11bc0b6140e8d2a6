package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tvtrackr/tracker-server-go/internal/client"
	"github.com/tvtrackr/tracker-server-go/internal/config"
	apperrors "github.com/tvtrackr/tracker-server-go/internal/errors"
	"github.com/tvtrackr/tracker-server-go/internal/model"
	"github.com/tvtrackr/tracker-server-go/internal/repository"
)

type ShowService struct {
	showRepo    repository.ShowRepository
	episodeRepo repository.EpisodeRepository
	catalog     client.CatalogClient
}

func NewShowService(
	showRepo repository.ShowRepository,
	episodeRepo repository.EpisodeRepository,
	catalog client.CatalogClient,
) *ShowService {
	return &ShowService{
		showRepo:    showRepo,
		episodeRepo: episodeRepo,
		catalog:     catalog,
	}
}

// AddFavoriteParams carries the user-supplied show fields; CatalogID and Name
// are required, the rest is optional display metadata.
type AddFavoriteParams struct {
	CatalogID int64
	Name      string
	ImageURL  *string
	Genres    []string
	Rating    *float64
	Premiered *string
	Status    *string
	Summary   *string
}

// AddFavorite inserts the show after an existence check on
// (user, catalog id), then ingests the show's full episode list. The
// existence check and insert are not atomic; two concurrent identical adds
// can both pass the check. Episode ingestion is best effort: a failure is
// logged and the add still succeeds.
func (s *ShowService) AddFavorite(ctx context.Context, userID string, params AddFavoriteParams) (*model.Show, error) {
	existing, err := s.showRepo.FindByUserAndCatalogID(ctx, userID, params.CatalogID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing != nil {
		return nil, apperrors.DuplicateFavorite()
	}

	show, err := s.showRepo.Create(ctx, model.CreateShowParams{
		ID:        uuid.NewString(),
		UserID:    userID,
		CatalogID: params.CatalogID,
		Name:      params.Name,
		ImageURL:  params.ImageURL,
		Genres:    params.Genres,
		Rating:    params.Rating,
		Premiered: params.Premiered,
		Status:    params.Status,
		Summary:   params.Summary,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}

	if err := s.ingestEpisodes(ctx, userID, show.ID, params.CatalogID); err != nil {
		log.Error().Err(err).
			Str("show_id", show.ID).
			Int64("catalog_id", params.CatalogID).
			Msg("failed to fetch episodes")
	}

	return show, nil
}

// ingestEpisodes mirrors the catalog's episode list into local rows. The
// first insert failure aborts the batch; rows already inserted are kept.
func (s *ShowService) ingestEpisodes(ctx context.Context, userID, showID string, catalogID int64) error {
	episodes, err := s.catalog.ListEpisodes(ctx, catalogID)
	if err != nil {
		return err
	}

	for _, ep := range episodes {
		_, err := s.episodeRepo.Create(ctx, model.CreateEpisodeParams{
			ID:               uuid.NewString(),
			UserID:           userID,
			ShowID:           showID,
			CatalogEpisodeID: ep.ID,
			Season:           ep.Season,
			Number:           ep.Number,
			Name:             ep.Name,
			Airdate:          ep.Airdate,
			Airstamp:         ep.Airstamp,
			Runtime:          ep.Runtime,
			Summary:          ep.Summary,
		})
		if err != nil {
			return err
		}
	}

	log.Info().Str("show_id", showID).Int("count", len(episodes)).Msg("episodes ingested")

	return nil
}

func (s *ShowService) ListFavorites(ctx context.Context, userID string) ([]model.Show, error) {
	shows, err := s.showRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return shows, nil
}

// RemoveFavorite deletes the show and then its episodes. The show delete must
// match before the episode cascade runs.
func (s *ShowService) RemoveFavorite(ctx context.Context, showID, userID string) error {
	deleted, err := s.showRepo.Delete(ctx, showID, userID)
	if err != nil {
		return apperrors.Database(err)
	}
	if deleted == 0 {
		return apperrors.NotFound("Show")
	}

	if err := s.episodeRepo.DeleteByShowID(ctx, showID, userID); err != nil {
		return apperrors.Database(err)
	}

	return nil
}

func (s *ShowService) RateShow(ctx context.Context, showID, userID string, rating float64) error {
	if rating < 0 || rating > 10 {
		return apperrors.InvalidRating()
	}

	matched, err := s.showRepo.UpdateUserRating(ctx, showID, userID, rating)
	if err != nil {
		return apperrors.Database(err)
	}
	if matched == 0 {
		return apperrors.NotFound("Show")
	}

	return nil
}

func (s *ShowService) ListEpisodes(ctx context.Context, showID, userID string) ([]model.Episode, error) {
	episodes, err := s.episodeRepo.FindByShowID(ctx, showID, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return episodes, nil
}

func (s *ShowService) SetWatched(ctx context.Context, episodeID, userID string, watched bool) error {
	var watchedAt *time.Time
	if watched {
		now := time.Now().UTC()
		watchedAt = &now
	}

	matched, err := s.episodeRepo.SetWatched(ctx, episodeID, userID, watched, watchedAt)
	if err != nil {
		return apperrors.Database(err)
	}
	if matched == 0 {
		return apperrors.NotFound("Episode")
	}

	return nil
}

// UpcomingEpisodes returns unwatched episodes airing today or later, oldest
// first, enriched with the show's name and image when the show still exists.
func (s *ShowService) UpcomingEpisodes(ctx context.Context, userID string) ([]model.UpcomingEpisode, error) {
	today := time.Now().UTC().Format("2006-01-02")

	episodes, err := s.episodeRepo.FindUpcoming(ctx, userID, today, config.UpcomingEpisodesLimit)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	shows := make(map[string]*model.Show)
	upcoming := make([]model.UpcomingEpisode, 0, len(episodes))
	for _, ep := range episodes {
		entry := model.UpcomingEpisode{Episode: ep}

		show, ok := shows[ep.ShowID]
		if !ok {
			show, err = s.showRepo.FindByID(ctx, ep.ShowID)
			if err != nil {
				return nil, apperrors.Database(err)
			}
			shows[ep.ShowID] = show
		}
		if show != nil {
			entry.ShowName = &show.Name
			entry.ShowImage = show.ImageURL
		}

		upcoming = append(upcoming, entry)
	}

	return upcoming, nil
}

// SearchShows forwards the query to the catalog and passes its response
// through verbatim.
func (s *ShowService) SearchShows(ctx context.Context, query string) (json.RawMessage, error) {
	result, err := s.catalog.SearchShows(ctx, query)
	if err != nil {
		return nil, apperrors.UpstreamCatalog(err)
	}
	return result, nil
}
