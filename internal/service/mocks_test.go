package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tvtrackr/tracker-server-go/internal/client"
	"github.com/tvtrackr/tracker-server-go/internal/model"
)

type mockUserRepo struct {
	findByIDFunc    func(ctx context.Context, id string) (*model.User, error)
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	createFunc      func(ctx context.Context, params model.CreateUserParams) (*model.User, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return nil, nil
}

type mockSessionRepo struct {
	findByTokenFunc   func(ctx context.Context, token string) (*model.Session, error)
	createFunc        func(ctx context.Context, params model.CreateSessionParams) (*model.Session, error)
	deleteByTokenFunc func(ctx context.Context, token string) error
	deleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	if m.findByTokenFunc != nil {
		return m.findByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Session{
		ID:           params.ID,
		UserID:       params.UserID,
		SessionToken: params.SessionToken,
		ExpiresAt:    params.ExpiresAt,
	}, nil
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFunc != nil {
		return m.deleteByTokenFunc(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx, now)
	}
	return 0, nil
}

type mockShowRepo struct {
	findByIDFunc               func(ctx context.Context, id string) (*model.Show, error)
	findByUserAndCatalogIDFunc func(ctx context.Context, userID string, catalogID int64) (*model.Show, error)
	findAllByUserIDFunc        func(ctx context.Context, userID string) ([]model.Show, error)
	createFunc                 func(ctx context.Context, params model.CreateShowParams) (*model.Show, error)
	updateUserRatingFunc       func(ctx context.Context, id, userID string, rating float64) (int64, error)
	deleteFunc                 func(ctx context.Context, id, userID string) (int64, error)
}

func (m *mockShowRepo) FindByID(ctx context.Context, id string) (*model.Show, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockShowRepo) FindByUserAndCatalogID(ctx context.Context, userID string, catalogID int64) (*model.Show, error) {
	if m.findByUserAndCatalogIDFunc != nil {
		return m.findByUserAndCatalogIDFunc(ctx, userID, catalogID)
	}
	return nil, nil
}

func (m *mockShowRepo) FindAllByUserID(ctx context.Context, userID string) ([]model.Show, error) {
	if m.findAllByUserIDFunc != nil {
		return m.findAllByUserIDFunc(ctx, userID)
	}
	return []model.Show{}, nil
}

func (m *mockShowRepo) Create(ctx context.Context, params model.CreateShowParams) (*model.Show, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Show{
		ID:        params.ID,
		UserID:    params.UserID,
		CatalogID: params.CatalogID,
		Name:      params.Name,
		ImageURL:  params.ImageURL,
		Genres:    params.Genres,
		Rating:    params.Rating,
		Premiered: params.Premiered,
		Status:    params.Status,
		Summary:   params.Summary,
	}, nil
}

func (m *mockShowRepo) UpdateUserRating(ctx context.Context, id, userID string, rating float64) (int64, error) {
	if m.updateUserRatingFunc != nil {
		return m.updateUserRatingFunc(ctx, id, userID, rating)
	}
	return 1, nil
}

func (m *mockShowRepo) Delete(ctx context.Context, id, userID string) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return 1, nil
}

type mockEpisodeRepo struct {
	findByShowIDFunc   func(ctx context.Context, showID, userID string) ([]model.Episode, error)
	findUpcomingFunc   func(ctx context.Context, userID, fromDate string, limit int) ([]model.Episode, error)
	createFunc         func(ctx context.Context, params model.CreateEpisodeParams) (*model.Episode, error)
	setWatchedFunc     func(ctx context.Context, id, userID string, watched bool, watchedAt *time.Time) (int64, error)
	deleteByShowIDFunc func(ctx context.Context, showID, userID string) error
}

func (m *mockEpisodeRepo) FindByShowID(ctx context.Context, showID, userID string) ([]model.Episode, error) {
	if m.findByShowIDFunc != nil {
		return m.findByShowIDFunc(ctx, showID, userID)
	}
	return []model.Episode{}, nil
}

func (m *mockEpisodeRepo) FindUpcoming(ctx context.Context, userID, fromDate string, limit int) ([]model.Episode, error) {
	if m.findUpcomingFunc != nil {
		return m.findUpcomingFunc(ctx, userID, fromDate, limit)
	}
	return []model.Episode{}, nil
}

func (m *mockEpisodeRepo) Create(ctx context.Context, params model.CreateEpisodeParams) (*model.Episode, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Episode{ID: params.ID, ShowID: params.ShowID}, nil
}

func (m *mockEpisodeRepo) SetWatched(ctx context.Context, id, userID string, watched bool, watchedAt *time.Time) (int64, error) {
	if m.setWatchedFunc != nil {
		return m.setWatchedFunc(ctx, id, userID, watched, watchedAt)
	}
	return 1, nil
}

func (m *mockEpisodeRepo) DeleteByShowID(ctx context.Context, showID, userID string) error {
	if m.deleteByShowIDFunc != nil {
		return m.deleteByShowIDFunc(ctx, showID, userID)
	}
	return nil
}

type mockNotificationRepo struct {
	findAllByUserIDFunc func(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	markReadFunc        func(ctx context.Context, id, userID string) (int64, error)
	markAllReadFunc     func(ctx context.Context, userID string) error
}

func (m *mockNotificationRepo) FindAllByUserID(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	if m.findAllByUserIDFunc != nil {
		return m.findAllByUserIDFunc(ctx, userID, limit)
	}
	return []model.Notification{}, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID string) (int64, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id, userID)
	}
	return 1, nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	if m.markAllReadFunc != nil {
		return m.markAllReadFunc(ctx, userID)
	}
	return nil
}

type mockIdentityClient struct {
	exchangeFunc func(ctx context.Context, sessionID string) (*client.IdentityData, error)
}

func (m *mockIdentityClient) Exchange(ctx context.Context, sessionID string) (*client.IdentityData, error) {
	if m.exchangeFunc != nil {
		return m.exchangeFunc(ctx, sessionID)
	}
	return nil, nil
}

type mockCatalogClient struct {
	searchShowsFunc  func(ctx context.Context, query string) (json.RawMessage, error)
	listEpisodesFunc func(ctx context.Context, catalogID int64) ([]client.CatalogEpisode, error)
}

func (m *mockCatalogClient) SearchShows(ctx context.Context, query string) (json.RawMessage, error) {
	if m.searchShowsFunc != nil {
		return m.searchShowsFunc(ctx, query)
	}
	return json.RawMessage(`[]`), nil
}

func (m *mockCatalogClient) ListEpisodes(ctx context.Context, catalogID int64) ([]client.CatalogEpisode, error) {
	if m.listEpisodesFunc != nil {
		return m.listEpisodesFunc(ctx, catalogID)
	}
	return []client.CatalogEpisode{}, nil
}
