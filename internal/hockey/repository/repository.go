// Package repository provides data access layer for the hockey module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	hockeyModel "github.com/steelcity/sports-results/internal/hockey/model"
)

// Repository defines the interface for hockey game data access.
type Repository interface {
	// Create persists a new game and assigns its ID.
	Create(ctx context.Context, game *hockeyModel.Game) error

	// GetByID finds a game by id.
	GetByID(ctx context.Context, id uint) (*hockeyModel.Game, error)

	// List returns games matching the filter, newest game date first.
	List(ctx context.Context, filter hockeyModel.GameFilter) ([]hockeyModel.Game, error)

	// Update persists changes to an existing game.
	Update(ctx context.Context, game *hockeyModel.Game) error

	// Delete removes a game by id.
	Delete(ctx context.Context, id uint) error

	// DistinctSeasons returns the distinct season labels present, newest
	// first.
	DistinctSeasons(ctx context.Context) ([]string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new hockey repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, game *hockeyModel.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*hockeyModel.Game, error) {
	var game hockeyModel.Game
	err := r.db.WithContext(ctx).First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hockeyModel.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *repository) List(ctx context.Context, filter hockeyModel.GameFilter) ([]hockeyModel.Game, error) {
	q := r.db.WithContext(ctx).Model(&hockeyModel.Game{})

	if filter.Season != "" {
		q = q.Where("season = ?", filter.Season)
	}
	if filter.Opponent != "" {
		q = q.Where("LOWER(opponent) LIKE ?", "%"+strings.ToLower(filter.Opponent)+"%")
	}
	if filter.Result != "" {
		q = q.Where("result = ?", filter.Result)
	}

	var games []hockeyModel.Game
	if err := q.Order("game_date DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	if games == nil {
		games = []hockeyModel.Game{}
	}
	return games, nil
}

func (r *repository) Update(ctx context.Context, game *hockeyModel.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&hockeyModel.Game{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hockeyModel.ErrGameNotFound
	}
	return nil
}

func (r *repository) DistinctSeasons(ctx context.Context) ([]string, error) {
	var seasons []string
	err := r.db.WithContext(ctx).
		Model(&hockeyModel.Game{}).
		Where("season <> ''").
		Distinct("season").
		Order("season DESC").
		Pluck("season", &seasons).Error
	if err != nil {
		return nil, err
	}
	if seasons == nil {
		seasons = []string{}
	}
	return seasons, nil
}
