// Package repository provides data access layer for the football module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	footballModel "github.com/steelcity/sports-results/internal/football/model"
)

// Repository defines the interface for football game data access.
type Repository interface {
	// Create persists a new game and assigns its ID.
	Create(ctx context.Context, game *footballModel.Game) error

	// GetByID finds a game by id.
	GetByID(ctx context.Context, id uint) (*footballModel.Game, error)

	// List returns games matching the filter, newest game date first.
	List(ctx context.Context, filter footballModel.GameFilter) ([]footballModel.Game, error)

	// Update persists changes to an existing game.
	Update(ctx context.Context, game *footballModel.Game) error

	// Delete removes a game by id.
	Delete(ctx context.Context, id uint) error

	// DistinctSeasons returns the distinct seasons present, newest first.
	DistinctSeasons(ctx context.Context) ([]int, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new football repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, game *footballModel.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*footballModel.Game, error) {
	var game footballModel.Game
	err := r.db.WithContext(ctx).First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, footballModel.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *repository) List(ctx context.Context, filter footballModel.GameFilter) ([]footballModel.Game, error) {
	q := r.db.WithContext(ctx).Model(&footballModel.Game{})

	if filter.Season != nil {
		q = q.Where("season = ?", *filter.Season)
	}
	if filter.Opponent != "" {
		q = q.Where("LOWER(opponent) LIKE ?", "%"+strings.ToLower(filter.Opponent)+"%")
	}
	if filter.Result != "" {
		q = q.Where("result = ?", filter.Result)
	}

	var games []footballModel.Game
	if err := q.Order("game_date DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	if games == nil {
		games = []footballModel.Game{}
	}
	return games, nil
}

func (r *repository) Update(ctx context.Context, game *footballModel.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&footballModel.Game{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return footballModel.ErrGameNotFound
	}
	return nil
}

func (r *repository) DistinctSeasons(ctx context.Context) ([]int, error) {
	var seasons []int
	err := r.db.WithContext(ctx).
		Model(&footballModel.Game{}).
		Distinct("season").
		Order("season DESC").
		Pluck("season", &seasons).Error
	if err != nil {
		return nil, err
	}
	if seasons == nil {
		seasons = []int{}
	}
	return seasons, nil
}
