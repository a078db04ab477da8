// Package repository provides data access layer for the race module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	raceModel "github.com/steelcity/sports-results/internal/race/model"
)

// Repository defines the interface for race data access operations.
type Repository interface {
	// Create persists a new race and assigns its ID.
	Create(ctx context.Context, race *raceModel.Race) error

	// GetByID finds a race by id.
	GetByID(ctx context.Context, id uint) (*raceModel.Race, error)

	// List returns races matching the filter, newest race date first.
	List(ctx context.Context, filter raceModel.RaceFilter) ([]raceModel.Race, error)

	// Update persists changes to an existing race.
	Update(ctx context.Context, race *raceModel.Race) error

	// Delete removes a race by id.
	Delete(ctx context.Context, id uint) error

	// DistinctSeries returns the distinct non-empty series values.
	DistinctSeries(ctx context.Context) ([]string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new race repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new race.
func (r *repository) Create(ctx context.Context, race *raceModel.Race) error {
	return r.db.WithContext(ctx).Create(race).Error
}

// GetByID finds a race by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*raceModel.Race, error) {
	var race raceModel.Race
	err := r.db.WithContext(ctx).First(&race, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, raceModel.ErrRaceNotFound
		}
		return nil, err
	}
	return &race, nil
}

// List returns races matching the filter, newest race date first.
func (r *repository) List(ctx context.Context, filter raceModel.RaceFilter) ([]raceModel.Race, error) {
	q := r.db.WithContext(ctx).Model(&raceModel.Race{})

	if filter.Series != "" {
		q = q.Where("series = ?", filter.Series)
	}
	if filter.Track != "" {
		// LOWER/LIKE instead of ILIKE so the query also runs on SQLite.
		q = q.Where("LOWER(track) LIKE ?", "%"+strings.ToLower(filter.Track)+"%")
	}

	var races []raceModel.Race
	if err := q.Order("race_date DESC").Find(&races).Error; err != nil {
		return nil, err
	}
	if races == nil {
		races = []raceModel.Race{}
	}
	return races, nil
}

// Update persists changes to an existing race.
func (r *repository) Update(ctx context.Context, race *raceModel.Race) error {
	return r.db.WithContext(ctx).Save(race).Error
}

// Delete removes a race by id.
func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&raceModel.Race{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return raceModel.ErrRaceNotFound
	}
	return nil
}

// DistinctSeries returns the distinct non-empty series values, sorted.
// Recomputed from the full table on every call.
func (r *repository) DistinctSeries(ctx context.Context) ([]string, error) {
	var series []string
	err := r.db.WithContext(ctx).
		Model(&raceModel.Race{}).
		Where("series IS NOT NULL AND series <> ''").
		Distinct("series").
		Order("series ASC").
		Pluck("series", &series).Error
	if err != nil {
		return nil, err
	}
	if series == nil {
		series = []string{}
	}
	return series, nil
}
