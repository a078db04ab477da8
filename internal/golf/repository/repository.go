// Package repository provides data access layer for the golf module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	golfModel "github.com/steelcity/sports-results/internal/golf/model"
)

// Repository defines the interface for tournament result data access.
type Repository interface {
	// Create persists a new result and assigns its ID.
	Create(ctx context.Context, result *golfModel.TournamentResult) error

	// GetByID finds a result by id.
	GetByID(ctx context.Context, id uint) (*golfModel.TournamentResult, error)

	// List returns results matching the filter, newest year first then
	// tournament name ascending.
	List(ctx context.Context, filter golfModel.ResultFilter) ([]golfModel.TournamentResult, error)

	// Update persists changes to an existing result.
	Update(ctx context.Context, result *golfModel.TournamentResult) error

	// Delete removes a result by id.
	Delete(ctx context.Context, id uint) error

	// DistinctYears returns the distinct years present, newest first.
	DistinctYears(ctx context.Context) ([]int, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new golf repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, result *golfModel.TournamentResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*golfModel.TournamentResult, error) {
	var result golfModel.TournamentResult
	err := r.db.WithContext(ctx).First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, golfModel.ErrResultNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *repository) List(ctx context.Context, filter golfModel.ResultFilter) ([]golfModel.TournamentResult, error) {
	q := r.db.WithContext(ctx).Model(&golfModel.TournamentResult{})

	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}
	if filter.Tournament != "" {
		q = q.Where("LOWER(tournament_name) LIKE ?", "%"+strings.ToLower(filter.Tournament)+"%")
	}

	var results []golfModel.TournamentResult
	if err := q.Order("year DESC").Order("tournament_name ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	if results == nil {
		results = []golfModel.TournamentResult{}
	}
	return results, nil
}

func (r *repository) Update(ctx context.Context, result *golfModel.TournamentResult) error {
	return r.db.WithContext(ctx).Save(result).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&golfModel.TournamentResult{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return golfModel.ErrResultNotFound
	}
	return nil
}

func (r *repository) DistinctYears(ctx context.Context) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).
		Model(&golfModel.TournamentResult{}).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}
