// Package service provides business logic layer for the golf module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	golfModel "github.com/steelcity/sports-results/internal/golf/model"
	"github.com/steelcity/sports-results/internal/golf/repository"
	"github.com/steelcity/sports-results/pkg/forms"
)

// Service defines the interface for golf business logic operations.
type Service interface {
	// List returns results matching the filter plus filter options.
	List(ctx context.Context, filter golfModel.ResultFilter) (*golfModel.ListResponse, error)

	// Get returns a single tournament result.
	Get(ctx context.Context, id uint) (*golfModel.TournamentResult, error)

	// Options returns the enumerations the add/edit form needs.
	Options(ctx context.Context) (*golfModel.FormOptions, error)

	// Create validates the form and persists a new result.
	Create(ctx context.Context, form *golfModel.ResultForm) (*golfModel.TournamentResult, error)

	// Update applies a form to an existing result. Blank required fields
	// leave the stored value unchanged; blank optional fields clear it.
	Update(ctx context.Context, id uint, form *golfModel.ResultForm) (*golfModel.TournamentResult, error)

	// Delete removes a result.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new golf service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context, filter golfModel.ResultFilter) (*golfModel.ListResponse, error) {
	results, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	years, err := s.repo.DistinctYears(ctx)
	if err != nil {
		return nil, err
	}

	return &golfModel.ListResponse{
		Results:     results,
		YearOptions: years,
	}, nil
}

func (s *service) Get(ctx context.Context, id uint) (*golfModel.TournamentResult, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Options(ctx context.Context) (*golfModel.FormOptions, error) {
	years, err := s.repo.DistinctYears(ctx)
	if err != nil {
		return nil, err
	}
	return &golfModel.FormOptions{YearOptions: years}, nil
}

func (s *service) Create(ctx context.Context, form *golfModel.ResultForm) (*golfModel.TournamentResult, error) {
	year := forms.OptionalInt(form.Year)
	if year == nil {
		return nil, fmt.Errorf("%w: year is required and must be an integer", golfModel.ErrInvalidResult)
	}
	if forms.IsBlank(form.TournamentName) {
		return nil, fmt.Errorf("%w: tournament_name is required", golfModel.ErrInvalidResult)
	}

	result := &golfModel.TournamentResult{
		Year:           *year,
		TournamentName: form.TournamentName,
	}
	if err := applyOptional(result, form); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, result); err != nil {
		s.logger.Errorw("failed to create tournament result", "error", err)
		return nil, err
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, id uint, form *golfModel.ResultForm) (*golfModel.TournamentResult, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !forms.IsBlank(form.Year) {
		year := forms.OptionalInt(form.Year)
		if year == nil {
			return nil, fmt.Errorf("%w: year must be an integer", golfModel.ErrInvalidResult)
		}
		result.Year = *year
	}
	if !forms.IsBlank(form.TournamentName) {
		result.TournamentName = form.TournamentName
	}
	if err := applyOptional(result, form); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, result); err != nil {
		s.logger.Errorw("failed to update tournament result", "id", id, "error", err)
		return nil, err
	}
	return result, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func applyOptional(result *golfModel.TournamentResult, form *golfModel.ResultForm) error {
	result.Course = forms.OptionalString(form.Course)
	result.Winner = forms.OptionalString(form.Winner)
	result.WinnerImageURL = forms.OptionalString(form.WinnerImageURL)
	result.Notes = forms.OptionalString(form.Notes)

	var err error
	if result.FinishPosition, err = forms.StrictOptionalInt(form.FinishPosition); err != nil {
		return fmt.Errorf("%w: finish_position must be an integer", golfModel.ErrInvalidResult)
	}
	if result.ScoreToPar, err = forms.StrictOptionalInt(form.ScoreToPar); err != nil {
		return fmt.Errorf("%w: score_to_par must be an integer", golfModel.ErrInvalidResult)
	}
	return nil
}
