// Package service provides business logic layer for the race module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	raceModel "github.com/steelcity/sports-results/internal/race/model"
	"github.com/steelcity/sports-results/internal/race/repository"
	"github.com/steelcity/sports-results/pkg/forms"
)

// Service defines the interface for race business logic operations.
type Service interface {
	// List returns races matching the filter plus filter options.
	List(ctx context.Context, filter raceModel.RaceFilter) (*raceModel.ListResponse, error)

	// Get returns a single race.
	Get(ctx context.Context, id uint) (*raceModel.Race, error)

	// Options returns the enumerations the add/edit form needs.
	Options(ctx context.Context) (*raceModel.FormOptions, error)

	// Create validates the form and persists a new race.
	Create(ctx context.Context, form *raceModel.RaceForm) (*raceModel.Race, error)

	// Update applies a form to an existing race. Blank required fields
	// leave the stored value unchanged; blank optional fields clear it.
	Update(ctx context.Context, id uint, form *raceModel.RaceForm) (*raceModel.Race, error)

	// Delete removes a race.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new race service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns races matching the filter plus filter options.
func (s *service) List(ctx context.Context, filter raceModel.RaceFilter) (*raceModel.ListResponse, error) {
	races, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	series, err := s.repo.DistinctSeries(ctx)
	if err != nil {
		return nil, err
	}

	return &raceModel.ListResponse{
		Races:         races,
		SeriesOptions: series,
	}, nil
}

// Get returns a single race.
func (s *service) Get(ctx context.Context, id uint) (*raceModel.Race, error) {
	return s.repo.GetByID(ctx, id)
}

// Options returns the enumerations the add/edit form needs.
func (s *service) Options(ctx context.Context) (*raceModel.FormOptions, error) {
	series, err := s.repo.DistinctSeries(ctx)
	if err != nil {
		return nil, err
	}
	return &raceModel.FormOptions{SeriesOptions: series}, nil
}

// Create validates the form and persists a new race.
func (s *service) Create(ctx context.Context, form *raceModel.RaceForm) (*raceModel.Race, error) {
	if forms.IsBlank(form.RaceDate) {
		return nil, fmt.Errorf("%w: race_date is required", raceModel.ErrInvalidRace)
	}
	raceDate, err := forms.ParseDate(form.RaceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: race_date must be YYYY-MM-DD", raceModel.ErrInvalidRace)
	}
	if forms.IsBlank(form.Track) {
		return nil, fmt.Errorf("%w: track is required", raceModel.ErrInvalidRace)
	}
	if forms.IsBlank(form.Winner) {
		return nil, fmt.Errorf("%w: winner is required", raceModel.ErrInvalidRace)
	}

	race := &raceModel.Race{
		RaceDate: raceDate,
		Track:    form.Track,
		Winner:   form.Winner,
	}
	if err := applyOptional(race, form); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, race); err != nil {
		s.logger.Errorw("failed to create race", "error", err)
		return nil, err
	}
	return race, nil
}

// Update applies a form to an existing race.
func (s *service) Update(ctx context.Context, id uint, form *raceModel.RaceForm) (*raceModel.Race, error) {
	race, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !forms.IsBlank(form.RaceDate) {
		raceDate, parseErr := forms.ParseDate(form.RaceDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: race_date must be YYYY-MM-DD", raceModel.ErrInvalidRace)
		}
		race.RaceDate = raceDate
	}
	if !forms.IsBlank(form.Track) {
		race.Track = form.Track
	}
	if !forms.IsBlank(form.Winner) {
		race.Winner = form.Winner
	}
	if err := applyOptional(race, form); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, race); err != nil {
		s.logger.Errorw("failed to update race", "id", id, "error", err)
		return nil, err
	}
	return race, nil
}

// Delete removes a race.
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// applyOptional overwrites every optional field from the form. Blank input
// stores NULL, never zero.
func applyOptional(race *raceModel.Race, form *raceModel.RaceForm) error {
	race.Series = forms.OptionalString(form.Series)
	race.RaceName = forms.OptionalString(form.RaceName)
	race.CarNumber = forms.OptionalString(form.CarNumber)
	race.CarImageURL = forms.OptionalString(form.CarImageURL)
	race.Notes = forms.OptionalString(form.Notes)

	var err error
	if race.StartPosition, err = forms.StrictOptionalInt(form.StartPosition); err != nil {
		return fmt.Errorf("%w: start_position must be an integer", raceModel.ErrInvalidRace)
	}
	if race.FinishPosition, err = forms.StrictOptionalInt(form.FinishPosition); err != nil {
		return fmt.Errorf("%w: finish_position must be an integer", raceModel.ErrInvalidRace)
	}
	if race.LapsLed, err = forms.StrictOptionalInt(form.LapsLed); err != nil {
		return fmt.Errorf("%w: laps_led must be an integer", raceModel.ErrInvalidRace)
	}
	return nil
}
