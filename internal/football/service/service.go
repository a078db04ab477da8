// Package service provides business logic layer for the football module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	footballModel "github.com/steelcity/sports-results/internal/football/model"
	"github.com/steelcity/sports-results/internal/football/repository"
	"github.com/steelcity/sports-results/pkg/forms"
	"github.com/steelcity/sports-results/pkg/score"
)

// Service defines the interface for football business logic operations.
type Service interface {
	// List returns games matching the filter plus filter options.
	List(ctx context.Context, filter footballModel.GameFilter) (*footballModel.ListResponse, error)

	// Get returns a single game.
	Get(ctx context.Context, id uint) (*footballModel.Game, error)

	// Options returns the enumerations the add/edit form needs.
	Options(ctx context.Context) (*footballModel.FormOptions, error)

	// Create validates the form, derives the result from the scores and
	// persists a new game.
	Create(ctx context.Context, form *footballModel.GameForm) (*footballModel.Game, error)

	// Update applies a form to an existing game and re-derives the result.
	// Blank required fields leave the stored value unchanged; blank
	// optional fields clear it.
	Update(ctx context.Context, id uint, form *footballModel.GameForm) (*footballModel.Game, error)

	// Delete removes a game.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new football service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context, filter footballModel.GameFilter) (*footballModel.ListResponse, error) {
	games, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	seasons, err := s.repo.DistinctSeasons(ctx)
	if err != nil {
		return nil, err
	}

	return &footballModel.ListResponse{
		Games:         games,
		SeasonOptions: seasons,
	}, nil
}

func (s *service) Get(ctx context.Context, id uint) (*footballModel.Game, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Options(ctx context.Context) (*footballModel.FormOptions, error) {
	seasons, err := s.repo.DistinctSeasons(ctx)
	if err != nil {
		return nil, err
	}
	return &footballModel.FormOptions{
		SeasonOptions:   seasons,
		HomeAwayOptions: []string{footballModel.HomeGame, footballModel.AwayGame},
	}, nil
}

func (s *service) Create(ctx context.Context, form *footballModel.GameForm) (*footballModel.Game, error) {
	if forms.IsBlank(form.GameDate) {
		return nil, fmt.Errorf("%w: game_date is required", footballModel.ErrInvalidGame)
	}
	gameDate, err := forms.ParseDate(form.GameDate)
	if err != nil {
		return nil, fmt.Errorf("%w: game_date must be YYYY-MM-DD", footballModel.ErrInvalidGame)
	}
	season := forms.OptionalInt(form.Season)
	if season == nil {
		return nil, fmt.Errorf("%w: season is required and must be an integer", footballModel.ErrInvalidGame)
	}
	if forms.IsBlank(form.Opponent) {
		return nil, fmt.Errorf("%w: opponent is required", footballModel.ErrInvalidGame)
	}
	homeAway, err := parseHomeAway(form.HomeAway)
	if err != nil {
		return nil, err
	}
	teamScore := forms.OptionalInt(form.TeamScore)
	opponentScore := forms.OptionalInt(form.OpponentScore)
	if teamScore == nil || opponentScore == nil {
		return nil, fmt.Errorf("%w: team_score and opponent_score are required integers", footballModel.ErrInvalidGame)
	}

	game := &footballModel.Game{
		GameDate:      gameDate,
		Season:        *season,
		Opponent:      form.Opponent,
		HomeAway:      homeAway,
		TeamScore:     *teamScore,
		OpponentScore: *opponentScore,
		Result:        score.FromScores(*teamScore, *opponentScore),
	}
	if err := applyOptional(game, form); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, game); err != nil {
		s.logger.Errorw("failed to create football game", "error", err)
		return nil, err
	}
	return game, nil
}

func (s *service) Update(ctx context.Context, id uint, form *footballModel.GameForm) (*footballModel.Game, error) {
	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !forms.IsBlank(form.GameDate) {
		gameDate, parseErr := forms.ParseDate(form.GameDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: game_date must be YYYY-MM-DD", footballModel.ErrInvalidGame)
		}
		game.GameDate = gameDate
	}
	if !forms.IsBlank(form.Season) {
		season := forms.OptionalInt(form.Season)
		if season == nil {
			return nil, fmt.Errorf("%w: season must be an integer", footballModel.ErrInvalidGame)
		}
		game.Season = *season
	}
	if !forms.IsBlank(form.Opponent) {
		game.Opponent = form.Opponent
	}
	if !forms.IsBlank(form.HomeAway) {
		homeAway, parseErr := parseHomeAway(form.HomeAway)
		if parseErr != nil {
			return nil, parseErr
		}
		game.HomeAway = homeAway
	}
	if !forms.IsBlank(form.TeamScore) {
		teamScore := forms.OptionalInt(form.TeamScore)
		if teamScore == nil {
			return nil, fmt.Errorf("%w: team_score must be an integer", footballModel.ErrInvalidGame)
		}
		game.TeamScore = *teamScore
	}
	if !forms.IsBlank(form.OpponentScore) {
		opponentScore := forms.OptionalInt(form.OpponentScore)
		if opponentScore == nil {
			return nil, fmt.Errorf("%w: opponent_score must be an integer", footballModel.ErrInvalidGame)
		}
		game.OpponentScore = *opponentScore
	}
	if err := applyOptional(game, form); err != nil {
		return nil, err
	}

	// Scores may have changed, so the result is always re-derived.
	game.Result = score.FromScores(game.TeamScore, game.OpponentScore)

	if err := s.repo.Update(ctx, game); err != nil {
		s.logger.Errorw("failed to update football game", "id", id, "error", err)
		return nil, err
	}
	return game, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func parseHomeAway(v string) (string, error) {
	switch v {
	case footballModel.HomeGame, footballModel.AwayGame:
		return v, nil
	case "":
		return "", fmt.Errorf("%w: home_away is required", footballModel.ErrInvalidGame)
	default:
		return "", fmt.Errorf("%w: home_away must be Home or Away", footballModel.ErrInvalidGame)
	}
}

// applyOptional overwrites every optional field from the form. Blank input
// stores NULL, never zero.
func applyOptional(game *footballModel.Game, form *footballModel.GameForm) error {
	game.Notes = forms.OptionalString(form.Notes)

	var err error
	if game.Week, err = forms.StrictOptionalInt(form.Week); err != nil {
		return fmt.Errorf("%w: week must be an integer", footballModel.ErrInvalidGame)
	}
	return nil
}
