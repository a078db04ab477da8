// Package service provides business logic layer for the hockey module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	hockeyModel "github.com/steelcity/sports-results/internal/hockey/model"
	"github.com/steelcity/sports-results/internal/hockey/repository"
	"github.com/steelcity/sports-results/pkg/forms"
	"github.com/steelcity/sports-results/pkg/score"
)

// Service defines the interface for hockey business logic operations.
type Service interface {
	// List returns games matching the filter plus filter options.
	List(ctx context.Context, filter hockeyModel.GameFilter) (*hockeyModel.ListResponse, error)

	// Get returns a single game.
	Get(ctx context.Context, id uint) (*hockeyModel.Game, error)

	// Options returns the enumerations the add/edit form needs.
	Options(ctx context.Context) (*hockeyModel.FormOptions, error)

	// Create validates the form, derives the result from the goals and the
	// overtime flag, and persists a new game.
	Create(ctx context.Context, form *hockeyModel.GameForm) (*hockeyModel.Game, error)

	// Update applies a form to an existing game and re-derives the result.
	// Blank required fields leave the stored value unchanged; the overtime
	// checkbox is replaced by the submitted state.
	Update(ctx context.Context, id uint, form *hockeyModel.GameForm) (*hockeyModel.Game, error)

	// Delete removes a game.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new hockey service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context, filter hockeyModel.GameFilter) (*hockeyModel.ListResponse, error) {
	games, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	seasons, err := s.repo.DistinctSeasons(ctx)
	if err != nil {
		return nil, err
	}

	return &hockeyModel.ListResponse{
		Games:         games,
		SeasonOptions: seasons,
	}, nil
}

func (s *service) Get(ctx context.Context, id uint) (*hockeyModel.Game, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Options(ctx context.Context) (*hockeyModel.FormOptions, error) {
	seasons, err := s.repo.DistinctSeasons(ctx)
	if err != nil {
		return nil, err
	}
	return &hockeyModel.FormOptions{
		SeasonOptions:   seasons,
		HomeAwayOptions: []string{hockeyModel.HomeGame, hockeyModel.AwayGame},
	}, nil
}

func (s *service) Create(ctx context.Context, form *hockeyModel.GameForm) (*hockeyModel.Game, error) {
	if forms.IsBlank(form.GameDate) {
		return nil, fmt.Errorf("%w: game_date is required", hockeyModel.ErrInvalidGame)
	}
	gameDate, err := forms.ParseDate(form.GameDate)
	if err != nil {
		return nil, fmt.Errorf("%w: game_date must be YYYY-MM-DD", hockeyModel.ErrInvalidGame)
	}
	if forms.IsBlank(form.Season) {
		return nil, fmt.Errorf("%w: season is required", hockeyModel.ErrInvalidGame)
	}
	if forms.IsBlank(form.Opponent) {
		return nil, fmt.Errorf("%w: opponent is required", hockeyModel.ErrInvalidGame)
	}
	homeAway, err := parseHomeAway(form.HomeAway)
	if err != nil {
		return nil, err
	}
	teamGoals := forms.OptionalInt(form.TeamGoals)
	opponentGoals := forms.OptionalInt(form.OpponentGoals)
	if teamGoals == nil || opponentGoals == nil {
		return nil, fmt.Errorf("%w: team_goals and opponent_goals are required integers", hockeyModel.ErrInvalidGame)
	}

	game := &hockeyModel.Game{
		GameDate:      gameDate,
		Season:        form.Season,
		Opponent:      form.Opponent,
		HomeAway:      homeAway,
		TeamGoals:     *teamGoals,
		OpponentGoals: *opponentGoals,
		Overtime:      forms.Checked(form.Overtime),
		Notes:         forms.OptionalString(form.Notes),
	}
	game.Result = deriveResult(game)

	if err := s.repo.Create(ctx, game); err != nil {
		s.logger.Errorw("failed to create hockey game", "error", err)
		return nil, err
	}
	return game, nil
}

func (s *service) Update(ctx context.Context, id uint, form *hockeyModel.GameForm) (*hockeyModel.Game, error) {
	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !forms.IsBlank(form.GameDate) {
		gameDate, parseErr := forms.ParseDate(form.GameDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: game_date must be YYYY-MM-DD", hockeyModel.ErrInvalidGame)
		}
		game.GameDate = gameDate
	}
	if !forms.IsBlank(form.Season) {
		game.Season = form.Season
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
	if !forms.IsBlank(form.TeamGoals) {
		teamGoals := forms.OptionalInt(form.TeamGoals)
		if teamGoals == nil {
			return nil, fmt.Errorf("%w: team_goals must be an integer", hockeyModel.ErrInvalidGame)
		}
		game.TeamGoals = *teamGoals
	}
	if !forms.IsBlank(form.OpponentGoals) {
		opponentGoals := forms.OptionalInt(form.OpponentGoals)
		if opponentGoals == nil {
			return nil, fmt.Errorf("%w: opponent_goals must be an integer", hockeyModel.ErrInvalidGame)
		}
		game.OpponentGoals = *opponentGoals
	}

	// Checkboxes do not distinguish "absent" from "unchecked", so the
	// submitted state always wins.
	game.Overtime = forms.Checked(form.Overtime)
	game.Notes = forms.OptionalString(form.Notes)
	game.Result = deriveResult(game)

	if err := s.repo.Update(ctx, game); err != nil {
		s.logger.Errorw("failed to update hockey game", "id", id, "error", err)
		return nil, err
	}
	return game, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// deriveResult maps the goals and the overtime flag to the stored code. A
// regulation loss stays L; a loss with the overtime flag set becomes OTL.
func deriveResult(game *hockeyModel.Game) score.Result {
	result := score.FromScores(game.TeamGoals, game.OpponentGoals)
	if result == score.Loss && game.Overtime {
		return score.OvertimeLoss
	}
	return result
}

func parseHomeAway(v string) (string, error) {
	switch v {
	case hockeyModel.HomeGame, hockeyModel.AwayGame:
		return v, nil
	case "":
		return "", fmt.Errorf("%w: home_away is required", hockeyModel.ErrInvalidGame)
	default:
		return "", fmt.Errorf("%w: home_away must be Home or Away", hockeyModel.ErrInvalidGame)
	}
}
