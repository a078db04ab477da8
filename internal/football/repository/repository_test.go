package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	footballModel "github.com/steelcity/sports-results/internal/football/model"
	"github.com/steelcity/sports-results/pkg/score"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&footballModel.Game{})
	require.NoError(t, err)

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedGame(t *testing.T, repo Repository, day time.Time, season int, opponent string, teamScore, opponentScore int) *footballModel.Game {
	t.Helper()
	game := &footballModel.Game{
		GameDate:      day,
		Season:        season,
		Opponent:      opponent,
		HomeAway:      footballModel.HomeGame,
		TeamScore:     teamScore,
		OpponentScore: opponentScore,
		Result:        score.FromScores(teamScore, opponentScore),
	}
	require.NoError(t, repo.Create(context.Background(), game))
	return game
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	game := seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)
	assert.NotZero(t, game.ID)

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Baltimore Ravens", got.Opponent)
	assert.Equal(t, 2025, got.Season)
	assert.Equal(t, score.Win, got.Result)
	assert.Nil(t, got.Week)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	got, err := repo.GetByID(context.Background(), 999999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, footballModel.ErrGameNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("unfiltered sorts by game date descending", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)
		seedGame(t, repo, date(2025, 9, 21), 2025, "Cleveland Browns", 13, 20)
		seedGame(t, repo, date(2025, 9, 14), 2025, "Cincinnati Bengals", 27, 27)

		games, err := repo.List(ctx, footballModel.GameFilter{})
		require.NoError(t, err)
		require.Len(t, games, 3)
		assert.Equal(t, "Cleveland Browns", games[0].Opponent)
		assert.Equal(t, "Cincinnati Bengals", games[1].Opponent)
		assert.Equal(t, "Baltimore Ravens", games[2].Opponent)
	})

	t.Run("season filter is exact", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		seedGame(t, repo, date(2024, 9, 8), 2024, "Atlanta Falcons", 18, 10)
		seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)

		season := 2024
		games, err := repo.List(ctx, footballModel.GameFilter{Season: &season})
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Atlanta Falcons", games[0].Opponent)
	})

	t.Run("opponent filter is case-insensitive substring", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)
		seedGame(t, repo, date(2025, 9, 21), 2025, "Cleveland Browns", 13, 20)

		games, err := repo.List(ctx, footballModel.GameFilter{Opponent: "ravens"})
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Baltimore Ravens", games[0].Opponent)
	})

	t.Run("result filter is exact", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)
		seedGame(t, repo, date(2025, 9, 14), 2025, "Cincinnati Bengals", 27, 27)
		seedGame(t, repo, date(2025, 9, 21), 2025, "Cleveland Browns", 13, 20)

		games, err := repo.List(ctx, footballModel.GameFilter{Result: "L"})
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Cleveland Browns", games[0].Opponent)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		games, err := repo.List(ctx, footballModel.GameFilter{})
		require.NoError(t, err)
		assert.NotNil(t, games)
		assert.Empty(t, games)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	game := seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)
	game.TeamScore = 17
	game.OpponentScore = 24
	game.Result = score.FromScores(17, 24)
	require.NoError(t, repo.Update(ctx, game))

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, got.TeamScore)
	assert.Equal(t, score.Loss, got.Result)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	game := seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)

	require.NoError(t, repo.Delete(ctx, game.ID))

	_, err := repo.GetByID(ctx, game.ID)
	assert.ErrorIs(t, err, footballModel.ErrGameNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, game.ID), footballModel.ErrGameNotFound)
}

func TestRepository_DistinctSeasons(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	seedGame(t, repo, date(2023, 9, 10), 2023, "San Francisco 49ers", 7, 30)
	seedGame(t, repo, date(2025, 9, 7), 2025, "Baltimore Ravens", 24, 17)
	seedGame(t, repo, date(2025, 9, 14), 2025, "Cincinnati Bengals", 27, 27)
	seedGame(t, repo, date(2024, 9, 8), 2024, "Atlanta Falcons", 18, 10)

	seasons, err := repo.DistinctSeasons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024, 2023}, seasons)
}
