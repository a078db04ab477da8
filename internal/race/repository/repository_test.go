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

	raceModel "github.com/steelcity/sports-results/internal/race/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&raceModel.Race{})
	require.NoError(t, err)

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRace(t *testing.T, repo Repository, day time.Time, track, winner string, series *string) *raceModel.Race {
	t.Helper()
	race := &raceModel.Race{
		RaceDate: day,
		Track:    track,
		Winner:   winner,
		Series:   series,
	}
	require.NoError(t, repo.Create(context.Background(), race))
	return race
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	race := &raceModel.Race{
		RaceDate:       date(2025, 2, 16),
		Track:          "Daytona International Speedway",
		Winner:         "William Byron",
		Series:         strPtr("Cup"),
		StartPosition:  intPtr(3),
		FinishPosition: intPtr(1),
	}
	require.NoError(t, repo.Create(ctx, race))
	assert.NotZero(t, race.ID)

	got, err := repo.GetByID(ctx, race.ID)
	require.NoError(t, err)
	assert.Equal(t, "Daytona International Speedway", got.Track)
	assert.Equal(t, "William Byron", got.Winner)
	require.NotNil(t, got.Series)
	assert.Equal(t, "Cup", *got.Series)
	require.NotNil(t, got.FinishPosition)
	assert.Equal(t, 1, *got.FinishPosition)
	assert.Nil(t, got.LapsLed)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	got, err := repo.GetByID(context.Background(), 999999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, raceModel.ErrRaceNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("unfiltered sorts by race date descending", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		seedRace(t, repo, date(2025, 2, 16), "Daytona International Speedway", "Byron", strPtr("Cup"))
		seedRace(t, repo, date(2025, 3, 2), "Circuit of the Americas", "Bell", strPtr("Cup"))
		seedRace(t, repo, date(2025, 2, 22), "Atlanta Motor Speedway", "Allgaier", strPtr("Xfinity"))

		races, err := repo.List(ctx, raceModel.RaceFilter{})
		require.NoError(t, err)
		require.Len(t, races, 3)
		assert.Equal(t, "Circuit of the Americas", races[0].Track)
		assert.Equal(t, "Atlanta Motor Speedway", races[1].Track)
		assert.Equal(t, "Daytona International Speedway", races[2].Track)
	})

	t.Run("series filter is exact", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		seedRace(t, repo, date(2025, 2, 16), "Daytona International Speedway", "Byron", strPtr("Cup"))
		seedRace(t, repo, date(2025, 2, 22), "Atlanta Motor Speedway", "Allgaier", strPtr("Xfinity"))

		races, err := repo.List(ctx, raceModel.RaceFilter{Series: "Cup"})
		require.NoError(t, err)
		require.Len(t, races, 1)
		assert.Equal(t, "Daytona International Speedway", races[0].Track)

		races, err = repo.List(ctx, raceModel.RaceFilter{Series: "Cu"})
		require.NoError(t, err)
		assert.Empty(t, races)
	})

	t.Run("track filter is case-insensitive substring", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		seedRace(t, repo, date(2025, 2, 16), "Daytona International Speedway", "Byron", strPtr("Cup"))
		seedRace(t, repo, date(2025, 2, 22), "Atlanta Motor Speedway", "Allgaier", strPtr("Xfinity"))

		races, err := repo.List(ctx, raceModel.RaceFilter{Track: "daytona"})
		require.NoError(t, err)
		require.Len(t, races, 1)
		assert.Equal(t, "Daytona International Speedway", races[0].Track)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo := New(setupTestDB(t), zap.NewNop().Sugar())
		races, err := repo.List(ctx, raceModel.RaceFilter{})
		require.NoError(t, err)
		assert.NotNil(t, races)
		assert.Empty(t, races)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	race := seedRace(t, repo, date(2025, 2, 16), "Daytona International Speedway", "Byron", strPtr("Cup"))
	race.Winner = "Tyler Reddick"
	race.LapsLed = intPtr(28)
	require.NoError(t, repo.Update(ctx, race))

	got, err := repo.GetByID(ctx, race.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tyler Reddick", got.Winner)
	require.NotNil(t, got.LapsLed)
	assert.Equal(t, 28, *got.LapsLed)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	race := seedRace(t, repo, date(2025, 2, 16), "Daytona International Speedway", "Byron", nil)

	require.NoError(t, repo.Delete(ctx, race.ID))

	_, err := repo.GetByID(ctx, race.ID)
	assert.ErrorIs(t, err, raceModel.ErrRaceNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, race.ID), raceModel.ErrRaceNotFound)
}

func TestRepository_DistinctSeries(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	seedRace(t, repo, date(2025, 2, 16), "Daytona", "Byron", strPtr("Cup"))
	seedRace(t, repo, date(2025, 2, 22), "Atlanta", "Allgaier", strPtr("Xfinity"))
	seedRace(t, repo, date(2025, 3, 2), "COTA", "Bell", strPtr("Cup"))
	seedRace(t, repo, date(2025, 3, 9), "Phoenix", "Hamlin", nil)

	series, err := repo.DistinctSeries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cup", "Xfinity"}, series)
}
