// Package model provides domain models and DTOs for the hockey module.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/steelcity/sports-results/pkg/score"
)

// Home and away designations for a game.
const (
	HomeGame = "Home"
	AwayGame = "Away"
)

// Game represents a Penguins NHL game.
// Matches the nhl_games table schema. Season is a label like "2025-26"
// because NHL seasons span the calendar year boundary. Result is always
// recomputed from the goals and the overtime flag; a loss in overtime is
// stored as OTL.
type Game struct {
	ID            uint         `gorm:"primaryKey;column:id" json:"id"`
	GameDate      time.Time    `gorm:"column:game_date;type:date;not null" json:"game_date"`
	Season        string       `gorm:"column:season;type:varchar(9);not null" json:"season"`
	Opponent      string       `gorm:"column:opponent;type:varchar(120);not null" json:"opponent"`
	HomeAway      string       `gorm:"column:home_away;type:varchar(10);not null" json:"home_away"`
	TeamGoals     int          `gorm:"column:team_goals;not null" json:"team_goals"`
	OpponentGoals int          `gorm:"column:opponent_goals;not null" json:"opponent_goals"`
	Overtime      bool         `gorm:"column:overtime;not null" json:"overtime"`
	Result        score.Result `gorm:"column:result;type:varchar(3);not null" json:"result"`
	Notes         *string      `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time    `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Game) TableName() string {
	return "nhl_games"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (g *Game) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return nil
}
