// Package model provides domain models and DTOs for the football module.
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

// Game represents a Steelers NFL game.
// Matches the nfl_games table schema. Result is always recomputed from the
// scores; it never comes from user input.
type Game struct {
	ID            uint         `gorm:"primaryKey;column:id" json:"id"`
	GameDate      time.Time    `gorm:"column:game_date;type:date;not null" json:"game_date"`
	Season        int          `gorm:"column:season;not null" json:"season"`
	Week          *int         `gorm:"column:week" json:"week"`
	Opponent      string       `gorm:"column:opponent;type:varchar(120);not null" json:"opponent"`
	HomeAway      string       `gorm:"column:home_away;type:varchar(10);not null" json:"home_away"`
	TeamScore     int          `gorm:"column:team_score;not null" json:"team_score"`
	OpponentScore int          `gorm:"column:opponent_score;not null" json:"opponent_score"`
	Result        score.Result `gorm:"column:result;type:varchar(3);not null" json:"result"`
	Notes         *string      `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time    `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Game) TableName() string {
	return "nfl_games"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (g *Game) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return nil
}
