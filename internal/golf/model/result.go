package model

import (
	"time"

	"gorm.io/gorm"
)

// TournamentResult represents a PGA tournament result.
// Matches the pga_results table schema.
type TournamentResult struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	Year           int       `gorm:"column:year;not null" json:"year"`
	TournamentName string    `gorm:"column:tournament_name;type:varchar(150);not null" json:"tournament_name"`
	Course         *string   `gorm:"column:course;type:varchar(150)" json:"course"`
	FinishPosition *int      `gorm:"column:finish_position" json:"finish_position"`
	ScoreToPar     *int      `gorm:"column:score_to_par" json:"score_to_par"`
	Winner         *string   `gorm:"column:winner;type:varchar(120)" json:"winner"`
	WinnerImageURL *string   `gorm:"column:winner_image_url;type:varchar(255)" json:"winner_image_url"`
	Notes          *string   `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (TournamentResult) TableName() string {
	return "pga_results"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *TournamentResult) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}
