package model

import (
	"time"

	"gorm.io/gorm"
)

// Race represents a NASCAR race record.
// Matches the nascar_races table schema.
type Race struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	RaceDate       time.Time `gorm:"column:race_date;type:date;not null" json:"race_date"`
	Track          string    `gorm:"column:track;type:varchar(120);not null" json:"track"`
	Series         *string   `gorm:"column:series;type:varchar(80)" json:"series"`
	RaceName       *string   `gorm:"column:race_name;type:varchar(150)" json:"race_name"`
	Winner         string    `gorm:"column:winner;type:varchar(120);not null" json:"winner"`
	StartPosition  *int      `gorm:"column:start_position" json:"start_position"`
	FinishPosition *int      `gorm:"column:finish_position" json:"finish_position"`
	LapsLed        *int      `gorm:"column:laps_led" json:"laps_led"`
	CarNumber      *string   `gorm:"column:car_number;type:varchar(10)" json:"car_number"`
	CarImageURL    *string   `gorm:"column:car_image_url;type:varchar(255)" json:"car_image_url"`
	Notes          *string   `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Race) TableName() string {
	return "nascar_races"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *Race) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}
