// Package model provides domain models and DTOs for the race module.
package model

// RaceForm carries the add/edit form fields. Every value arrives as a
// string so the service decides blank-versus-absent in one place.
type RaceForm struct {
	RaceDate       string `form:"race_date"`
	Track          string `form:"track"`
	Series         string `form:"series"`
	RaceName       string `form:"race_name"`
	Winner         string `form:"winner"`
	StartPosition  string `form:"start_position"`
	FinishPosition string `form:"finish_position"`
	LapsLed        string `form:"laps_led"`
	CarNumber      string `form:"car_number"`
	CarImageURL    string `form:"car_image_url"`
	Notes          string `form:"notes"`
}

// RaceFilter holds the optional list filters. Empty fields mean no filter.
type RaceFilter struct {
	// Series filters by exact series name.
	Series string
	// Track filters by case-insensitive substring.
	Track string
}

// ListResponse is the list view payload: matching races plus the distinct
// series values used to populate the filter dropdown.
type ListResponse struct {
	Races         []Race   `json:"races"`
	SeriesOptions []string `json:"series_options"`
}

// FormOptions carries the enumerations an add/edit form needs.
type FormOptions struct {
	SeriesOptions []string `json:"series_options"`
}
