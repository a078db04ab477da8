// Package model provides domain models and DTOs for the golf module.
package model

// ResultForm carries the add/edit form fields as raw strings.
type ResultForm struct {
	Year           string `form:"year"`
	TournamentName string `form:"tournament_name"`
	Course         string `form:"course"`
	FinishPosition string `form:"finish_position"`
	ScoreToPar     string `form:"score_to_par"`
	Winner         string `form:"winner"`
	WinnerImageURL string `form:"winner_image_url"`
	Notes          string `form:"notes"`
}

// ResultFilter holds the optional list filters.
type ResultFilter struct {
	// Year filters by exact year; nil means no filter. A non-numeric
	// query value is dropped before it reaches this struct.
	Year *int
	// Tournament filters tournament_name by case-insensitive substring.
	Tournament string
}

// ListResponse is the list view payload: matching results plus the
// distinct years used to populate the filter dropdown.
type ListResponse struct {
	Results     []TournamentResult `json:"results"`
	YearOptions []int              `json:"year_options"`
}

// FormOptions carries the enumerations an add/edit form needs.
type FormOptions struct {
	YearOptions []int `json:"year_options"`
}
