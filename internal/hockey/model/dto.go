package model

// GameForm carries the add/edit form fields as raw strings. Overtime is a
// checkbox: absent means false on add, while on edit the stored flag is
// replaced by whatever the form carries.
type GameForm struct {
	GameDate      string `form:"game_date"`
	Season        string `form:"season"`
	Opponent      string `form:"opponent"`
	HomeAway      string `form:"home_away"`
	TeamGoals     string `form:"team_goals"`
	OpponentGoals string `form:"opponent_goals"`
	Overtime      string `form:"overtime"`
	Notes         string `form:"notes"`
}

// GameFilter holds the optional list filters.
type GameFilter struct {
	// Season filters by the exact season label, e.g. "2025-26".
	Season string
	// Opponent filters by case-insensitive substring.
	Opponent string
	// Result filters by exact derived result code ("W", "L", "T", "OTL").
	Result string
}

// ListResponse is the list view payload: matching games plus the distinct
// season labels used to populate the filter dropdown.
type ListResponse struct {
	Games         []Game   `json:"games"`
	SeasonOptions []string `json:"season_options"`
}

// FormOptions carries the enumerations an add/edit form needs.
type FormOptions struct {
	SeasonOptions   []string `json:"season_options"`
	HomeAwayOptions []string `json:"home_away_options"`
}
