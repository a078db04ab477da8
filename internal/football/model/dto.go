package model

// GameForm carries the add/edit form fields as raw strings.
type GameForm struct {
	GameDate      string `form:"game_date"`
	Season        string `form:"season"`
	Week          string `form:"week"`
	Opponent      string `form:"opponent"`
	HomeAway      string `form:"home_away"`
	TeamScore     string `form:"team_score"`
	OpponentScore string `form:"opponent_score"`
	Notes         string `form:"notes"`
}

// GameFilter holds the optional list filters.
type GameFilter struct {
	// Season filters by exact season; nil means no filter. A non-numeric
	// query value is dropped before it reaches this struct.
	Season *int
	// Opponent filters by case-insensitive substring.
	Opponent string
	// Result filters by exact derived result code ("W", "L", "T").
	Result string
}

// ListResponse is the list view payload: matching games plus the distinct
// seasons used to populate the filter dropdown.
type ListResponse struct {
	Games         []Game `json:"games"`
	SeasonOptions []int  `json:"season_options"`
}

// FormOptions carries the enumerations an add/edit form needs.
type FormOptions struct {
	SeasonOptions   []int    `json:"season_options"`
	HomeAwayOptions []string `json:"home_away_options"`
}
