package response_models

// RenderedPlan is the model answer split into its display sections.
type RenderedPlan struct {
	Title       string `json:"title"`
	Itinerary   string `json:"itinerary"`
	Budget      string `json:"budget"`
	Tips        string `json:"tips"`
	PackingList string `json:"packing_list"`
}

type DayBlock struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

type TripPlanResponse struct {
	ID          string       `json:"id"`
	Destination string       `json:"destination"`
	Days        int          `json:"days"`
	Budget      float64      `json:"budget"`
	Currency    string       `json:"currency"`
	Interests   []string     `json:"interests"`
	Season      string       `json:"season,omitempty"`
	TravelStyle string       `json:"travel_style,omitempty"`
	GroupSize   string       `json:"group_size,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	Sections    RenderedPlan `json:"sections"`
	SeasonNote  string       `json:"season_note,omitempty"`
	CreatedAt   string       `json:"created_at"`
}

// GenerationResponse is what a generation returns to the UI. Plan is always
// set on success; Saved reports whether the history write went through.
type GenerationResponse struct {
	Plan    TripPlanResponse `json:"plan"`
	Saved   bool             `json:"saved"`
	Warning string           `json:"warning,omitempty"`
}

type HistoryEntryResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Title       string `json:"title"`
	Days        int    `json:"days"`
	CreatedAt   string `json:"created_at"`
}
