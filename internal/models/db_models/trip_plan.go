package db_models

// TripPlan is one completed generation: the request that produced it, the raw
// model answer and the rendered sections. Never updated after insert.
type TripPlan struct {
	BaseModel
	Username string `gorm:"index;size:64;not null" json:"username"`

	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      float64  `json:"budget"`
	Currency    string   `gorm:"size:8" json:"currency"`
	Interests   []string `gorm:"serializer:json" json:"interests"`
	Season      string   `json:"season,omitempty"`
	TravelStyle string   `json:"travel_style,omitempty"`
	GroupSize   string   `json:"group_size,omitempty"`
	Notes       string   `json:"notes,omitempty"`

	Model       string `json:"model"`
	RawResponse string `gorm:"type:text" json:"raw_response"`
	Title       string `json:"title"`
	Itinerary   string `gorm:"type:text" json:"itinerary"`
	BudgetText  string `gorm:"type:text" json:"budget_text"`
	Tips        string `gorm:"type:text" json:"tips"`
	PackingList string `gorm:"type:text" json:"packing_list"`
}
