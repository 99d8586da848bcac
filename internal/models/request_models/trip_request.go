package request_models

import (
	"fmt"
	"strings"
	"travelstar/pkg/utils"
)

const MaxTripDays = 30

// TripRequest holds the trip parameters of one generation. It is never stored
// on its own; its fields are copied into the resulting TripPlan.
type TripRequest struct {
	Destination string   `json:"destination" form:"destination"`
	Days        int      `json:"days" form:"days"`
	Budget      float64  `json:"budget" form:"budget"`
	Currency    string   `json:"currency" form:"currency"`
	Interests   []string `json:"interests" form:"interests"`
	Season      string   `json:"season" form:"season"`
	TravelStyle string   `json:"travel_style" form:"travel_style"`
	GroupSize   string   `json:"group_size" form:"group_size"`
	Notes       string   `json:"notes" form:"notes"`
}

// Normalize trims every text field and drops blank interests.
func (r *TripRequest) Normalize() {
	r.Destination = strings.TrimSpace(r.Destination)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	r.Season = strings.TrimSpace(r.Season)
	r.TravelStyle = strings.TrimSpace(r.TravelStyle)
	r.GroupSize = strings.TrimSpace(r.GroupSize)
	r.Notes = strings.TrimSpace(r.Notes)

	interests := make([]string, 0, len(r.Interests))
	for _, in := range r.Interests {
		if in = strings.TrimSpace(in); in != "" {
			interests = append(interests, in)
		}
	}
	r.Interests = interests
}

// Validate checks field presence before anything external is called.
func (r *TripRequest) Validate() error {
	switch {
	case r.Destination == "":
		return fmt.Errorf("%w: Please enter a destination to continue", utils.ErrInvalidInput)
	case r.Days <= 0:
		return fmt.Errorf("%w: Number of days must be greater than 0", utils.ErrInvalidInput)
	case r.Days > MaxTripDays:
		return fmt.Errorf("%w: Trips are limited to %d days", utils.ErrInvalidInput, MaxTripDays)
	case r.Budget <= 0:
		return fmt.Errorf("%w: Budget must be greater than 0", utils.ErrInvalidInput)
	}
	return nil
}
