package services

import (
	"fmt"
	"strconv"
	"strings"
	"travelstar/internal/models/request_models"
)

// Section headings the model is asked to answer with. RenderService splits on them.
const (
	MarkerTitle       = "TITLE"
	MarkerItinerary   = "ITINERARY"
	MarkerBudget      = "BUDGET"
	MarkerTips        = "TIPS"
	MarkerPackingList = "PACKING LIST"
)

type PromptServiceInterface interface {
	Build(request request_models.TripRequest) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// Build renders the planning prompt. Optional clauses are left out when their
// field is empty; otherwise the output depends only on the request.
func (p *PromptService) Build(request request_models.TripRequest) string {
	var sb strings.Builder

	sb.WriteString("You are Travelstar, an expert AI travel planner specializing in personalized, budget-friendly itineraries for students and young travelers.\n\n")
	sb.WriteString("Plan a trip with these preferences:\n")
	fmt.Fprintf(&sb, "Destination: %s\n", request.Destination)
	fmt.Fprintf(&sb, "Duration: %d days\n", request.Days)
	fmt.Fprintf(&sb, "Budget: %s (total for the whole trip)\n", FormatBudget(request.Budget, request.Currency))
	if len(request.Interests) > 0 {
		fmt.Fprintf(&sb, "Interests: %s\n", strings.Join(request.Interests, ", "))
	}
	if request.Season != "" {
		fmt.Fprintf(&sb, "Season: %s\n", request.Season)
	}
	if request.TravelStyle != "" {
		fmt.Fprintf(&sb, "Travel Style: %s\n", request.TravelStyle)
	}
	if request.GroupSize != "" {
		fmt.Fprintf(&sb, "Group Size: %s\n", request.GroupSize)
	}
	if request.Notes != "" {
		fmt.Fprintf(&sb, "Additional Notes: %s\n", request.Notes)
	}

	sb.WriteString("\nCreate a realistic itinerary that maximizes experiences while staying within the budget. ")
	sb.WriteString("Favour affordable accommodation, local food and free or cheap activities.\n\n")

	sb.WriteString("Answer in plain text using exactly these section headings, each on its own line and in this order:\n")
	fmt.Fprintf(&sb, "%s:\nA creative one-line title for the trip.\n", MarkerTitle)
	fmt.Fprintf(&sb, "%s:\nOne \"Day N: theme\" line for each day from Day 1 to Day %d, followed by morning, afternoon and evening activities with duration and cost.\n", MarkerItinerary, request.Days)
	fmt.Fprintf(&sb, "%s:\nThe total estimated cost, then accommodation, food, activities and shopping, transportation and miscellaneous, one per line.\n", MarkerBudget)
	fmt.Fprintf(&sb, "%s:\nFive practical travel tips for this destination, one per line starting with \"- \".\n", MarkerTips)
	fmt.Fprintf(&sb, "%s:\nA smart packing list for %d days", MarkerPackingList, request.Days)
	if request.Season != "" {
		fmt.Fprintf(&sb, " in %s", strings.ToLower(request.Season))
	}
	sb.WriteString(", essentials and multi-purpose items, one per line starting with \"- \".\n")
	sb.WriteString("Do not add any other headings.")

	return sb.String()
}

// FormatBudget prints the amount without trailing zeros, e.g. "500 INR".
func FormatBudget(amount float64, currency string) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if currency == "" {
		return s
	}
	return s + " " + currency
}
