package services

import "strings"

var seasonNotes = map[string]string{
	"spring": "Mild weather with blooming flowers",
	"summer": "Warm and sunny, perfect for outdoor activities",
	"fall":   "Comfortable temperatures with beautiful foliage",
	"autumn": "Comfortable temperatures with beautiful foliage",
	"winter": "Cooler temperatures, great for indoor attractions",
}

// SeasonNote is the short weather line shown under a plan. Empty for an
// unknown or missing season.
func SeasonNote(season string) string {
	return seasonNotes[strings.ToLower(strings.TrimSpace(season))]
}
