package services

import (
	"regexp"
	"strings"
	"travelstar/internal/models/response_models"
)

type RenderServiceInterface interface {
	Render(text string) response_models.RenderedPlan
}

type RenderService struct{}

func NewRenderService() RenderServiceInterface {
	return &RenderService{}
}

var (
	// longer aliases first so "BUDGET BREAKDOWN" is not read as "BUDGET"
	markerLine = regexp.MustCompile(`(?i)^[\s#*_>]*(title|daily itinerary|itinerary|budget breakdown|budget|travel tips|tips|packing list|packing)[\s*_]*(:?)[\s*_]*(.*?)[\s*_]*$`)
	dayLine    = regexp.MustCompile(`(?i)^[\s#*_]*day\s*\d+\b`)
	bulletLine = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
)

var markerAliases = map[string]string{
	"title":            MarkerTitle,
	"daily itinerary":  MarkerItinerary,
	"itinerary":        MarkerItinerary,
	"budget breakdown": MarkerBudget,
	"budget":           MarkerBudget,
	"travel tips":      MarkerTips,
	"tips":             MarkerTips,
	"packing list":     MarkerPackingList,
	"packing":          MarkerPackingList,
}

// Render splits a model answer on its section headings. A heading counts when
// it starts a line and is either alone on that line or written in capitals
// with text after the colon. "Title:" is also accepted in any case. Text before the first heading is dropped and a
// heading the model left out yields an empty section.
func (r *RenderService) Render(text string) response_models.RenderedPlan {
	sections := map[string][]string{}
	current := ""

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if marker, rest, ok := matchMarker(line); ok {
			current = marker
			if rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	join := func(marker string) string {
		return strings.TrimSpace(strings.Join(sections[marker], "\n"))
	}

	return response_models.RenderedPlan{
		Title:       join(MarkerTitle),
		Itinerary:   join(MarkerItinerary),
		Budget:      join(MarkerBudget),
		Tips:        join(MarkerTips),
		PackingList: join(MarkerPackingList),
	}
}

func matchMarker(line string) (string, string, bool) {
	m := markerLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	heading, colon, rest := m[1], m[2], m[3]

	if rest != "" {
		// "Budget: $40 for lunch" inside a day plan is content, not a heading.
		// A title line never appears in a day plan, so any casing is accepted.
		if colon == "" {
			return "", "", false
		}
		if heading != strings.ToUpper(heading) && !strings.EqualFold(heading, "title") {
			return "", "", false
		}
	}

	return markerAliases[strings.ToLower(heading)], rest, true
}

// SplitDays groups an itinerary into blocks, one per "Day N" heading. Lines
// before the first heading form a block with an empty heading.
func SplitDays(itinerary string) []response_models.DayBlock {
	var blocks []response_models.DayBlock
	var cur *response_models.DayBlock

	for _, line := range strings.Split(itinerary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if dayLine.MatchString(trimmed) {
			blocks = append(blocks, response_models.DayBlock{Heading: cleanDecoration(trimmed)})
			cur = &blocks[len(blocks)-1]
			continue
		}
		if cur == nil {
			blocks = append(blocks, response_models.DayBlock{})
			cur = &blocks[len(blocks)-1]
		}
		cur.Lines = append(cur.Lines, cleanDecoration(bulletLine.ReplaceAllString(trimmed, "")))
	}

	return blocks
}

// SplitItems turns a bulleted or numbered section into its items.
func SplitItems(section string) []string {
	items := []string{}
	for _, line := range strings.Split(section, "\n") {
		item := strings.TrimSpace(bulletLine.ReplaceAllString(line, ""))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func cleanDecoration(s string) string {
	return strings.Trim(s, " #*_")
}
