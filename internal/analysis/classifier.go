// Package analysis holds the pure heuristics of the pipeline: content
// classification, copyright-risk scoring, timestamp planning and clip
// metadata synthesis.
package analysis

import (
	"strings"

	"shortspro/internal/types"

	"github.com/samber/lo"
)

// Heuristic tables are initialized once and never mutated; they are shared
// freely across concurrent requests.
var categoryKeywords = map[types.Category][]string{
	types.CategoryGaming:    {"game", "gaming", "gameplay", "gamer", "play", "stream", "speedrun", "minecraft", "fortnite"},
	types.CategoryMusic:     {"music", "song", "album", "concert", "cover", "remix", "lyrics", "band", "dj"},
	types.CategorySports:    {"sports", "match", "goal", "football", "basketball", "soccer", "highlights", "workout", "athlete"},
	types.CategoryComedy:    {"funny", "comedy", "joke", "prank", "laugh", "hilarious", "meme", "sketch"},
	types.CategoryEducation: {"learn", "education", "tutorial", "explained", "course", "lesson", "how to", "science", "history"},
}

type riskGroup struct {
	name     string
	weight   int
	keywords []string
}

// Five independent indicator groups; a group contributes its full weight when
// at least one of its keywords appears.
var riskGroups = []riskGroup{
	{name: "music", weight: 40, keywords: []string{"official video", "official audio", "music video", "vevo", "records", "lyrics"}},
	{name: "movie", weight: 35, keywords: []string{"movie", "film", "trailer", "scene", "netflix", "disney", "marvel"}},
	{name: "tv", weight: 30, keywords: []string{"episode", "tv show", "series", "hbo", "season"}},
	{name: "sports", weight: 20, keywords: []string{"nba", "nfl", "fifa", "premier league", "olympics", "espn"}},
	{name: "gaming", weight: 15, keywords: []string{"cutscene", "full game", "walkthrough", "soundtrack"}},
}

const (
	riskHighThreshold   = 60
	riskMediumThreshold = 30
	riskLowDisplayFloor = 15
	riskDisplayCeiling  = 100
)

var riskStatusByLevel = map[types.RiskLevel]string{
	types.RiskLevelLow:    "🟢 LOW COPYRIGHT RISK",
	types.RiskLevelMedium: "🟡 MEDIUM COPYRIGHT RISK",
	types.RiskLevelHigh:   "🔴 HIGH COPYRIGHT RISK",
}

// Classify maps textual metadata to a content category and a copyright-risk
// assessment. Pure function of its inputs: no randomness, no I/O.
func Classify(title, description string) (types.Category, types.RiskAssessment) {
	text := strings.ToLower(title + " " + description)

	category := types.CategoryGeneral
	bestHits := 0
	for _, cat := range types.CategoryOrder {
		keywords, ok := categoryKeywords[cat]
		if !ok {
			continue
		}
		hits := lo.CountBy(keywords, func(kw string) bool {
			return strings.Contains(text, kw)
		})
		// Strictly greater keeps the earlier category on ties.
		if hits > bestHits {
			category = cat
			bestHits = hits
		}
	}

	return category, AssessRisk(text)
}

// AssessRisk accumulates group weights over the lower-cased text and buckets
// the raw score into a tier. The reported score is clamped into a
// tier-appropriate display range so a low tier never reads as zero risk.
func AssessRisk(text string) types.RiskAssessment {
	score := 0
	for _, group := range riskGroups {
		hit := lo.SomeBy(group.keywords, func(kw string) bool {
			return strings.Contains(text, kw)
		})
		if hit {
			score += group.weight
		}
	}

	var level types.RiskLevel
	switch {
	case score >= riskHighThreshold:
		level = types.RiskLevelHigh
	case score >= riskMediumThreshold:
		level = types.RiskLevelMedium
	default:
		level = types.RiskLevelLow
	}

	display := score
	if level == types.RiskLevelLow && display < riskLowDisplayFloor {
		display = riskLowDisplayFloor
	}
	if display > riskDisplayCeiling {
		display = riskDisplayCeiling
	}

	return types.RiskAssessment{
		Level:  level,
		Score:  display,
		Status: riskStatusByLevel[level],
	}
}
