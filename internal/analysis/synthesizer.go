package analysis

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"shortspro/internal/types"
	"shortspro/pkg/util"
)

const (
	maxTitleRunes       = 60
	categoryHashtagPick = 3
	maxHashtags         = 8
	minKeywordLetters   = 4
)

// Per-category title template pools. A %s slot is filled with the dominant
// content word extracted from the source metadata.
var categoryTemplates = map[types.Category][]string{
	types.CategoryGaming: {
		"%s moment! 🎮", "Incredible %s gameplay! 🤯", "%s skills on display! 🔥",
	},
	types.CategoryMusic: {
		"%s vibes! 🎵", "Amazing %s performance! 🎶", "%s sounds perfect! ✨",
	},
	types.CategorySports: {
		"%s action! 🏀", "Incredible %s move! ⚽", "%s excellence! 🏈",
	},
	types.CategoryComedy: {
		"%s funny moment! 😂", "Hilarious %s clip! 🤣", "%s comedy gold! 🎭",
	},
	types.CategoryEducation: {
		"%s knowledge! 🧠", "Learn %s easily! 📚", "%s explained! 💎",
	},
	types.CategoryGeneral: {
		"%s moment! 🤯", "Incredible %s clip! 🚀", "%s awesomeness! 🔥",
	},
}

var categoryHashtags = map[types.Category][]string{
	types.CategoryGaming:    {"#gaming", "#gameplay", "#gamer", "#videogames"},
	types.CategoryMusic:     {"#music", "#song", "#musician", "#musicvideo"},
	types.CategorySports:    {"#sports", "#athlete", "#fitness", "#sportsmoments"},
	types.CategoryComedy:    {"#comedy", "#funny", "#humor", "#laugh"},
	types.CategoryEducation: {"#education", "#learning", "#knowledge", "#educational"},
	types.CategoryGeneral:   {"#viral", "#trending", "#epic", "#mustwatch"},
}

// Appended to every clip regardless of category.
var platformHashtags = []string{"#shorts", "#youtubeshorts", "#viral", "#trending"}

var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {}, "will": {},
	"your": {}, "what": {}, "when": {}, "where": {}, "their": {}, "about": {},
	"into": {}, "more": {}, "most": {}, "some": {}, "they": {}, "them": {},
	"been": {}, "were": {}, "video": {}, "watch": {}, "like": {}, "just": {},
	"official": {}, "channel": {}, "subscribe": {},
}

var fallbackKeywords = []string{"epic", "amazing", "incredible", "awesome"}

var wordPattern = regexp.MustCompile(`[a-zA-Z]{4,}`)

// Synthesizer generates clip titles and hashtag sets. The pseudo-random
// source is injected so tests can seed it and assert structural properties.
type Synthesizer struct {
	rng *rand.Rand
}

func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

func NewSynthesizerWithRand(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Synthesize produces a title and hashtag set for one clip of the given
// category, drawing variation from the injected random source.
func (s *Synthesizer) Synthesize(category types.Category, title, description string) (string, []string) {
	templates, ok := categoryTemplates[category]
	if !ok {
		templates = categoryTemplates[types.CategoryGeneral]
	}
	template := templates[s.rng.Intn(len(templates))]

	clipTitle := template
	if strings.Contains(template, "%s") {
		clipTitle = fmt.Sprintf(template, s.extractKeyword(title+" "+description))
	}
	clipTitle = util.TruncateWithEllipsis(clipTitle, maxTitleRunes)

	return clipTitle, s.pickHashtags(category)
}

// extractKeyword returns the most frequent content word (>= 4 letters,
// stop-words excluded) from the text, falling back to a stock word when
// nothing qualifies.
func (s *Synthesizer) extractKeyword(text string) string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	words = lo.Filter(words, func(w string, _ int) bool {
		_, stop := stopWords[w]
		return !stop && len(w) >= minKeywordLetters
	})
	if len(words) == 0 {
		return fallbackKeywords[s.rng.Intn(len(fallbackKeywords))]
	}

	counts := lo.CountValues(words)
	best := words[0]
	for _, w := range words {
		if counts[w] > counts[best] {
			best = w
		}
	}
	// Words are ASCII letters by construction.
	return strings.ToUpper(best[:1]) + best[1:]
}

func (s *Synthesizer) pickHashtags(category types.Category) []string {
	pool, ok := categoryHashtags[category]
	if !ok {
		pool = categoryHashtags[types.CategoryGeneral]
	}

	// Sample without replacement from the category pool.
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	pick := categoryHashtagPick
	if pick > len(shuffled) {
		pick = len(shuffled)
	}

	hashtags := lo.Uniq(append(shuffled[:pick:pick], platformHashtags...))
	if len(hashtags) > maxHashtags {
		hashtags = hashtags[:maxHashtags]
	}
	return hashtags
}
