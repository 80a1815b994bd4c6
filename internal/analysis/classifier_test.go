package analysis

import (
	"testing"

	"shortspro/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategories(t *testing.T) {
	testCases := []struct {
		name        string
		title       string
		description string
		want        types.Category
	}{
		{"gaming", "Insane Minecraft gameplay", "gamer builds a castle", types.CategoryGaming},
		{"music", "New song from the album", "official music cover", types.CategoryMusic},
		{"sports", "Best football highlights", "goal after goal", types.CategorySports},
		{"comedy", "Funny prank compilation", "you will laugh", types.CategoryComedy},
		{"education", "Python tutorial for beginners", "learn to code, full course", types.CategoryEducation},
		{"no hits", "Untitled upload", "", types.CategoryGeneral},
		{"empty", "", "", types.CategoryGeneral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category, _ := Classify(tc.title, tc.description)
			assert.Equal(t, tc.want, category)
		})
	}
}

func TestClassifyTieBreaksByEnumOrder(t *testing.T) {
	// One gaming hit and one music hit: gaming precedes music in the enum.
	category, _ := Classify("game song", "")
	assert.Equal(t, types.CategoryGaming, category)
}

func TestClassifyIsPure(t *testing.T) {
	title := "Official music video - movie trailer reaction"
	description := "an episode of something"

	firstCat, firstRisk := Classify(title, description)
	for i := 0; i < 10; i++ {
		category, risk := Classify(title, description)
		assert.Equal(t, firstCat, category)
		assert.Equal(t, firstRisk, risk)
	}
}

func TestAssessRiskTiers(t *testing.T) {
	// No indicator hits: low tier, displayed score floored above zero.
	risk := AssessRisk("a quiet vlog about nothing")
	assert.Equal(t, types.RiskLevelLow, risk.Level)
	assert.Equal(t, riskLowDisplayFloor, risk.Score)
	assert.Contains(t, risk.Status, "LOW")

	// Single movie hit (35): medium tier.
	risk = AssessRisk("reaction to the new marvel trailer")
	assert.Equal(t, types.RiskLevelMedium, risk.Level)
	assert.Equal(t, 35, risk.Score)

	// Music (40) + movie (35): high tier.
	risk = AssessRisk("official video for the film soundtrack by vevo, movie scene")
	assert.Equal(t, types.RiskLevelHigh, risk.Level)
	assert.GreaterOrEqual(t, risk.Score, riskHighThreshold)
	assert.LessOrEqual(t, risk.Score, riskDisplayCeiling)
}

func TestAssessRiskGroupCountsOnce(t *testing.T) {
	// Multiple hits inside one group still add the group weight once.
	single := AssessRisk("marvel")
	multi := AssessRisk("marvel disney netflix film trailer")
	assert.Equal(t, single.Score, multi.Score)
}
