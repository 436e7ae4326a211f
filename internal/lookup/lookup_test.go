package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
)

func TestChampionFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Ahri", "ahri"},
		{"space stripped", "Lee Sin", "leesin"},
		{"apostrophe special case", "Kai'Sa", "kaisa"},
		{"ksante special case", "K'Sante", "ksante"},
		{"dot stripped", "Dr. Mundo", "drmundo"},
		{"jarvan short form", "Jarvan", "jarvaniv"},
		{"jarvan full form", "Jarvan IV", "jarvaniv"},
		{"plain normalization fallback", "Renata Glasc", "renataglasc"},
		{"whitespace trimmed", "  Azir  ", "azir"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChampionFilename(tt.input))
		})
	}
}

func TestTeamLogo(t *testing.T) {
	assert.Equal(t, "geng.svg", TeamLogo("Gen.G"))
	assert.Equal(t, "geng.svg", TeamLogo("GEN"), "short tag maps to the same logo")
	assert.Equal(t, "t1.svg", TeamLogo("T1"))
	assert.Equal(t, "", TeamLogo("Unknown Org"), "unknown team has no logo")
}

func TestMatchKeywords(t *testing.T) {
	assert.NotEmpty(t, MatchKeywords(domain.StoryStageQuarterfinal, 1))
	assert.NotEmpty(t, MatchKeywords(domain.StoryStageFinal, 1))
	assert.Empty(t, MatchKeywords(domain.StoryStageFinal, 99), "unknown match yields no keywords")
	assert.Empty(t, MatchKeywords(domain.StoryStage("SW_R1"), 1), "swiss matches have no keywords")
}
