package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
)

const statsHeader = "챔피언,총 픽 횟수 (Total),블루 1픽 (Blue 1st),레드 1픽 (Red 1st),Tier Score (가치 점수),Side Index (진영 선호도)\n"

func TestParseStatsCSV(t *testing.T) {
	t.Run("parses well-formed rows", func(t *testing.T) {
		csv := statsHeader +
			"Ahri,12,4,2,87.5,0.67 (블루 선호)\n" +
			"K'Sante,9,1,5,72.0,-0.45 (레드 선호)\n" +
			"Azir,7,2,2,65.3,0.00 (균형)\n"

		rows, err := parseStatsCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "Ahri", rows[0].ChampionName)
		assert.Equal(t, 12, rows[0].TotalPicks)
		assert.Equal(t, 4, rows[0].BlueFirstPick)
		assert.Equal(t, 2, rows[0].RedFirstPick)
		assert.InDelta(t, 87.5, rows[0].TierScore, 0.001)
		assert.InDelta(t, 0.67, rows[0].SideIndex, 0.001)
		assert.Equal(t, domain.SideBluePref, rows[0].SidePreference)

		assert.Equal(t, domain.SideRedPref, rows[1].SidePreference)
		assert.Equal(t, domain.SideBalanced, rows[2].SidePreference)
	})

	t.Run("rejects a wrong header", func(t *testing.T) {
		csv := "champion,total,blue,red,tier,side\nAhri,1,1,0,50,0.1\n"
		_, err := parseStatsCSV(strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "header column")
	})

	t.Run("rejects malformed numbers with the line number", func(t *testing.T) {
		csv := statsHeader +
			"Ahri,12,4,2,87.5,0.67 (블루 선호)\n" +
			"Azir,seven,2,2,65.3,0.0\n"
		_, err := parseStatsCSV(strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("rejects an empty champion name", func(t *testing.T) {
		csv := statsHeader + " ,12,4,2,87.5,0.5\n"
		_, err := parseStatsCSV(strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty champion name")
	})
}

func TestParseSideIndex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIndex float64
		wantPref  domain.SidePreference
		wantErr   bool
	}{
		{"annotated blue preference", "0.67 (블루 선호)", 0.67, domain.SideBluePref, false},
		{"annotated weak blue", "0.25 (약한 블루)", 0.25, domain.SideBlueWeak, false},
		{"annotated balanced", "0.05 (균형)", 0.05, domain.SideBalanced, false},
		{"annotated weak red", "-0.30 (약한 레드)", -0.30, domain.SideRedWeak, false},
		{"annotated red must", "-0.91 (레드 필수)", -0.91, domain.SideRedMust, false},
		{"annotated blue must", "0.95 (블루 필수)", 0.95, domain.SideBlueMust, false},
		{"bare number defaults balanced", "0.12", 0.12, domain.SideBalanced, false},
		{"unknown annotation defaults balanced", "0.30 (unknown)", 0.30, domain.SideBalanced, false},
		{"not a number", "strong blue", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, pref, err := parseSideIndex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantIndex, index, 0.001)
			assert.Equal(t, tt.wantPref, pref)
		})
	}
}
