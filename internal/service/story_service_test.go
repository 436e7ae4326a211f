package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
)

func storyRow(matchNumber, setNumber int, teamA, teamB, score, overview string) *domain.MatchStory {
	return &domain.MatchStory{
		Stage:           domain.StoryStageQuarterfinal,
		MatchNumber:     matchNumber,
		SetNumber:       setNumber,
		TeamA:           teamA,
		TeamB:           teamB,
		Winner:          teamA,
		FinalScore:      score,
		MatchOverview:   overview,
		BanpickAnalysis: "analysis",
		GameNarrative:   "narrative",
	}
}

func TestGroupStories(t *testing.T) {
	t.Run("groups sets of one match together", func(t *testing.T) {
		stories := []*domain.MatchStory{
			storyRow(1, 1, "Gen.G", "T1", "3:2", "An all-time classic."),
			storyRow(1, 2, "Gen.G", "T1", "3:2", ""),
			storyRow(1, 3, "Gen.G", "T1", "3:2", ""),
			storyRow(2, 1, "kt Rolster", "CTBC Flying Oyster", "3:0", "A clean sweep."),
		}

		groups := GroupStories(stories)
		require.Len(t, groups, 2)

		assert.Equal(t, 1, groups[0].MatchNumber)
		assert.Len(t, groups[0].Sets, 3)
		assert.Equal(t, "An all-time classic.", groups[0].MatchOverview)
		assert.Equal(t, "geng.svg", groups[0].TeamALogo)
		assert.Equal(t, "t1.svg", groups[0].TeamBLogo)

		assert.Equal(t, 2, groups[1].MatchNumber)
		assert.Len(t, groups[1].Sets, 1)
	})

	t.Run("preserves first-seen group order and set order", func(t *testing.T) {
		stories := []*domain.MatchStory{
			storyRow(3, 1, "G2 Esports", "Top Esports", "3:1", ""),
			storyRow(1, 1, "Gen.G", "T1", "3:2", ""),
			storyRow(3, 2, "G2 Esports", "Top Esports", "3:1", ""),
		}

		groups := GroupStories(stories)
		require.Len(t, groups, 2)
		assert.Equal(t, 3, groups[0].MatchNumber)
		assert.Equal(t, 1, groups[1].MatchNumber)
		assert.Equal(t, 1, groups[0].Sets[0].SetNumber)
		assert.Equal(t, 2, groups[0].Sets[1].SetNumber)
	})

	t.Run("overview comes from first non-empty set", func(t *testing.T) {
		stories := []*domain.MatchStory{
			storyRow(1, 1, "Gen.G", "T1", "3:2", ""),
			storyRow(1, 2, "Gen.G", "T1", "3:2", "Filled in late."),
			storyRow(1, 3, "Gen.G", "T1", "3:2", "Never used."),
		}

		groups := GroupStories(stories)
		require.Len(t, groups, 1)
		assert.Equal(t, "Filled in late.", groups[0].MatchOverview)
	})

	t.Run("is pure and repeatable", func(t *testing.T) {
		stories := []*domain.MatchStory{
			storyRow(1, 1, "Gen.G", "T1", "3:2", "Overview."),
			storyRow(1, 2, "Gen.G", "T1", "3:2", ""),
		}

		first := GroupStories(stories)
		second := GroupStories(stories)
		require.Len(t, second, len(first))
		assert.Equal(t, first[0].MatchOverview, second[0].MatchOverview)
		assert.Len(t, second[0].Sets, len(first[0].Sets))
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, GroupStories(nil))
	})
}

func matchRow(id uint, stage domain.Stage, date time.Time) *domain.Match {
	return &domain.Match{
		ID:        id,
		Stage:     stage,
		MatchDate: datatypes.Date(date),
	}
}

func TestNumberMatchesByStage(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
	}

	// Input is already date-ascending, as the repository guarantees.
	matches := []*domain.Match{
		matchRow(10, domain.StageSwissR1, day(1)),
		matchRow(11, domain.StageQuarterfinal, day(5)),
		matchRow(12, domain.StageQuarterfinal, day(6)),
		matchRow(13, domain.StageSemifinal, day(8)),
		matchRow(14, domain.StageQuarterfinal, day(7)),
		matchRow(15, domain.StageFinal, day(12)),
	}

	refs := numberMatchesByStage(matches)

	_, hasSwiss := refs[10]
	assert.False(t, hasSwiss, "swiss matches have no story pages")

	assert.Equal(t, StoryRef{Stage: domain.StoryStageQuarterfinal, MatchNumber: 1}, refs[11])
	assert.Equal(t, StoryRef{Stage: domain.StoryStageQuarterfinal, MatchNumber: 2}, refs[12])
	assert.Equal(t, StoryRef{Stage: domain.StoryStageQuarterfinal, MatchNumber: 3}, refs[14])
	assert.Equal(t, StoryRef{Stage: domain.StoryStageSemifinal, MatchNumber: 1}, refs[13])
	assert.Equal(t, StoryRef{Stage: domain.StoryStageFinal, MatchNumber: 1}, refs[15])
}
