package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/testutil"
)

type storiesResponse struct {
	Stories []struct {
		ID              uint   `json:"id"`
		Stage           string `json:"stage"`
		StageDisplay    string `json:"stage_display"`
		MatchNumber     int    `json:"match_number"`
		SetNumber       int    `json:"set_number"`
		TeamA           string `json:"team_a"`
		TeamB           string `json:"team_b"`
		Winner          string `json:"winner"`
		FinalScore      string `json:"final_score"`
		MatchOverview   string `json:"match_overview"`
		BanpickAnalysis string `json:"banpick_analysis"`
		GameNarrative   string `json:"game_narrative"`
	} `json:"stories"`
	TotalCount int `json:"total_count"`
}

func seedStoryRows(t *testing.T, ts *testutil.TestServer) {
	t.Helper()
	db := ts.DB.DB

	// Seeded out of order on purpose; the API must sort.
	testutil.SeedStory(t, db, &domain.MatchStory{
		Stage: domain.StoryStageFinal, MatchNumber: 1, SetNumber: 1,
		TeamA: "Gen.G", TeamB: "kt Rolster", Winner: "Gen.G", FinalScore: "3:1",
		MatchOverview: "Dynasty against underdog.", BanpickAnalysis: "f1", GameNarrative: "g1",
	})
	testutil.SeedStory(t, db, &domain.MatchStory{
		Stage: domain.StoryStageQuarterfinal, MatchNumber: 1, SetNumber: 2,
		TeamA: "Gen.G", TeamB: "Hanwha Life Esports", Winner: "Hanwha Life Esports", FinalScore: "3:2",
		BanpickAnalysis: "q2", GameNarrative: "g2",
	})
	testutil.SeedStory(t, db, &domain.MatchStory{
		Stage: domain.StoryStageQuarterfinal, MatchNumber: 1, SetNumber: 1,
		TeamA: "Gen.G", TeamB: "Hanwha Life Esports", Winner: "Gen.G", FinalScore: "3:2",
		MatchOverview: "The LCK civil war.", BanpickAnalysis: "q1", GameNarrative: "g1",
	})
}

func TestStoryHandler_API(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("empty database", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp, err := http.Get(ts.APIURL("/stories"))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result storiesResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Empty(t, result.Stories)
		assert.Equal(t, 0, result.TotalCount)
	})

	t.Run("rows come back in stage, match, set order", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStoryRows(t, ts)

		resp, err := http.Get(ts.APIURL("/stories"))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result storiesResponse
		testutil.AssertJSONResponse(t, resp, &result)
		require.Len(t, result.Stories, 3)
		assert.Equal(t, 3, result.TotalCount)

		assert.Equal(t, "F", result.Stories[0].Stage)
		assert.Equal(t, "Finals", result.Stories[0].StageDisplay)
		assert.Equal(t, "QF", result.Stories[1].Stage)
		assert.Equal(t, 1, result.Stories[1].SetNumber)
		assert.Equal(t, "QF", result.Stories[2].Stage)
		assert.Equal(t, 2, result.Stories[2].SetNumber)

		assert.Equal(t, "The LCK civil war.", result.Stories[1].MatchOverview)
		assert.Equal(t, "", result.Stories[2].MatchOverview)
	})
}

func TestStoryHandler_Pages(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("list page renders grouped stages", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStoryRows(t, ts)

		resp, err := http.Get(ts.BaseURL() + "/stories")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Quarterfinals")
		assert.Contains(t, string(body), "Gen.G")
	})

	t.Run("detail page shows all sets of a match", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStoryRows(t, ts)

		resp, err := http.Get(ts.BaseURL() + "/stories/QF/1")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "The LCK civil war.")
		assert.Contains(t, string(body), "Set 1")
		assert.Contains(t, string(body), "Set 2")
	})

	t.Run("unknown match number is an HTML 404", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStoryRows(t, ts)

		resp, err := http.Get(ts.BaseURL() + "/stories/QF/42")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})

	t.Run("invalid stage code is an HTML 404", func(t *testing.T) {
		resp, err := http.Get(ts.BaseURL() + "/stories/GROUPS/1")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("non-numeric match number is an HTML 404", func(t *testing.T) {
		resp, err := http.Get(ts.BaseURL() + "/stories/QF/first")
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}
