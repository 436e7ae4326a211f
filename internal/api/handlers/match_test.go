package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/testutil"
)

type matchDataResponse struct {
	MatchInfo struct {
		ID     uint   `json:"id"`
		Stage  string `json:"stage"`
		Date   string `json:"date"`
		TeamA  string `json:"team_a"`
		TeamB  string `json:"team_b"`
		Winner string `json:"winner"`
	} `json:"match_info"`
	PickBans []struct {
		Order        int     `json:"order"`
		Type         string  `json:"type"`
		Team         string  `json:"team"`
		Champion     string  `json:"champion"`
		Player       *string `json:"player"`
		StoryContext struct {
			Label     string `json:"label"`
			Keyword   string `json:"keyword"`
			Comment   string `json:"comment"`
			Intensity int    `json:"intensity"`
		} `json:"story_context"`
	} `json:"pick_bans"`
}

func TestMatchHandler_Data(t *testing.T) {
	ts := testutil.NewTestServer(t)
	db := ts.DB.DB

	t.Run("full draft with partial annotations", func(t *testing.T) {
		ts.DB.Truncate(t)

		geng := testutil.SeedTeam(t, db, "Gen.G", nil)
		t1 := testutil.SeedTeam(t, db, "T1", nil)
		match := testutil.SeedMatch(t, db, domain.StageQuarterfinal,
			time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC), geng.ID, t1.ID, geng.ID)

		pickBans := testutil.SeedFullDraft(t, db, match.ID, geng.ID, t1.ID)
		require.Len(t, pickBans, 20)

		// Annotate 3 of the 20 actions.
		testutil.SeedContext(t, db, pickBans[0].ID, domain.LabelMetaBan, "meta", "Priority ban.", 3)
		testutil.SeedContext(t, db, pickBans[6].ID, domain.LabelMetaPick, "power", "First pick power.", 4)
		testutil.SeedContext(t, db, pickBans[19].ID, domain.LabelWildPick, "surprise", "Out of nowhere.", 5)

		resp, err := http.Get(ts.APIURL(fmt.Sprintf("/match/%d/data", match.ID)))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result matchDataResponse
		testutil.AssertJSONResponse(t, resp, &result)

		assert.Equal(t, match.ID, result.MatchInfo.ID)
		assert.Equal(t, "Quarterfinals", result.MatchInfo.Stage)
		assert.Equal(t, "2025-10-25", result.MatchInfo.Date)
		assert.Equal(t, "Gen.G", result.MatchInfo.TeamA)
		assert.Equal(t, "T1", result.MatchInfo.TeamB)
		assert.Equal(t, "Gen.G", result.MatchInfo.Winner)

		require.Len(t, result.PickBans, 20)
		annotated := 0
		for i, pb := range result.PickBans {
			assert.Equal(t, i+1, pb.Order, "actions must come back in draft order")
			if pb.StoryContext.Label != "No Classification" {
				annotated++
			}
		}
		assert.Equal(t, 3, annotated)

		assert.Equal(t, "Meta Ban", result.PickBans[0].StoryContext.Label)
		assert.Equal(t, "Priority ban.", result.PickBans[0].StoryContext.Comment)
		assert.Equal(t, 3, result.PickBans[0].StoryContext.Intensity)
		assert.Equal(t, "Wild Pick", result.PickBans[19].StoryContext.Label)

		// Unannotated actions still carry a defaulted context block.
		assert.Equal(t, "No Classification", result.PickBans[1].StoryContext.Label)
		assert.Equal(t, "", result.PickBans[1].StoryContext.Keyword)
		assert.Equal(t, 0, result.PickBans[1].StoryContext.Intensity)
	})

	t.Run("picks carry the player, bans do not", func(t *testing.T) {
		ts.DB.Truncate(t)

		geng := testutil.SeedTeam(t, db, "Gen.G", nil)
		t1 := testutil.SeedTeam(t, db, "T1", nil)
		chovy := testutil.SeedPlayer(t, db, "Chovy", geng.ID)
		azir := testutil.SeedChampion(t, db, "Azir")
		ksante := testutil.SeedChampion(t, db, "K'Sante")
		match := testutil.SeedMatch(t, db, domain.StageFinal,
			time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), geng.ID, t1.ID, geng.ID)

		testutil.SeedPickBan(t, db, match.ID, geng.ID, ksante.ID, domain.ActionTypeBan, 1, nil)
		testutil.SeedPickBan(t, db, match.ID, geng.ID, azir.ID, domain.ActionTypePick, 2, &chovy.ID)

		resp, err := http.Get(ts.APIURL(fmt.Sprintf("/match/%d/data", match.ID)))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result matchDataResponse
		testutil.AssertJSONResponse(t, resp, &result)
		require.Len(t, result.PickBans, 2)

		assert.Equal(t, "BAN", result.PickBans[0].Type)
		assert.Nil(t, result.PickBans[0].Player)

		assert.Equal(t, "PICK", result.PickBans[1].Type)
		require.NotNil(t, result.PickBans[1].Player)
		assert.Equal(t, "Chovy", *result.PickBans[1].Player)
		assert.Equal(t, "Azir", result.PickBans[1].Champion)
	})

	t.Run("unknown match returns 404", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp, err := http.Get(ts.APIURL("/match/99999/data"))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "match not found")
	})

	t.Run("non-numeric id returns 404", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/match/abc/data"))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}
