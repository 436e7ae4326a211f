package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/testutil"
)

type championStatsResponse struct {
	Champions []struct {
		Name               string  `json:"name"`
		TotalPicks         int     `json:"total_picks"`
		BlueFirstPick      int     `json:"blue_first_pick"`
		RedFirstPick       int     `json:"red_first_pick"`
		TierScore          float64 `json:"tier_score"`
		SideIndex          float64 `json:"side_index"`
		SidePreference     string  `json:"side_preference"`
		SidePreferenceCode string  `json:"side_preference_code"`
	} `json:"champions"`
	TotalCount int `json:"total_count"`
}

func seedStatRows(t *testing.T, ts *testutil.TestServer) {
	t.Helper()
	db := ts.DB.DB

	azir := testutil.SeedChampion(t, db, "Azir")
	ksante := testutil.SeedChampion(t, db, "K'Sante")
	ahri := testutil.SeedChampion(t, db, "Ahri")

	testutil.SeedChampionStat(t, db, azir.ID, 91.0, 0.10, 11, 6, 3, domain.SideBlueWeak)
	testutil.SeedChampionStat(t, db, ksante.ID, 80.5, -0.60, 8, 1, 5, domain.SideRedPref)
	testutil.SeedChampionStat(t, db, ahri.ID, 70.2, 0.70, 14, 7, 1, domain.SideBluePref)
}

func getStats(t *testing.T, ts *testutil.TestServer, query string) championStatsResponse {
	t.Helper()

	resp, err := http.Get(ts.APIURL("/champions" + query))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result championStatsResponse
	testutil.AssertJSONResponse(t, resp, &result)
	return result
}

func TestChampionStatsHandler_API(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("empty database", func(t *testing.T) {
		ts.DB.Truncate(t)

		result := getStats(t, ts, "")
		assert.Empty(t, result.Champions)
		assert.Equal(t, 0, result.TotalCount)
	})

	t.Run("default ordering is tier score descending", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStatRows(t, ts)

		result := getStats(t, ts, "")
		require.Len(t, result.Champions, 3)
		assert.Equal(t, 3, result.TotalCount)
		assert.Equal(t, "Azir", result.Champions[0].Name)
		assert.Equal(t, "K'Sante", result.Champions[1].Name)
		assert.Equal(t, "Ahri", result.Champions[2].Name)

		assert.Equal(t, "Red Preferred", result.Champions[1].SidePreference)
		assert.Equal(t, "RED_PREF", result.Champions[1].SidePreferenceCode)
	})

	t.Run("sort by side index ascending", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStatRows(t, ts)

		result := getStats(t, ts, "?sort=side_index&order=asc")
		require.Len(t, result.Champions, 3)
		assert.Equal(t, "K'Sante", result.Champions[0].Name)
		assert.Equal(t, "Azir", result.Champions[1].Name)
		assert.Equal(t, "Ahri", result.Champions[2].Name)
	})

	t.Run("sort by total picks", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStatRows(t, ts)

		result := getStats(t, ts, "?sort=total_picks")
		require.Len(t, result.Champions, 3)
		assert.Equal(t, "Ahri", result.Champions[0].Name)
		assert.Equal(t, 14, result.Champions[0].TotalPicks)
	})

	t.Run("unknown sort falls back to the default", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStatRows(t, ts)

		byDefault := getStats(t, ts, "")
		byUnknown := getStats(t, ts, "?sort=nonsense")
		require.Len(t, byUnknown.Champions, 3)
		for i := range byDefault.Champions {
			assert.Equal(t, byDefault.Champions[i].Name, byUnknown.Champions[i].Name)
		}
	})

	t.Run("side filter narrows the result", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStatRows(t, ts)

		result := getStats(t, ts, "?side=RED_PREF")
		require.Len(t, result.Champions, 1)
		assert.Equal(t, "K'Sante", result.Champions[0].Name)
		assert.Equal(t, 1, result.TotalCount)
	})

	t.Run("side=all means no filter", func(t *testing.T) {
		ts.DB.Truncate(t)
		seedStatRows(t, ts)

		result := getStats(t, ts, "?side=all")
		assert.Len(t, result.Champions, 3)
	})
}

func TestChampionStatsHandler_Page(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.DB.Truncate(t)
	seedStatRows(t, ts)

	resp, err := http.Get(ts.BaseURL() + "/champions?sort=nonsense&order=weird&side=bogus")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Garbage parameters never break the page; they fall back to defaults.
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
