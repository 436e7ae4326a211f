package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/importer"
	"github.com/haeun/worlds-banpick-archive/internal/testutil"
)

const loaderHeader = "챔피언,총 픽 횟수 (Total),블루 1픽 (Blue 1st),레드 1픽 (Red 1st),Tier Score (가치 점수),Side Index (진영 선호도)\n"

func TestStatsLoader_Load(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	loader := importer.NewStatsLoader(testDB.DB)
	ctx := context.Background()

	t.Run("imports rows and creates missing champions", func(t *testing.T) {
		testDB.Truncate(t)

		csv := loaderHeader +
			"Ahri,12,4,2,87.5,0.67 (블루 선호)\n" +
			"Azir,7,2,2,65.3,0.25 (약한 블루)\n"

		imported, err := loader.Load(ctx, strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, 2, imported)

		var champion domain.Champion
		require.NoError(t, testDB.DB.Where("name = ?", "Ahri").First(&champion).Error)

		var stat domain.ChampionStat
		require.NoError(t, testDB.DB.Where("champion_id = ?", champion.ID).First(&stat).Error)
		assert.Equal(t, 12, stat.TotalPicks)
		assert.Equal(t, domain.SideBluePref, stat.SidePreference)

		var weak domain.Champion
		require.NoError(t, testDB.DB.Where("name = ?", "Azir").First(&weak).Error)

		var weakStat domain.ChampionStat
		require.NoError(t, testDB.DB.Where("champion_id = ?", weak.ID).First(&weakStat).Error)
		assert.Equal(t, domain.SideBlueWeak, weakStat.SidePreference)
	})

	t.Run("reimport updates existing stats in place", func(t *testing.T) {
		testDB.Truncate(t)

		first := loaderHeader + "Ahri,12,4,2,87.5,0.67 (블루 선호)\n"
		_, err := loader.Load(ctx, strings.NewReader(first))
		require.NoError(t, err)

		second := loaderHeader + "Ahri,15,6,2,91.0,0.70 (블루 선호)\n"
		_, err = loader.Load(ctx, strings.NewReader(second))
		require.NoError(t, err)

		var count int64
		require.NoError(t, testDB.DB.Model(&domain.ChampionStat{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "reimport must not duplicate stat rows")

		var stat domain.ChampionStat
		require.NoError(t, testDB.DB.First(&stat).Error)
		assert.Equal(t, 15, stat.TotalPicks)
		assert.InDelta(t, 91.0, stat.TierScore, 0.001)
	})

	t.Run("a malformed row aborts the whole import", func(t *testing.T) {
		testDB.Truncate(t)

		csv := loaderHeader +
			"Ahri,12,4,2,87.5,0.67 (블루 선호)\n" +
			"Azir,bad,2,2,65.3,0.0\n"

		imported, err := loader.Load(ctx, strings.NewReader(csv))
		require.Error(t, err)
		assert.Equal(t, 0, imported)

		var count int64
		require.NoError(t, testDB.DB.Model(&domain.Champion{}).Count(&count).Error)
		assert.Equal(t, int64(0), count, "no champion may be created by a failed import")
	})
}
