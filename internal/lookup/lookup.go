// Package lookup holds the fixed presentation tables used by page rendering
// and the static exporter: team logo filenames, per-match hashtag keywords,
// and champion portrait filenames. All tables are immutable after process
// start and safe for concurrent reads.
package lookup

import (
	"strings"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
)

// teamLogos maps both full team names and short tags to logo filenames under
// static/images/teams/.
var teamLogos = map[string]string{
	"Gen.G":                "geng.svg",
	"GEN":                  "geng.svg",
	"Hanwha Life Esports":  "hle.svg",
	"HLE":                  "hle.svg",
	"kt Rolster":           "kt.svg",
	"KT":                   "kt.svg",
	"CTBC Flying Oyster":   "cfo.webp",
	"CFO":                  "cfo.webp",
	"G2 Esports":           "g2.svg",
	"G2":                   "g2.svg",
	"Top Esports":          "tes.webp",
	"TES":                  "tes.webp",
	"Anyone's Legend":      "al.svg",
	"AL":                   "al.svg",
	"T1":                   "t1.svg",
}

// TeamLogo returns the logo filename for a team, or "" when the team has no
// logo on file.
func TeamLogo(teamName string) string {
	return teamLogos[teamName]
}

type matchKey struct {
	Stage       domain.StoryStage
	MatchNumber int
}

// matchKeywords carries the hand-picked hashtags shown on story pages.
var matchKeywords = map[matchKey][]string{
	{domain.StoryStageQuarterfinal, 1}: {"LCKCivilWar", "DeFactoFinal", "WorldsCurse", "PeanutLastDance", "OneHourBloodbath"},
	{domain.StoryStageQuarterfinal, 2}: {"DarkHorseDuel", "KTSweep", "LMSChallenge", "SemisBound"},
	{domain.StoryStageQuarterfinal, 3}: {"EastVsWest", "WestsLastHope", "TESHomeGround", "ThreeStraightLosses"},
	{domain.StoryStageQuarterfinal, 4}: {"LPLReaper", "ComebackKings", "Bo5UnbeatenRun", "BestOfTheQuarters"},
	{domain.StoryStageSemifinal, 1}:    {"MajorUpset", "CinderellaRun", "DRXRedux", "UnderdogRevolt", "KTMiracle"},
	{domain.StoryStageSemifinal, 2}:    {"LPLLastHope", "TwelveStraightWins", "LCKCivilWarFinal", "FinalsBound"},
	{domain.StoryStageFinal, 1}:        {"ThreePeat", "DynastyVsUnderdog", "CinderellaStory", "ForTheLegend"},
}

// MatchKeywords returns the hashtags for a (stage, match number) pair. An
// unknown pair yields an empty list, never an error.
func MatchKeywords(stage domain.StoryStage, matchNumber int) []string {
	return matchKeywords[matchKey{Stage: stage, MatchNumber: matchNumber}]
}

// championFilenames covers names whose portrait filename cannot be derived
// by plain normalization.
var championFilenames = map[string]string{
	"jarvan iv":    "jarvaniv",
	"jarvan":       "jarvaniv",
	"xin zhao":     "xinzhao",
	"kai'sa":       "kaisa",
	"k'sante":      "ksante",
	"rek'sai":      "reksai",
	"cho'gath":     "chogath",
	"kha'zix":      "khazix",
	"vel'koz":      "velkoz",
	"kog'maw":      "kogmaw",
	"dr. mundo":    "drmundo",
	"miss fortune": "missfortune",
	"lee sin":      "leesin",
	"twisted fate": "twistedfate",
	"master yi":    "masteryi",
	"aurelion sol": "aurelionsol",
	"tahm kench":   "tahmkench",
}

// ChampionFilename converts a champion display name to its portrait
// filename: known special cases first, then lowercase with spaces,
// apostrophes and dots stripped.
func ChampionFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	if file, ok := championFilenames[lower]; ok {
		return file
	}
	replacer := strings.NewReplacer(" ", "", "'", "", ".", "")
	return replacer.Replace(lower)
}
