package domain

import (
	"strings"
	"time"
)

// StoryStage is the knockout-stage subset covered by the narrative archive.
type StoryStage string

const (
	StoryStageQuarterfinal StoryStage = "QF"
	StoryStageSemifinal    StoryStage = "SF"
	StoryStageFinal        StoryStage = "F"
)

// AllStoryStages lists the stages in tournament order.
var AllStoryStages = []StoryStage{
	StoryStageQuarterfinal,
	StoryStageSemifinal,
	StoryStageFinal,
}

var storyStageDisplayNames = map[StoryStage]string{
	StoryStageQuarterfinal: "Quarterfinals",
	StoryStageSemifinal:    "Semifinals",
	StoryStageFinal:        "Finals",
}

func (s StoryStage) Display() string {
	if name, ok := storyStageDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

func (s StoryStage) Valid() bool {
	_, ok := storyStageDisplayNames[s]
	return ok
}

// MatchStory is one set's narrative record. It is deliberately denormalized:
// team names are plain strings sourced from an external write-up, not foreign
// keys into the relational match graph. MatchOverview is by convention only
// filled in on the first set of a match.
type MatchStory struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Stage       StoryStage `json:"stage" gorm:"type:varchar(5);not null;uniqueIndex:idx_story_stage_match_set"`
	MatchNumber int        `json:"matchNumber" gorm:"not null;uniqueIndex:idx_story_stage_match_set"`
	SetNumber   int        `json:"setNumber" gorm:"not null;uniqueIndex:idx_story_stage_match_set"`

	TeamA      string `json:"teamA" gorm:"size:100;not null"`
	TeamB      string `json:"teamB" gorm:"size:100;not null"`
	Winner     string `json:"winner" gorm:"size:100;not null"`
	FinalScore string `json:"finalScore" gorm:"size:10"` // e.g. "3:1"

	MatchOverview   string `json:"matchOverview" gorm:"type:text"`
	BanpickAnalysis string `json:"banpickAnalysis" gorm:"type:text;not null"`
	GameNarrative   string `json:"gameNarrative" gorm:"type:text;not null"`

	// Comma-separated champion names, parsed on read.
	KeyChampions string `json:"keyChampions" gorm:"size:500"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (MatchStory) TableName() string {
	return "match_stories"
}

// KeyChampionList splits KeyChampions into an ordered list of names,
// dropping empty entries.
func (s *MatchStory) KeyChampionList() []string {
	if s.KeyChampions == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(s.KeyChampions, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
