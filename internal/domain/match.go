package domain

import (
	"gorm.io/datatypes"
)

// Stage identifies where in the tournament a match was played.
type Stage string

const (
	StageSwissR1      Stage = "SW_R1"
	StageSwissR2      Stage = "SW_R2"
	StageSwissR3      Stage = "SW_R3"
	StageSwissR4      Stage = "SW_R4"
	StageSwissR5      Stage = "SW_R5"
	StageQuarterfinal Stage = "QF"
	StageSemifinal    Stage = "SF"
	StageFinal        Stage = "F"
)

var stageDisplayNames = map[Stage]string{
	StageSwissR1:      "Swiss Round 1",
	StageSwissR2:      "Swiss Round 2",
	StageSwissR3:      "Swiss Round 3",
	StageSwissR4:      "Swiss Round 4",
	StageSwissR5:      "Swiss Round 5",
	StageQuarterfinal: "Quarterfinals",
	StageSemifinal:    "Semifinals",
	StageFinal:        "Finals",
}

// Display returns the human-readable name for the stage. Unknown stages
// fall back to the raw code.
func (s Stage) Display() string {
	if name, ok := stageDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

func (s Stage) Valid() bool {
	_, ok := stageDisplayNames[s]
	return ok
}

// Match is a single best-of series entry in the archive. Team references are
// protected: a team cannot be deleted while matches still point at it.
type Match struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	MatchDate datatypes.Date `json:"matchDate" gorm:"not null"`
	Stage     Stage          `json:"stage" gorm:"type:varchar(10);not null;index"`
	TeamAID   uint           `json:"teamAId" gorm:"not null"`
	TeamBID   uint           `json:"teamBId" gorm:"not null"`
	WinnerID  uint           `json:"winnerId" gorm:"not null"`

	// Relations
	TeamA    *Team     `json:"teamA,omitempty" gorm:"foreignKey:TeamAID;constraint:OnDelete:RESTRICT"`
	TeamB    *Team     `json:"teamB,omitempty" gorm:"foreignKey:TeamBID;constraint:OnDelete:RESTRICT"`
	Winner   *Team     `json:"winner,omitempty" gorm:"foreignKey:WinnerID;constraint:OnDelete:RESTRICT"`
	PickBans []PickBan `json:"pickBans,omitempty" gorm:"foreignKey:MatchID"`
}

func (Match) TableName() string {
	return "matches"
}

// ActionType distinguishes bans from picks in the draft.
type ActionType string

const (
	ActionTypeBan  ActionType = "BAN"
	ActionTypePick ActionType = "PICK"
)

// PickBan is one draft action inside a match, 20 per full draft. Order is
// the 1..20 sequence position, unique within the match.
type PickBan struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	MatchID    uint       `json:"matchId" gorm:"not null;uniqueIndex:idx_pickban_match_order"`
	TeamID     uint       `json:"teamId" gorm:"not null"`
	ChampionID uint       `json:"championId" gorm:"not null"`
	Type       ActionType `json:"type" gorm:"type:varchar(4);not null"`
	Order      int        `json:"order" gorm:"column:draft_order;not null;uniqueIndex:idx_pickban_match_order"`
	PlayerID   *uint      `json:"playerId"` // set only for picks

	// Relations
	Match    *Match          `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Team     *Team           `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	Champion *Champion       `json:"champion,omitempty" gorm:"foreignKey:ChampionID;constraint:OnDelete:RESTRICT"`
	Player   *Player         `json:"player,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:RESTRICT"`
	Context  *PickBanContext `json:"context,omitempty" gorm:"foreignKey:PickBanID"`
}

func (PickBan) TableName() string {
	return "pick_bans"
}

// StoryLabel is the narrative category attached to a draft action.
type StoryLabel string

const (
	LabelMetaBan     StoryLabel = "META_BAN"
	LabelCounterBan  StoryLabel = "COUNTER_BAN"
	LabelSniperBan   StoryLabel = "SNIPER_BAN"
	LabelMetaPick    StoryLabel = "META_PICK"
	LabelCounterPick StoryLabel = "COUNTER_PICK"
	LabelComboPick   StoryLabel = "COMBO_PICK"
	LabelWildPick    StoryLabel = "WILD_PICK"
	LabelRomancePick StoryLabel = "ROMANCE_PICK"
	LabelNone        StoryLabel = "NONE"
)

var storyLabelDisplayNames = map[StoryLabel]string{
	LabelMetaBan:     "Meta Ban",
	LabelCounterBan:  "Counter Ban",
	LabelSniperBan:   "Sniper Ban",
	LabelMetaPick:    "Meta Pick",
	LabelCounterPick: "Counter Pick",
	LabelComboPick:   "Combo Pick",
	LabelWildPick:    "Wild Pick",
	LabelRomancePick: "Romance Pick",
	LabelNone:        "No Classification",
}

func (l StoryLabel) Valid() bool {
	_, ok := storyLabelDisplayNames[l]
	return ok
}

func (l StoryLabel) Display() string {
	if name, ok := storyLabelDisplayNames[l]; ok {
		return name
	}
	return storyLabelDisplayNames[LabelNone]
}

// PickBanContext is the optional 1:1 narrative annotation for a PickBan.
// It is always human-authored, never derived from the draft data.
type PickBanContext struct {
	PickBanID uint       `json:"pickBanId" gorm:"primaryKey"`
	Label     StoryLabel `json:"label" gorm:"type:varchar(20);not null;default:'NONE'"`
	Keyword   string     `json:"keyword" gorm:"size:100"`
	Comment   string     `json:"comment" gorm:"type:text"`
	Intensity int        `json:"intensity"` // conventionally -5..5

	PickBan *PickBan `json:"-" gorm:"foreignKey:PickBanID;constraint:OnDelete:CASCADE"`
}

func (PickBanContext) TableName() string {
	return "pick_ban_contexts"
}
