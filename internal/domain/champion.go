package domain

// Champion is a draftable champion. Only champions that actually appear in
// the archive need to exist.
type Champion struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

func (Champion) TableName() string {
	return "champions"
}

// SidePreference is the side-bias band a champion was assigned at ingestion
// time. It is derived from SideIndex once, when stats are loaded, and never
// recomputed on read.
type SidePreference string

const (
	SideBlueMust SidePreference = "BLUE_MUST"
	SideBluePref SidePreference = "BLUE_PREF"
	SideBlueWeak SidePreference = "BLUE_WEAK"
	SideBalanced SidePreference = "BALANCED"
	SideRedWeak  SidePreference = "RED_WEAK"
	SideRedPref  SidePreference = "RED_PREF"
	SideRedMust  SidePreference = "RED_MUST"
)

// AllSidePreferences lists the bands in blue-to-red order, as shown in
// filter dropdowns.
var AllSidePreferences = []SidePreference{
	SideBlueMust,
	SideBluePref,
	SideBlueWeak,
	SideBalanced,
	SideRedWeak,
	SideRedPref,
	SideRedMust,
}

var sidePreferenceDisplayNames = map[SidePreference]string{
	SideBlueMust: "Blue Must",
	SideBluePref: "Blue Preferred",
	SideBlueWeak: "Blue Lean",
	SideBalanced: "Balanced",
	SideRedWeak:  "Red Lean",
	SideRedPref:  "Red Preferred",
	SideRedMust:  "Red Must",
}

func (p SidePreference) Display() string {
	if name, ok := sidePreferenceDisplayNames[p]; ok {
		return name
	}
	return sidePreferenceDisplayNames[SideBalanced]
}

func (p SidePreference) Valid() bool {
	_, ok := sidePreferenceDisplayNames[p]
	return ok
}

// ChampionStat holds the pre-championship analysis row for one champion,
// loaded from the stats CSV. TierScore is conventionally 0-100, SideIndex
// -1.0 (red) .. +1.0 (blue).
type ChampionStat struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	ChampionID     uint           `json:"championId" gorm:"uniqueIndex;not null"`
	TotalPicks     int            `json:"totalPicks" gorm:"not null;default:0"`
	BlueFirstPick  int            `json:"blueFirstPick" gorm:"not null;default:0"`
	RedFirstPick   int            `json:"redFirstPick" gorm:"not null;default:0"`
	TierScore      float64        `json:"tierScore" gorm:"not null;default:0"`
	SideIndex      float64        `json:"sideIndex" gorm:"not null;default:0"`
	SidePreference SidePreference `json:"sidePreference" gorm:"type:varchar(10);not null;default:'BALANCED'"`

	Champion *Champion `json:"champion,omitempty" gorm:"foreignKey:ChampionID;constraint:OnDelete:CASCADE"`
}

func (ChampionStat) TableName() string {
	return "champion_stats"
}
