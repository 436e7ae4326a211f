package domain

// League is the regional league a team competes in (LCK, LPL, ...).
type League struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

func (League) TableName() string {
	return "leagues"
}

// Team is a championship participant. The league reference is optional and
// cleared if the league is removed.
type Team struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	LeagueID *uint  `json:"leagueId"`

	League  *League  `json:"league,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:SET NULL"`
	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

// Player belongs to exactly one team and is removed with it.
type Player struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:100;not null"`
	TeamID uint   `json:"teamId" gorm:"not null;index"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

func (Player) TableName() string {
	return "players"
}
