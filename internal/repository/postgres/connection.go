package postgres

import (
	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the archive schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.Champion{},
		&domain.League{},
		&domain.Team{},
		&domain.Player{},
		&domain.Match{},
		&domain.PickBan{},
		&domain.PickBanContext{},
		&domain.ChampionStat{},
		&domain.MatchStory{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Champion:     NewChampionRepository(db),
		League:       NewLeagueRepository(db),
		Team:         NewTeamRepository(db),
		Player:       NewPlayerRepository(db),
		Match:        NewMatchRepository(db),
		PickBan:      NewPickBanRepository(db),
		ChampionStat: NewChampionStatRepository(db),
		MatchStory:   NewMatchStoryRepository(db),
	}
}
