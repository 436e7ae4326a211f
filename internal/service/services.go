package service

import (
	"github.com/haeun/worlds-banpick-archive/internal/config"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Timeline *TimelineService
	Stats    *StatsService
	Story    *StoryService
	Archive  *ArchiveService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, repos.Session, cfg),
		Timeline: NewTimelineService(repos.Match, repos.PickBan),
		Stats:    NewStatsService(repos.ChampionStat),
		Story:    NewStoryService(repos.MatchStory, repos.Match),
		Archive:  NewArchiveService(repos),
	}
}
