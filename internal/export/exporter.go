// Package export batch-renders the story detail pages and the champion
// stats page into a relocatable file tree, so the archive can be hosted
// without a live backend. Page building is pure data shaping; templating is
// a stateless function of the built page data; only Run touches the
// database and the filesystem.
package export

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/lookup"
	"github.com/haeun/worlds-banpick-archive/internal/repository"
	"github.com/haeun/worlds-banpick-archive/internal/service"
)

//go:embed templates
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// KeyChampion is a champion reference on a story page.
type KeyChampion struct {
	Name string
	File string
}

// StorySet is one set's rendered block.
type StorySet struct {
	SetNumber       int
	Winner          string
	WinnerIsTeamA   bool
	KeyChampions    []KeyChampion
	BanpickAnalysis string
	GameNarrative   string
}

// StoryPage is everything one static story document needs.
type StoryPage struct {
	Stage         domain.StoryStage
	StageDisplay  string
	MatchNumber   int
	TeamA         string
	TeamB         string
	TeamALogo     string
	TeamBLogo     string
	FinalScore    string
	Keywords      []string
	MatchOverview string
	Sets          []StorySet
}

// BuildStoryPage shapes one story group into its page data. Pure.
func BuildStoryPage(stage domain.StoryStage, group *service.StoryGroup) StoryPage {
	page := StoryPage{
		Stage:         stage,
		StageDisplay:  stage.Display(),
		MatchNumber:   group.MatchNumber,
		TeamA:         group.TeamA,
		TeamB:         group.TeamB,
		TeamALogo:     lookup.TeamLogo(group.TeamA),
		TeamBLogo:     lookup.TeamLogo(group.TeamB),
		FinalScore:    group.FinalScore,
		Keywords:      lookup.MatchKeywords(stage, group.MatchNumber),
		MatchOverview: group.MatchOverview,
		Sets:          make([]StorySet, 0, len(group.Sets)),
	}

	for _, story := range group.Sets {
		set := StorySet{
			SetNumber:       story.SetNumber,
			Winner:          story.Winner,
			WinnerIsTeamA:   story.Winner == group.TeamA,
			BanpickAnalysis: story.BanpickAnalysis,
			GameNarrative:   story.GameNarrative,
		}
		for _, name := range story.KeyChampionList() {
			set.KeyChampions = append(set.KeyChampions, KeyChampion{
				Name: name,
				File: lookup.ChampionFilename(name),
			})
		}
		page.Sets = append(page.Sets, set)
	}

	return page
}

// RenderStoryPage produces the standalone HTML document for a story page.
func RenderStoryPage(page StoryPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "story.html", page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ChampionRow is one table row of the static stats page, rank already
// assigned.
type ChampionRow struct {
	Rank          int
	Name          string
	File          string
	TierScore     float64
	TotalPicks    int
	BlueFirstPick int
	RedFirstPick  int
	SideIndex     float64
	SideCode      domain.SidePreference
	SideLabel     string
}

// ChampionsPage carries the full table plus the summary aggregates.
type ChampionsPage struct {
	Rows           []ChampionRow
	TotalChampions int
	MaxTierScore   float64
	TotalPicks     int
	BlueFirstPicks int
}

// BuildChampionsPage shapes stat rows, already ordered by tier score
// descending, into the static page data. Pure.
func BuildChampionsPage(stats []*domain.ChampionStat) ChampionsPage {
	page := ChampionsPage{
		Rows:           make([]ChampionRow, 0, len(stats)),
		TotalChampions: len(stats),
	}

	for i, stat := range stats {
		name := ""
		if stat.Champion != nil {
			name = stat.Champion.Name
		}
		page.Rows = append(page.Rows, ChampionRow{
			Rank:          i + 1,
			Name:          name,
			File:          lookup.ChampionFilename(name),
			TierScore:     stat.TierScore,
			TotalPicks:    stat.TotalPicks,
			BlueFirstPick: stat.BlueFirstPick,
			RedFirstPick:  stat.RedFirstPick,
			SideIndex:     stat.SideIndex,
			SideCode:      stat.SidePreference,
			SideLabel:     stat.SidePreference.Display(),
		})
		page.TotalPicks += stat.TotalPicks
		page.BlueFirstPicks += stat.BlueFirstPick
		if i == 0 {
			page.MaxTierScore = stat.TierScore
		}
	}

	return page
}

// RenderChampionsPage produces the standalone HTML stats document.
func RenderChampionsPage(page ChampionsPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "champions.html", page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Exporter regenerates the static site under OutDir. Reruns overwrite in
// place; given unchanged data the output is byte-identical.
type Exporter struct {
	storyRepo repository.MatchStoryRepository
	statRepo  repository.ChampionStatRepository
	OutDir    string
}

func NewExporter(storyRepo repository.MatchStoryRepository, statRepo repository.ChampionStatRepository, outDir string) *Exporter {
	return &Exporter{
		storyRepo: storyRepo,
		statRepo:  statRepo,
		OutDir:    outDir,
	}
}

// Run exports every story page and the champion stats page, returning the
// number of documents written.
func (e *Exporter) Run(ctx context.Context) (int, error) {
	written := 0

	for _, stage := range domain.AllStoryStages {
		stories, err := e.storyRepo.GetByStage(ctx, stage)
		if err != nil {
			return written, fmt.Errorf("load %s stories: %w", stage, err)
		}
		for _, group := range service.GroupStories(stories) {
			html, err := RenderStoryPage(BuildStoryPage(stage, group))
			if err != nil {
				return written, fmt.Errorf("render %s match %d: %w", stage, group.MatchNumber, err)
			}
			path := e.storyPath(stage, group.MatchNumber)
			if err := writeFile(path, html); err != nil {
				return written, err
			}
			written++
		}
	}

	stats, err := e.statRepo.List(ctx, repository.StatQuery{
		Sort:       repository.StatSortTierScore,
		Descending: true,
	})
	if err != nil {
		return written, fmt.Errorf("load champion stats: %w", err)
	}
	html, err := RenderChampionsPage(BuildChampionsPage(stats))
	if err != nil {
		return written, fmt.Errorf("render champion stats: %w", err)
	}
	if err := writeFile(e.championsPath(), html); err != nil {
		return written, err
	}
	written++

	return written, nil
}

func (e *Exporter) storyPath(stage domain.StoryStage, matchNumber int) string {
	return filepath.Join(e.OutDir, "stories", string(stage), fmt.Sprintf("%d", matchNumber), "index.html")
}

func (e *Exporter) championsPath() string {
	return filepath.Join(e.OutDir, "champions", "index.html")
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
