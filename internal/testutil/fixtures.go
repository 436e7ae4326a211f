package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
)

// AdminBuilder creates test admin users with a builder pattern
type AdminBuilder struct {
	displayName string
	password    string
}

// NewAdminBuilder creates a new AdminBuilder with default values
func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		displayName: fmt.Sprintf("admin_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
	}
}

// WithDisplayName sets the display name
func (b *AdminBuilder) WithDisplayName(name string) *AdminBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *AdminBuilder) WithPassword(password string) *AdminBuilder {
	b.password = password
	return b
}

// Build creates the admin in the database and returns the user with the raw
// password
func (b *AdminBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndLogin creates an admin directly in the database and logs in via
// the API, returning the user and access token
func (b *AdminBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"displayName": user.DisplayName,
		"password":    password,
	})
	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}

	var auth AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return user, auth.AccessToken
}

// SeedLeague creates a league
func SeedLeague(t *testing.T, db *gorm.DB, name string) *domain.League {
	t.Helper()

	league := &domain.League{Name: name}
	if err := db.Create(league).Error; err != nil {
		t.Fatalf("failed to create league %s: %v", name, err)
	}
	return league
}

// SeedTeam creates a team, optionally in a league
func SeedTeam(t *testing.T, db *gorm.DB, name string, leagueID *uint) *domain.Team {
	t.Helper()

	team := &domain.Team{Name: name, LeagueID: leagueID}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team %s: %v", name, err)
	}
	return team
}

// SeedPlayer creates a player on a team
func SeedPlayer(t *testing.T, db *gorm.DB, name string, teamID uint) *domain.Player {
	t.Helper()

	player := &domain.Player{Name: name, TeamID: teamID}
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create player %s: %v", name, err)
	}
	return player
}

// SeedChampion creates a champion
func SeedChampion(t *testing.T, db *gorm.DB, name string) *domain.Champion {
	t.Helper()

	champion := &domain.Champion{Name: name}
	if err := db.Create(champion).Error; err != nil {
		t.Fatalf("failed to create champion %s: %v", name, err)
	}
	return champion
}

// SeedMatch creates a match between two teams
func SeedMatch(t *testing.T, db *gorm.DB, stage domain.Stage, date time.Time, teamAID, teamBID, winnerID uint) *domain.Match {
	t.Helper()

	match := &domain.Match{
		MatchDate: datatypes.Date(date),
		Stage:     stage,
		TeamAID:   teamAID,
		TeamBID:   teamBID,
		WinnerID:  winnerID,
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to create match: %v", err)
	}
	return match
}

// SeedPickBan creates one draft action
func SeedPickBan(t *testing.T, db *gorm.DB, matchID, teamID, championID uint, actionType domain.ActionType, order int, playerID *uint) *domain.PickBan {
	t.Helper()

	pickBan := &domain.PickBan{
		MatchID:    matchID,
		TeamID:     teamID,
		ChampionID: championID,
		Type:       actionType,
		Order:      order,
		PlayerID:   playerID,
	}
	if err := db.Create(pickBan).Error; err != nil {
		t.Fatalf("failed to create pick/ban order %d: %v", order, err)
	}
	return pickBan
}

// SeedContext attaches a narrative annotation to a pick/ban
func SeedContext(t *testing.T, db *gorm.DB, pickBanID uint, label domain.StoryLabel, keyword, comment string, intensity int) *domain.PickBanContext {
	t.Helper()

	ctx := &domain.PickBanContext{
		PickBanID: pickBanID,
		Label:     label,
		Keyword:   keyword,
		Comment:   comment,
		Intensity: intensity,
	}
	if err := db.Create(ctx).Error; err != nil {
		t.Fatalf("failed to create pick/ban context: %v", err)
	}
	return ctx
}

// SeedChampionStat creates a stat row for a champion
func SeedChampionStat(t *testing.T, db *gorm.DB, championID uint, tierScore, sideIndex float64, totalPicks, blueFirst, redFirst int, pref domain.SidePreference) *domain.ChampionStat {
	t.Helper()

	stat := &domain.ChampionStat{
		ChampionID:     championID,
		TotalPicks:     totalPicks,
		BlueFirstPick:  blueFirst,
		RedFirstPick:   redFirst,
		TierScore:      tierScore,
		SideIndex:      sideIndex,
		SidePreference: pref,
	}
	if err := db.Create(stat).Error; err != nil {
		t.Fatalf("failed to create champion stat: %v", err)
	}
	return stat
}

// SeedStory creates one set's story row
func SeedStory(t *testing.T, db *gorm.DB, story *domain.MatchStory) *domain.MatchStory {
	t.Helper()

	if err := db.Create(story).Error; err != nil {
		t.Fatalf("failed to create story %s/%d set %d: %v", story.Stage, story.MatchNumber, story.SetNumber, err)
	}
	return story
}

// SeedFullDraft seeds a complete 20-action draft for a match, alternating
// bans and picks in the standard phase order. Champions are created on the
// fly. Returns the pick/bans in draft order.
func SeedFullDraft(t *testing.T, db *gorm.DB, matchID, blueTeamID, redTeamID uint) []*domain.PickBan {
	t.Helper()

	// Standard draft: 6 bans, 6 picks, 4 bans, 4 picks.
	sides := []uint{
		blueTeamID, redTeamID, blueTeamID, redTeamID, blueTeamID, redTeamID, // bans 1-6
		blueTeamID, redTeamID, redTeamID, blueTeamID, blueTeamID, redTeamID, // picks 1-6
		redTeamID, blueTeamID, redTeamID, blueTeamID, // bans 7-10
		redTeamID, blueTeamID, blueTeamID, redTeamID, // picks 7-10
	}
	types := make([]domain.ActionType, 20)
	for i := range types {
		if i < 6 || (i >= 12 && i < 16) {
			types[i] = domain.ActionTypeBan
		} else {
			types[i] = domain.ActionTypePick
		}
	}

	pickBans := make([]*domain.PickBan, 0, 20)
	for i := 0; i < 20; i++ {
		champion := SeedChampion(t, db, fmt.Sprintf("Champion%02d_%s", i+1, uuid.New().String()[:6]))
		pickBans = append(pickBans, SeedPickBan(t, db, matchID, sides[i], champion.ID, types[i], i+1, nil))
	}
	return pickBans
}
