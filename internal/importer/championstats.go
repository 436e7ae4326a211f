// Package importer loads the pre-championship champion statistics CSV into
// the database. The file is an external deliverable from the analysis
// spreadsheet; its column headers are Korean and part of the contract.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/haeun/worlds-banpick-archive/internal/domain"
	"github.com/haeun/worlds-banpick-archive/internal/repository/postgres"
)

// Expected CSV header columns, in order.
const (
	headerChampion      = "챔피언"
	headerTotalPicks    = "총 픽 횟수 (Total)"
	headerBlueFirstPick = "블루 1픽 (Blue 1st)"
	headerRedFirstPick  = "레드 1픽 (Red 1st)"
	headerTierScore     = "Tier Score (가치 점수)"
	headerSideIndex     = "Side Index (진영 선호도)"
)

var expectedHeader = []string{
	headerChampion,
	headerTotalPicks,
	headerBlueFirstPick,
	headerRedFirstPick,
	headerTierScore,
	headerSideIndex,
}

// sideLabels maps the Korean band annotation in the Side Index column to the
// stored preference code. Unannotated or unrecognized values fall back to
// BALANCED.
var sideLabels = map[string]domain.SidePreference{
	"블루 필수": domain.SideBlueMust,
	"블루 선호": domain.SideBluePref,
	"약한 블루": domain.SideBlueWeak,
	"균형":    domain.SideBalanced,
	"약한 레드": domain.SideRedWeak,
	"레드 선호": domain.SideRedPref,
	"레드 필수": domain.SideRedMust,
}

type statRow struct {
	ChampionName   string
	TotalPicks     int
	BlueFirstPick  int
	RedFirstPick   int
	TierScore      float64
	SideIndex      float64
	SidePreference domain.SidePreference
}

// StatsLoader imports the champion stats CSV. A load is all-or-nothing: any
// malformed row or write failure rolls the whole import back.
type StatsLoader struct {
	db *gorm.DB
}

func NewStatsLoader(db *gorm.DB) *StatsLoader {
	return &StatsLoader{db: db}
}

// Load parses and imports the CSV, creating champions that do not exist yet
// and upserting their stat rows. It returns the number of rows imported.
func (l *StatsLoader) Load(ctx context.Context, r io.Reader) (int, error) {
	rows, err := parseStatsCSV(r)
	if err != nil {
		return 0, err
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		champions := postgres.NewChampionRepository(tx)
		stats := postgres.NewChampionStatRepository(tx)

		for _, row := range rows {
			champion, err := champions.GetOrCreateByName(ctx, row.ChampionName)
			if err != nil {
				return fmt.Errorf("champion %q: %w", row.ChampionName, err)
			}

			stat := &domain.ChampionStat{
				ChampionID:     champion.ID,
				TotalPicks:     row.TotalPicks,
				BlueFirstPick:  row.BlueFirstPick,
				RedFirstPick:   row.RedFirstPick,
				TierScore:      row.TierScore,
				SideIndex:      row.SideIndex,
				SidePreference: row.SidePreference,
			}
			if err := stats.Upsert(ctx, stat); err != nil {
				return fmt.Errorf("stat for %q: %w", row.ChampionName, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(rows), nil
}

func parseStatsCSV(r io.Reader) ([]statRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []statRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkHeader(header []string) error {
	if len(header) < len(expectedHeader) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, want := range expectedHeader {
		if strings.TrimSpace(header[i]) != want {
			return fmt.Errorf("header column %d is %q, want %q", i+1, strings.TrimSpace(header[i]), want)
		}
	}
	return nil
}

func parseRecord(record []string) (statRow, error) {
	if len(record) < len(expectedHeader) {
		return statRow{}, fmt.Errorf("row has %d columns, want %d", len(record), len(expectedHeader))
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return statRow{}, fmt.Errorf("empty champion name")
	}

	totalPicks, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return statRow{}, fmt.Errorf("total picks: %w", err)
	}
	blueFirst, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return statRow{}, fmt.Errorf("blue first pick: %w", err)
	}
	redFirst, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return statRow{}, fmt.Errorf("red first pick: %w", err)
	}
	tierScore, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return statRow{}, fmt.Errorf("tier score: %w", err)
	}
	sideIndex, sidePref, err := parseSideIndex(record[5])
	if err != nil {
		return statRow{}, fmt.Errorf("side index: %w", err)
	}

	return statRow{
		ChampionName:   name,
		TotalPicks:     totalPicks,
		BlueFirstPick:  blueFirst,
		RedFirstPick:   redFirst,
		TierScore:      tierScore,
		SideIndex:      sideIndex,
		SidePreference: sidePref,
	}, nil
}

// parseSideIndex splits a value like "0.67 (블루 선호)" into the numeric
// index and its band label. A bare number is accepted and banded BALANCED.
func parseSideIndex(value string) (float64, domain.SidePreference, error) {
	value = strings.TrimSpace(value)
	label := domain.SideBalanced

	if open := strings.Index(value, "("); open >= 0 {
		end := strings.LastIndex(value, ")")
		if end > open {
			annotation := strings.TrimSpace(value[open+1 : end])
			if pref, ok := sideLabels[annotation]; ok {
				label = pref
			}
		}
		value = strings.TrimSpace(value[:open])
	}

	index, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, "", err
	}
	return index, label, nil
}
