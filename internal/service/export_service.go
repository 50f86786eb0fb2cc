package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"camping-fun/server/internal/model"
	"camping-fun/server/internal/repository"
)

// ── export errors ──

var (
	ErrExportGenerateFail = errors.New("failed to generate spreadsheet")
)

// Sheet names of the roster workbook.
const (
	RosterSheet  = "Roster"
	SummarySheet = "Activities"
)

// ExportService spreadsheet exports.
//
// The workbook has two sheets:
//   - Roster: one row per signup ordered by hour, then activity
//   - Activities: every activity with its signup count, including empty ones
type ExportService interface {
	// ExportSignups returns the workbook and a suggested file name.
	ExportSignups(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

var rosterHeader = []interface{}{"Hour", "Slot", "Activity", "Difficulty", "Camper", "Age"}

func (s *exportService) ExportSignups(ctx context.Context) (*bytes.Buffer, string, error) {
	signups, err := s.repo.Signup.ListDetailed(ctx)
	if err != nil {
		s.logger.Error("list signups for export failed", zap.Error(err))
		return nil, "", err
	}
	activities, err := s.repo.Activity.List(ctx)
	if err != nil {
		s.logger.Error("list activities for export failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeRoster(f, signups); err != nil {
		s.logger.Error("write roster sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	if err := writeActivitySummary(f, activities, signups); err != nil {
		s.logger.Error("write summary sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("encode workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("camp-signups-%s.xlsx", s.now().Format("2006-01-02"))
	return buf, filename, nil
}

func writeRoster(f *excelize.File, signups []model.Signup) error {
	// NewFile starts with a single "Sheet1"
	if err := f.SetSheetName("Sheet1", RosterSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(RosterSheet, "A1", &rosterHeader); err != nil {
		return err
	}

	for i := range signups {
		su := &signups[i]
		row := []interface{}{su.Time, hourSlot(su.Time), "", "", "", ""}
		if su.Activity != nil {
			row[2], row[3] = su.Activity.Name, su.Activity.Difficulty
		}
		if su.Camper != nil {
			row[4], row[5] = su.Camper.Name, su.Camper.Age
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(RosterSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(RosterSheet, "B", "E", 16)
}

func writeActivitySummary(f *excelize.File, activities []model.Activity, signups []model.Signup) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	counts := make(map[uint]int, len(activities))
	for _, su := range signups {
		counts[su.ActivityID]++
	}

	sorted := make([]model.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		if counts[sorted[i].ID] != counts[sorted[j].ID] {
			return counts[sorted[i].ID] > counts[sorted[j].ID]
		}
		return sorted[i].Name < sorted[j].Name
	})

	header := []interface{}{"Activity", "Difficulty", "Signups"}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}
	for i, a := range sorted {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{a.Name, a.Difficulty, counts[a.ID]}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// hourSlot renders hour 9 as "09:00-10:00".
func hourSlot(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, (hour+1)%24)
}
