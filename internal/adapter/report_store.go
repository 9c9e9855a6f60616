package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "verify.dev/pkg/verify/internal/model"
)

const (
	reportFilePrefix = "run-"
	reportFileSuffix = ".yaml"
)

// ReportStore persists run reports in a directory.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) error
	LoadReports(dir m.Path) ([]m.RunReport, error)
}

type yamlReportStore struct{}

// NewReportStore returns a ReportStore that writes one YAML file per run.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

// SaveReport writes report to dir/run-<id>.yaml, creating dir when needed.
func (s *yamlReportStore) SaveReport(dir m.Path, report m.RunReport) error {
	if report.ID == "" {
		return errors.New("report has no id")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", report.ID, err)
	}

	path := filepath.Join(string(dir), reportFilePrefix+report.ID+reportFileSuffix)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	slog.Debug("Saved report", "path", path)

	return nil
}

// LoadReports reads every report in dir ordered by start time. A missing
// directory yields no reports.
func (s *yamlReportStore) LoadReports(dir m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []m.RunReport{}, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	reports := make([]m.RunReport, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, reportFilePrefix) || !strings.HasSuffix(name, reportFileSuffix) {
			continue
		}

		path := filepath.Join(string(dir), name)

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.RunReport
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("parse report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].StartedAt.Equal(reports[j].StartedAt) {
			return reports[i].ID < reports[j].ID
		}

		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}
