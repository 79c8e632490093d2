package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/watchman/internal/model"
)

const (
	reportExt     = ".yaml"
	indexFileName = "_index.yaml"
)

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.Report) error
	LoadReports(dir m.Path) ([]m.Report, error)
	RegenerateIndex(dir m.Path) error
	CleanReports(dir m.Path) error
}

// LocalReportStore keeps one YAML file per analysed line set. The file name
// is a hash of the lines and budget, so re-analysing the same input replaces
// its previous report.
type LocalReportStore struct {
	logger *slog.Logger
}

// indexEntry is the summary written to _index.yaml.
type indexEntry struct {
	TotalReports   int            `yaml:"total_reports"`
	Routes         int            `yaml:"routes"`
	NoRoute        int            `yaml:"no_route"`
	NoShape        int            `yaml:"no_shape"`
	BudgetExceeded int            `yaml:"budget_exceeded"`
	Reports        []indexReport  `yaml:"reports"`
	ByKind         map[string]int `yaml:"by_kind"`
}

type indexReport struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Verdict string `yaml:"verdict"`
}

// NewReportStore constructs a ReportStore writing to the local filesystem.
func NewReportStore(logger *slog.Logger) ReportStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &LocalReportStore{logger: logger}
}

// SaveReports writes every report under dir, assigning IDs to reports that lack one.
func (rs *LocalReportStore) SaveReports(dir m.Path, reports []m.Report) error {
	if dir == "" {
		return errors.New("reports directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if report.ID == "" {
			report.ID = uuid.NewString()
		}

		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report %s: %w", report.Name, err)
		}

		path := filepath.Join(string(dir), rs.computeReportHash(report)+reportExt)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", path, err)
		}

		rs.logger.Debug("report saved", slog.String("name", report.Name), slog.String("path", path))
	}

	return nil
}

// LoadReports reads every report under dir, sorted by creation time. A
// missing directory yields no reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		if !isReportFile(entry) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			rs.logger.Warn("skipping unreadable report", slog.String("path", path), slog.Any("error", err))
			continue
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}

// RegenerateIndex rewrites _index.yaml from the reports currently in dir.
func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	reports, err := rs.LoadReports(dir)
	if err != nil {
		return err
	}

	idx := indexEntry{ByKind: make(map[string]int)}

	for _, r := range reports {
		idx.TotalReports++
		idx.ByKind[string(r.Result.Classification.Kind())]++

		switch r.Result.Outcome {
		case m.OutcomeRoute:
			idx.Routes++
		case m.OutcomeNoRoute:
			idx.NoRoute++
		case m.OutcomeNoShape:
			idx.NoShape++
		case m.OutcomeBudgetExceeded:
			idx.BudgetExceeded++
		}

		idx.Reports = append(idx.Reports, indexReport{
			ID:      r.ID,
			Name:    r.Name,
			File:    rs.computeReportHash(r) + reportExt,
			Verdict: r.Result.Verdict,
		})
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	return os.WriteFile(filepath.Join(string(dir), indexFileName), data, 0o600)
}

// CleanReports removes every report file and the index from dir.
func (rs *LocalReportStore) CleanReports(dir m.Path) error {
	if dir == "" {
		return errors.New("reports directory is empty")
	}

	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("read reports dir: %w", err)
	}

	for _, entry := range entries {
		if !isReportFile(entry) && entry.Name() != indexFileName {
			continue
		}

		if err := os.Remove(filepath.Join(string(dir), entry.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// computeReportHash fingerprints the analysed input: lines in order plus budget.
func (rs *LocalReportStore) computeReportHash(r m.Report) string {
	h := sha256.New()

	for _, l := range r.Lines {
		_, _ = fmt.Fprintf(h, "%v,%v;", l.Slope, l.Intercept)
	}

	if r.Budget != nil {
		_, _ = fmt.Fprintf(h, "b=%d", *r.Budget)
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}

func isReportFile(entry fs.DirEntry) bool {
	name := entry.Name()

	return !entry.IsDir() && strings.HasSuffix(name, reportExt) && name != indexFileName
}
