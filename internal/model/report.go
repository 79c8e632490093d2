package model

import "time"

// Path represents a file system path.
type Path string

// LineSetFile is a named line set loaded from disk or a preset.
type LineSetFile struct {
	Name   string
	Origin Path
	Lines  LineSet
	Budget *int
}

// Report is a persisted analysis of one line set.
type Report struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Origin    Path           `yaml:"origin,omitempty"`
	Lines     LineSet        `yaml:"lines"`
	Budget    *int           `yaml:"budget,omitempty"`
	Result    AnalysisResult `yaml:"result"`
	CreatedAt time.Time      `yaml:"created_at"`
}
