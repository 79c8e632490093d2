// Package adapter contains the infrastructure adapters of the watchman CLI:
// line-set input, report persistence, configuration, metrics, file watching
// and plotting.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/watchman/internal/model"
)

// LineSetAdapter turns user input into line sets. Every malformed input
// error wraps model.ErrInvalidInput.
type LineSetAdapter interface {
	// ParsePairs parses "slope,intercept" arguments.
	ParsePairs(args []string) (m.LineSet, error)
	// Load reads a YAML line-set file.
	Load(path m.Path) (m.LineSetFile, error)
}

// lineSetYAML is the on-disk shape of a line-set file. Pointers let the
// validator tell a missing coefficient from a zero one.
type lineSetYAML struct {
	Name   string     `yaml:"name"`
	Budget *int       `yaml:"budget"`
	Lines  []lineYAML `yaml:"lines" validate:"required,min=1,dive"`
}

type lineYAML struct {
	Slope     *float64 `yaml:"slope" validate:"required"`
	Intercept *float64 `yaml:"intercept" validate:"required"`
}

type localLineSetAdapter struct {
	validate *validator.Validate
}

// NewLocalLineSetAdapter constructs a LineSetAdapter reading from the local filesystem.
func NewLocalLineSetAdapter() LineSetAdapter {
	return &localLineSetAdapter{validate: validator.New()}
}

func (a *localLineSetAdapter) ParsePairs(args []string) (m.LineSet, error) {
	lines := make(m.LineSet, 0, len(args))

	for i, arg := range args {
		line, err := parsePair(arg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		lines = append(lines, line)
	}

	if err := lines.Validate(); err != nil {
		return nil, err
	}

	return lines, nil
}

func parsePair(arg string) (m.Line, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return m.Line{}, fmt.Errorf("%w: %q is not in slope,intercept form", m.ErrInvalidInput, arg)
	}

	slope, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return m.Line{}, fmt.Errorf("%w: slope %q is not a number", m.ErrInvalidInput, parts[0])
	}

	intercept, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return m.Line{}, fmt.Errorf("%w: intercept %q is not a number", m.ErrInvalidInput, parts[1])
	}

	return m.Line{Slope: slope, Intercept: intercept}, nil
}

func (a *localLineSetAdapter) Load(path m.Path) (m.LineSetFile, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.LineSetFile{}, fmt.Errorf("read line set %s: %w", path, err)
	}

	var raw lineSetYAML

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&raw); err != nil {
		return m.LineSetFile{}, fmt.Errorf("%w: decode %s: %v", m.ErrInvalidInput, path, err)
	}

	if err := a.validate.Struct(&raw); err != nil {
		return m.LineSetFile{}, fmt.Errorf("%w: %s: %s", m.ErrInvalidInput, path, formatValidationError(err))
	}

	lines := make(m.LineSet, len(raw.Lines))
	for i, l := range raw.Lines {
		lines[i] = m.Line{Slope: *l.Slope, Intercept: *l.Intercept}
	}

	if err := lines.Validate(); err != nil {
		return m.LineSetFile{}, fmt.Errorf("%s: %w", path, err)
	}

	name := raw.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))
	}

	return m.LineSetFile{Name: name, Origin: path, Lines: lines, Budget: raw.Budget}, nil
}

// formatValidationError flattens validator errors into "Field: rule" pairs.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}

	return strings.Join(msgs, "; ")
}
