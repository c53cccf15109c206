// Package catalog reads the static event catalog from YAML.
package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"vibescore/internal/domain"
	"vibescore/internal/geo"
	"vibescore/pkg/e"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// namespace for ids derived from event names when the file omits them
var namespace = uuid.MustParse("0b7d2f56-6a3c-4e8e-9f0c-5e1a7c9d2b40")

type file struct {
	Events []entry `yaml:"events"`
}

type entry struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Location    string            `yaml:"location"`
	Category    string            `yaml:"category"`
	Date        string            `yaml:"date"`
	Time        string            `yaml:"time"`
	Status      string            `yaml:"status"`
	Coordinates domain.Coordinate `yaml:"coordinates"`
	RadiusM     float64           `yaml:"radius_m"`
}

func Load(path string) ([]domain.Event, error) {
	const op = "catalog.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	events, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}
	return events, nil
}

func Parse(r io.Reader) ([]domain.Event, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, e.Wrap("decode yaml", err)
	}

	events := make([]domain.Event, 0, len(doc.Events))
	seen := make(map[uuid.UUID]string, len(doc.Events))
	for i, en := range doc.Events {
		ev, err := en.toEvent()
		if err != nil {
			return nil, fmt.Errorf("event #%d (%q): %w", i+1, en.Name, err)
		}
		if prev, dup := seen[ev.ID]; dup {
			return nil, fmt.Errorf("event #%d (%q): id %s already used by %q: %w", i+1, en.Name, ev.ID, prev, e.ErrConflict)
		}
		seen[ev.ID] = ev.Name
		events = append(events, ev)
	}
	return events, nil
}

func (en entry) toEvent() (domain.Event, error) {
	name := strings.TrimSpace(en.Name)
	if name == "" {
		return domain.Event{}, fmt.Errorf("name is empty: %w", e.ErrInvalidInput)
	}
	if en.RadiusM <= 0 {
		return domain.Event{}, fmt.Errorf("radius_m must be > 0: %w", e.ErrInvalidInput)
	}
	if !geo.ValidCoordinate(en.Coordinates) {
		return domain.Event{}, e.ErrInvalidCoordinates
	}

	status := domain.EventStatus(en.Status)
	if status == "" {
		status = domain.EventUpcoming
	}
	if !status.Valid() {
		return domain.Event{}, fmt.Errorf("status %q: %w", en.Status, e.ErrInvalidInput)
	}

	id := uuid.NewSHA1(namespace, []byte(name))
	if en.ID != "" {
		parsed, err := uuid.Parse(en.ID)
		if err != nil {
			return domain.Event{}, fmt.Errorf("id %q: %w", en.ID, e.ErrInvalidInput)
		}
		id = parsed
	}

	return domain.Event{
		ID:          id,
		Name:        name,
		Location:    en.Location,
		Category:    en.Category,
		Date:        en.Date,
		Time:        en.Time,
		Coordinates: en.Coordinates,
		RadiusM:     en.RadiusM,
		Status:      status,
	}, nil
}
