package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSource reads venues and events from JSON or YAML files. Each file may hold
// a bare list or an object with a "venues"/"events" key.
type FileSource struct {
	VenuesPath string
	EventsPath string
}

func NewFileSource(venuesPath, eventsPath string) *FileSource {
	return &FileSource{VenuesPath: venuesPath, EventsPath: eventsPath}
}

// Load reads both files independently: a failure in one leaves that half of
// the catalog empty and is reported in the joined error.
func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	var errs []error

	var venues []Venue
	if s.VenuesPath != "" {
		if err := decodeListFile(s.VenuesPath, "venues", &venues); err != nil {
			errs = append(errs, fmt.Errorf("loading venues: %w", err))
			venues = nil
		}
	}

	var events []Event
	if s.EventsPath != "" {
		if err := decodeListFile(s.EventsPath, "events", &events); err != nil {
			errs = append(errs, fmt.Errorf("loading events: %w", err))
			events = nil
		}
	}

	if err := ctx.Err(); err != nil {
		return Empty(), err
	}
	return New(venues, events), errors.Join(errs...)
}

func decodeListFile[T any](path, key string, out *[]T) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]

	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == key {
				return root.Content[i+1].Decode(out)
			}
		}
		return fmt.Errorf("%s: no %q list", path, key)
	}
	return root.Decode(out)
}
