// Package link holds the link skill catalog and the greedy selector that
// fills free link slots.
package link

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/specsim/internal/game/stat"
)

// DefaultCatalog returns the built-in link skills at max level, in the order
// the selector breaks ties.
//
// Postcondition: Returns a fresh slice; callers may modify it.
func DefaultCatalog() []stat.Modifier {
	return []stat.Modifier{
		{Name: "Empirical Knowledge", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 9}, {ID: stat.IgnoreGuardPercent, Value: 9}}},
		{Name: "Thief's Cunning", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 18}}},
		{Name: "Pirate's Blessing", Effects: []stat.Delta{{ID: stat.MainStatPercentExempt, Value: 70}, {ID: stat.SubStatPercentExempt, Value: 70}}},
		{Name: "Phantom Instinct", Effects: []stat.Delta{{ID: stat.CritRatePercent, Value: 15}}},
		{Name: "Light Wash", Effects: []stat.Delta{{ID: stat.IgnoreGuardPercent, Value: 15}}},
		{Name: "Demon's Fury", Effects: []stat.Delta{{ID: stat.BossDmgPercent, Value: 15}}},
		{Name: "Wild Rage", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 10}}},
		{Name: "Hybrid Logic", Effects: []stat.Delta{{ID: stat.MainStatPercent, Value: 10}, {ID: stat.SubStatPercent, Value: 10}}},
		{Name: "Terms and Conditions", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 15}}},
		{Name: "Unfair Advantage", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 12}}},
		{Name: "Rhinne's Blessing", Effects: []stat.Delta{{ID: stat.IgnoreGuardPercent, Value: 10}}},
		{Name: "Judgment", Effects: []stat.Delta{{ID: stat.CritDmgPercent, Value: 4}}},
		{Name: "Nature's Friend", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 11}}},
		{Name: "Solus", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 11}}},
		{Name: "Noble Fire", Effects: []stat.Delta{{ID: stat.BossDmgPercent, Value: 10}}},
		{Name: "Bravado", Effects: []stat.Delta{{ID: stat.IgnoreGuardPercent, Value: 10}}},
		{Name: "Time to Prepare", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 8}}},
		{Name: "Tide of Battle", Effects: []stat.Delta{{ID: stat.DmgPercent, Value: 12}}},
	}
}

type catalogFile struct {
	Links []linkEntry `yaml:"links"`
}

type linkEntry struct {
	Name    string        `yaml:"name"`
	Effects []effectEntry `yaml:"effects"`
}

type effectEntry struct {
	Stat  string  `yaml:"stat"`
	Value float64 `yaml:"value"`
}

// ParseCatalog decodes a YAML link catalog. Stat names are the snake_case
// names of stat.ID.
//
// Postcondition: Returns the links in document order, or an error naming the
// first invalid entry.
func ParseCatalog(data []byte) ([]stat.Modifier, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding link catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Links))
	out := make([]stat.Modifier, 0, len(f.Links))
	for i, l := range f.Links {
		if l.Name == "" {
			return nil, fmt.Errorf("link %d: name must not be empty", i)
		}
		if seen[l.Name] {
			return nil, fmt.Errorf("link %q: duplicate name", l.Name)
		}
		seen[l.Name] = true

		effects := make([]stat.Delta, 0, len(l.Effects))
		for _, e := range l.Effects {
			id, err := stat.ParseID(e.Stat)
			if err != nil {
				return nil, fmt.Errorf("link %q: %w", l.Name, err)
			}
			effects = append(effects, stat.Delta{ID: id, Value: e.Value})
		}
		out = append(out, stat.Modifier{Name: l.Name, Effects: effects})
	}
	return out, nil
}

// LoadCatalog reads and parses the YAML link catalog at path. An empty path
// returns DefaultCatalog.
func LoadCatalog(path string) ([]stat.Modifier, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	mods, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return mods, nil
}
