package data

import (
	"fmt"
	"os"

	"github.com/aligo/server/internal/command"
	"gopkg.in/yaml.v3"
)

// The ranch NPC shows at most this many dresses; extra entries in the
// file are dropped at load time with a truncation.
const maxDressItems = 10

type dressYAMLEntry struct {
	UID   uint32 `yaml:"uid"`
	TID   uint32 `yaml:"tid"`
	Val   uint32 `yaml:"val"`
	Count uint32 `yaml:"count"`
}

type dressListFile struct {
	Items []dressYAMLEntry `yaml:"items"`
}

// DressTable holds the ranch NPC's dress catalogue.
type DressTable struct {
	items []command.Item
}

func (t *DressTable) Items() []command.Item {
	out := make([]command.Item, len(t.items))
	copy(out, t.items)
	return out
}

func (t *DressTable) Count() int {
	return len(t.items)
}

// LoadDressTable loads the NPC dress list from a YAML file.
func LoadDressTable(path string) (*DressTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dress list: %w", err)
	}
	var f dressListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse dress list: %w", err)
	}

	entries := f.Items
	if len(entries) > maxDressItems {
		entries = entries[:maxDressItems]
	}
	t := &DressTable{items: make([]command.Item, 0, len(entries))}
	for _, e := range entries {
		t.items = append(t.items, command.Item{UID: e.UID, TID: e.TID, Val: e.Val, Count: e.Count})
	}
	return t, nil
}
