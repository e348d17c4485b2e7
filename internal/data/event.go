package data

import (
	"fmt"
	"os"

	"github.com/aligo/server/internal/command"
	"gopkg.in/yaml.v3"
)

type specialEventFile struct {
	Quests []questYAMLEntry `yaml:"quests"`
	Events []struct {
		Unk0 uint16 `yaml:"unk0"`
		Unk1 uint32 `yaml:"unk1"`
	} `yaml:"events"`
}

// SpecialEventTable holds the seasonal event quests and banners.
type SpecialEventTable struct {
	quests []command.Quest
	events []command.SpecialEvent
}

func (t *SpecialEventTable) Quests() []command.Quest {
	out := make([]command.Quest, len(t.quests))
	copy(out, t.quests)
	return out
}

func (t *SpecialEventTable) Events() []command.SpecialEvent {
	out := make([]command.SpecialEvent, len(t.events))
	copy(out, t.events)
	return out
}

func (t *SpecialEventTable) Count() int {
	return len(t.events)
}

// LoadSpecialEventTable loads the event table from a YAML file.
func LoadSpecialEventTable(path string) (*SpecialEventTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read special event list: %w", err)
	}
	var f specialEventFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse special event list: %w", err)
	}

	t := &SpecialEventTable{}
	for _, e := range f.Quests {
		t.quests = append(t.quests, e.toQuest())
	}
	for _, e := range f.Events {
		t.events = append(t.events, command.SpecialEvent{Unk0: e.Unk0, Unk1: e.Unk1})
	}
	return t, nil
}
