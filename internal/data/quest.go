// Package data loads the static game tables from YAML files. Tables
// are read once at boot and are read-only afterwards, so handlers can
// share them without locks.
package data

import (
	"fmt"
	"os"

	"github.com/aligo/server/internal/command"
	"gopkg.in/yaml.v3"
)

type questYAMLEntry struct {
	TID     uint16 `yaml:"tid"`
	Member0 uint32 `yaml:"member0"`
	Member1 uint8  `yaml:"member1"`
	Member2 uint32 `yaml:"member2"`
	Member3 uint8  `yaml:"member3"`
	Member4 uint8  `yaml:"member4"`
}

func (e questYAMLEntry) toQuest() command.Quest {
	return command.Quest{
		TID:     e.TID,
		Member0: e.Member0,
		Member1: e.Member1,
		Member2: e.Member2,
		Member3: e.Member3,
		Member4: e.Member4,
	}
}

type questListFile struct {
	Quests []questYAMLEntry `yaml:"quests"`
}

// QuestTable holds the campaign quest catalogue.
type QuestTable struct {
	quests []command.Quest
}

// Quests returns a fresh copy of the catalogue, safe to hand to a
// response payload.
func (t *QuestTable) Quests() []command.Quest {
	out := make([]command.Quest, len(t.quests))
	copy(out, t.quests)
	return out
}

func (t *QuestTable) Count() int {
	return len(t.quests)
}

// LoadQuestTable loads the quest catalogue from a YAML file.
func LoadQuestTable(path string) (*QuestTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quest list: %w", err)
	}
	var f questListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse quest list: %w", err)
	}

	t := &QuestTable{quests: make([]command.Quest, 0, len(f.Quests))}
	for _, e := range f.Quests {
		t.quests = append(t.quests, e.toQuest())
	}
	return t, nil
}

type dailyQuestFile struct {
	Quests []questYAMLEntry `yaml:"quests"`
	Extras []struct {
		Val0 uint16 `yaml:"val0"`
		Val1 uint32 `yaml:"val1"`
		Val2 uint8  `yaml:"val2"`
		Val3 uint8  `yaml:"val3"`
	} `yaml:"extras"`
}

// DailyQuestTable holds the rotating daily quests plus the extra
// records the client expects alongside them.
type DailyQuestTable struct {
	quests []command.Quest
	extras []command.DailyQuestUnk
}

func (t *DailyQuestTable) Quests() []command.Quest {
	out := make([]command.Quest, len(t.quests))
	copy(out, t.quests)
	return out
}

func (t *DailyQuestTable) Extras() []command.DailyQuestUnk {
	out := make([]command.DailyQuestUnk, len(t.extras))
	copy(out, t.extras)
	return out
}

func (t *DailyQuestTable) Count() int {
	return len(t.quests)
}

// LoadDailyQuestTable loads the daily quest rotation from a YAML file.
func LoadDailyQuestTable(path string) (*DailyQuestTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read daily quest list: %w", err)
	}
	var f dailyQuestFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse daily quest list: %w", err)
	}

	t := &DailyQuestTable{}
	for _, e := range f.Quests {
		t.quests = append(t.quests, e.toQuest())
	}
	for _, e := range f.Extras {
		t.extras = append(t.extras, command.DailyQuestUnk{
			Val0: e.Val0,
			Val1: e.Val1,
			Val2: e.Val2,
			Val3: e.Val3,
		})
	}
	return t, nil
}
