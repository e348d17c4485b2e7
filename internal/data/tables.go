package data

import "path/filepath"

// Tables bundles every static table the handlers consult.
type Tables struct {
	Quests        *QuestTable
	DailyQuests   *DailyQuestTable
	SpecialEvents *SpecialEventTable
	Dresses       *DressTable
}

// LoadAll loads every table from its well-known file under dir.
func LoadAll(dir string) (*Tables, error) {
	quests, err := LoadQuestTable(filepath.Join(dir, "quest_list.yaml"))
	if err != nil {
		return nil, err
	}
	daily, err := LoadDailyQuestTable(filepath.Join(dir, "daily_quest_list.yaml"))
	if err != nil {
		return nil, err
	}
	events, err := LoadSpecialEventTable(filepath.Join(dir, "special_event_list.yaml"))
	if err != nil {
		return nil, err
	}
	dresses, err := LoadDressTable(filepath.Join(dir, "npc_dress_list.yaml"))
	if err != nil {
		return nil, err
	}
	return &Tables{
		Quests:        quests,
		DailyQuests:   daily,
		SpecialEvents: events,
		Dresses:       dresses,
	}, nil
}
