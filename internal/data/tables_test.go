package data

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadQuestTable(t *testing.T) {
	t.Run("loads entries in file order", func(t *testing.T) {
		path := writeTable(t, t.TempDir(), "quest_list.yaml", `
quests:
  - tid: 1000
    member0: 5
    member1: 1
  - tid: 1001
    member2: 7
`)
		table, err := LoadQuestTable(path)
		require.NoError(t, err)
		require.Equal(t, 2, table.Count())

		quests := table.Quests()
		assert.Equal(t, uint16(1000), quests[0].TID)
		assert.Equal(t, uint32(5), quests[0].Member0)
		assert.Equal(t, uint16(1001), quests[1].TID)
		assert.Equal(t, uint32(7), quests[1].Member2)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		path := writeTable(t, t.TempDir(), "quest_list.yaml", "quests:\n  - tid: 1\n")
		table, err := LoadQuestTable(path)
		require.NoError(t, err)

		table.Quests()[0].TID = 99
		assert.Equal(t, uint16(1), table.Quests()[0].TID)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadQuestTable(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTable(t, t.TempDir(), "quest_list.yaml", "quests: {broken\n")
		_, err := LoadQuestTable(path)
		assert.Error(t, err)
	})
}

func TestLoadDailyQuestTable(t *testing.T) {
	path := writeTable(t, t.TempDir(), "daily_quest_list.yaml", `
quests:
  - tid: 5000
extras:
  - val0: 3
    val1: 60
    val2: 1
    val3: 0
`)
	table, err := LoadDailyQuestTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Count())

	extras := table.Extras()
	require.Len(t, extras, 1)
	assert.Equal(t, uint16(3), extras[0].Val0)
	assert.Equal(t, uint32(60), extras[0].Val1)
}

func TestLoadSpecialEventTable(t *testing.T) {
	path := writeTable(t, t.TempDir(), "special_event_list.yaml", `
quests:
  - tid: 7000
events:
  - unk0: 1
    unk1: 100
  - unk0: 2
    unk1: 200
`)
	table, err := LoadSpecialEventTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())
	assert.Len(t, table.Quests(), 1)
	assert.Equal(t, uint32(200), table.Events()[1].Unk1)
}

func TestLoadDressTable(t *testing.T) {
	t.Run("loads items", func(t *testing.T) {
		path := writeTable(t, t.TempDir(), "npc_dress_list.yaml", `
items:
  - uid: 1
    tid: 30008
    count: 1
`)
		table, err := LoadDressTable(path)
		require.NoError(t, err)
		require.Equal(t, 1, table.Count())
		assert.Equal(t, uint32(30008), table.Items()[0].TID)
	})

	t.Run("oversized catalogue is truncated", func(t *testing.T) {
		var b []byte
		b = append(b, "items:\n"...)
		for i := 0; i < maxDressItems+5; i++ {
			b = append(b, fmt.Sprintf("  - uid: %d\n    tid: %d\n", i+1, 30000+i)...)
		}
		path := writeTable(t, t.TempDir(), "npc_dress_list.yaml", string(b))

		table, err := LoadDressTable(path)
		require.NoError(t, err)
		assert.Equal(t, maxDressItems, table.Count())
	})
}

func TestLoadAll(t *testing.T) {
	t.Run("bundles every table", func(t *testing.T) {
		dir := t.TempDir()
		writeTable(t, dir, "quest_list.yaml", "quests:\n  - tid: 1\n")
		writeTable(t, dir, "daily_quest_list.yaml", "quests:\n  - tid: 2\n")
		writeTable(t, dir, "special_event_list.yaml", "quests: []\nevents: []\n")
		writeTable(t, dir, "npc_dress_list.yaml", "items: []\n")

		tables, err := LoadAll(dir)
		require.NoError(t, err)
		assert.Equal(t, 1, tables.Quests.Count())
		assert.Equal(t, 1, tables.DailyQuests.Count())
		assert.Zero(t, tables.SpecialEvents.Count())
		assert.Zero(t, tables.Dresses.Count())
	})

	t.Run("any missing file fails the load", func(t *testing.T) {
		dir := t.TempDir()
		writeTable(t, dir, "quest_list.yaml", "quests: []\n")

		_, err := LoadAll(dir)
		assert.Error(t, err)
	})
}
