package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aligo/server/internal/command"
)

func testParents() (*command.Horse, *command.Horse) {
	father := &command.Horse{
		UID: 1, TID: 20001, Grade: 5,
		Parts: command.HorseParts{SkinID: 1, ManeID: 2, TailID: 3, FaceID: 4},
		Stats: command.HorseStats{Agility: 100, Control: 100, Speed: 100, Strength: 100, Spirit: 100},
	}
	mother := &command.Horse{
		UID: 2, TID: 20002, Grade: 4,
		Parts: command.HorseParts{SkinID: 5, ManeID: 6, TailID: 7, FaceID: 8},
		Stats: command.HorseStats{Agility: 50, Control: 50, Speed: 50, Strength: 50, Spirit: 50},
	}
	return father, mother
}

func newEngine(t *testing.T, dir string) *Engine {
	t.Helper()
	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func writeScript(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "breeding.lua"), []byte(body), 0o644))
}

func TestEngineLoad(t *testing.T) {
	t.Run("missing scripts directory is tolerated", func(t *testing.T) {
		newEngine(t, filepath.Join(t.TempDir(), "nope"))
	})

	t.Run("broken script fails the load", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, "this is not lua")
		_, err := NewEngine(dir, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestRollFoal(t *testing.T) {
	t.Run("script controls the roll", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, `
function roll_foal(parents)
  return {
    tid = parents.mother.tid,
    parts = { skin_id = 9, mane_id = 8, tail_id = 7, face_id = 6 },
    appearance = { scale = 1, leg_length = 2, leg_volume = 3, body_length = 4, body_volume = 5 },
    stats = { agility = 75, control = 75, speed = 75, strength = 75, spirit = 75 },
  }
end
`)
		e := newEngine(t, dir)
		father, mother := testParents()
		roll := e.RollFoal(father, mother)

		assert.Equal(t, uint32(20002), roll.TID)
		assert.Equal(t, byte(9), roll.Parts.SkinID)
		assert.Equal(t, byte(5), roll.Appearance.BodyVolume)
		assert.Equal(t, uint32(75), roll.Stats.Speed)
	})

	t.Run("missing function falls back", func(t *testing.T) {
		e := newEngine(t, t.TempDir())
		father, mother := testParents()
		roll := e.RollFoal(father, mother)

		assert.Equal(t, father.TID, roll.TID)
		assert.Contains(t, []byte{father.Parts.SkinID, mother.Parts.SkinID}, roll.Parts.SkinID)
		// Average of 100 and 50 with at most two points of jitter.
		assert.InDelta(t, 75, float64(roll.Stats.Agility), 2)
	})

	t.Run("script error falls back", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, `
function roll_foal(parents)
  error("tables are on strike")
end
`)
		e := newEngine(t, dir)
		father, mother := testParents()
		roll := e.RollFoal(father, mother)
		assert.Equal(t, father.TID, roll.TID)
	})

	t.Run("non-table result falls back", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, "function roll_foal(parents) return 42 end")
		e := newEngine(t, dir)
		father, mother := testParents()
		roll := e.RollFoal(father, mother)
		assert.Equal(t, father.TID, roll.TID)
	})
}
