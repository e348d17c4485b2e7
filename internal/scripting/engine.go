// Package scripting embeds a Lua VM for the tunable game formulas.
// Keeping the breeding odds in a script lets operators rebalance foal
// rolls without a rebuild.
package scripting

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/aligo/server/internal/command"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM. Handlers run on many session
// goroutines, so every call takes the VM lock.
type Engine struct {
	mu  sync.Mutex
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// FoalRoll is the outcome of one breeding attempt.
type FoalRoll struct {
	TID        uint32
	Parts      command.HorseParts
	Appearance command.HorseAppearance
	Stats      command.HorseStats
}

// RollFoal calls the Lua roll_foal function with both parents. When
// the script is absent or errors, a built-in average-and-jitter roll
// keeps breeding working.
func (e *Engine) RollFoal(father, mother *command.Horse) FoalRoll {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn := e.vm.GetGlobal("roll_foal")
	if fn == lua.LNil {
		return fallbackFoal(father, mother)
	}

	t := e.vm.NewTable()
	t.RawSetString("father", e.horseTable(father))
	t.RawSetString("mother", e.horseTable(mother))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua roll_foal error", zap.Error(err))
		return fallbackFoal(father, mother)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua roll_foal returned non-table")
		return fallbackFoal(father, mother)
	}

	roll := FoalRoll{
		TID: uint32(lua.LVAsNumber(rt.RawGetString("tid"))),
	}
	if parts, ok := rt.RawGetString("parts").(*lua.LTable); ok {
		roll.Parts = command.HorseParts{
			SkinID: byte(lua.LVAsNumber(parts.RawGetString("skin_id"))),
			ManeID: byte(lua.LVAsNumber(parts.RawGetString("mane_id"))),
			TailID: byte(lua.LVAsNumber(parts.RawGetString("tail_id"))),
			FaceID: byte(lua.LVAsNumber(parts.RawGetString("face_id"))),
		}
	}
	if app, ok := rt.RawGetString("appearance").(*lua.LTable); ok {
		roll.Appearance = command.HorseAppearance{
			Scale:      byte(lua.LVAsNumber(app.RawGetString("scale"))),
			LegLength:  byte(lua.LVAsNumber(app.RawGetString("leg_length"))),
			LegVolume:  byte(lua.LVAsNumber(app.RawGetString("leg_volume"))),
			BodyLength: byte(lua.LVAsNumber(app.RawGetString("body_length"))),
			BodyVolume: byte(lua.LVAsNumber(app.RawGetString("body_volume"))),
		}
	}
	if stats, ok := rt.RawGetString("stats").(*lua.LTable); ok {
		roll.Stats = command.HorseStats{
			Agility:  uint32(lua.LVAsNumber(stats.RawGetString("agility"))),
			Control:  uint32(lua.LVAsNumber(stats.RawGetString("control"))),
			Speed:    uint32(lua.LVAsNumber(stats.RawGetString("speed"))),
			Strength: uint32(lua.LVAsNumber(stats.RawGetString("strength"))),
			Spirit:   uint32(lua.LVAsNumber(stats.RawGetString("spirit"))),
		}
	}
	return roll
}

func (e *Engine) horseTable(h *command.Horse) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("uid", lua.LNumber(h.UID))
	t.RawSetString("tid", lua.LNumber(h.TID))
	t.RawSetString("grade", lua.LNumber(h.Grade))

	parts := e.vm.NewTable()
	parts.RawSetString("skin_id", lua.LNumber(h.Parts.SkinID))
	parts.RawSetString("mane_id", lua.LNumber(h.Parts.ManeID))
	parts.RawSetString("tail_id", lua.LNumber(h.Parts.TailID))
	parts.RawSetString("face_id", lua.LNumber(h.Parts.FaceID))
	t.RawSetString("parts", parts)

	stats := e.vm.NewTable()
	stats.RawSetString("agility", lua.LNumber(h.Stats.Agility))
	stats.RawSetString("control", lua.LNumber(h.Stats.Control))
	stats.RawSetString("speed", lua.LNumber(h.Stats.Speed))
	stats.RawSetString("strength", lua.LNumber(h.Stats.Strength))
	stats.RawSetString("spirit", lua.LNumber(h.Stats.Spirit))
	t.RawSetString("stats", stats)

	return t
}

// fallbackFoal averages the parents' stats with a small jitter and
// inherits coat parts from either side at random.
func fallbackFoal(father, mother *command.Horse) FoalRoll {
	pick := func(a, b byte) byte {
		if rand.Intn(2) == 0 {
			return a
		}
		return b
	}
	avg := func(a, b uint32) uint32 {
		v := int64(a+b)/2 + int64(rand.Intn(5)) - 2
		if v < 0 {
			v = 0
		}
		return uint32(v)
	}
	return FoalRoll{
		TID: father.TID,
		Parts: command.HorseParts{
			SkinID: pick(father.Parts.SkinID, mother.Parts.SkinID),
			ManeID: pick(father.Parts.ManeID, mother.Parts.ManeID),
			TailID: pick(father.Parts.TailID, mother.Parts.TailID),
			FaceID: pick(father.Parts.FaceID, mother.Parts.FaceID),
		},
		Appearance: command.HorseAppearance{
			Scale:      pick(father.Appearance.Scale, mother.Appearance.Scale),
			LegLength:  pick(father.Appearance.LegLength, mother.Appearance.LegLength),
			LegVolume:  pick(father.Appearance.LegVolume, mother.Appearance.LegVolume),
			BodyLength: pick(father.Appearance.BodyLength, mother.Appearance.BodyLength),
			BodyVolume: pick(father.Appearance.BodyVolume, mother.Appearance.BodyVolume),
		},
		Stats: command.HorseStats{
			Agility:  avg(father.Stats.Agility, mother.Stats.Agility),
			Control:  avg(father.Stats.Control, mother.Stats.Control),
			Speed:    avg(father.Stats.Speed, mother.Stats.Speed),
			Strength: avg(father.Stats.Strength, mother.Stats.Strength),
			Spirit:   avg(father.Stats.Spirit, mother.Stats.Spirit),
		},
	}
}

// Close releases the VM.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vm.Close()
}
