package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aligo/server/internal/net/packet"
)

func TestSnapshot(t *testing.T) {
	t.Run("full variant carries coordinates", func(t *testing.T) {
		in := Snapshot{
			Type: SnapshotFull,
			Full: FullSpatial{
				Member0: 12,
				Member1: 0xAABBCCDD,
				Member2: 3,
				X:       10.5,
				Y:       -2.25,
				Z:       300,
			},
		}
		copy(in.Full.Member3[:], "abcdef")

		w := packet.NewWriter()
		in.Encode(w)
		require.NoError(t, w.Err())

		r := packet.NewReader(w.Bytes())
		var out Snapshot
		out.Decode(r)
		require.NoError(t, r.Err())
		assert.Equal(t, SnapshotFull, out.Type)
		assert.Equal(t, in.Full, out.Full)
	})

	t.Run("partial variant omits coordinates", func(t *testing.T) {
		in := Snapshot{
			Type:    SnapshotPartial,
			Partial: PartialSpatial{Member0: 7, Member1: 42},
		}

		w := packet.NewWriter()
		in.Encode(w)
		require.NoError(t, w.Err())
		// Tag byte plus the fixed partial layout, no float tail.
		assert.Len(t, w.Bytes(), 1+2+4+2+12+16)

		r := packet.NewReader(w.Bytes())
		var out Snapshot
		out.Decode(r)
		require.NoError(t, r.Err())
		assert.Equal(t, SnapshotPartial, out.Type)
		assert.Equal(t, in.Partial, out.Partial)
	})

	t.Run("unknown tag poisons the reader", func(t *testing.T) {
		r := packet.NewReader([]byte{0x09, 0, 0, 0})
		var out Snapshot
		out.Decode(r)
		assert.Error(t, r.Err())
	})

	t.Run("unknown type poisons the writer", func(t *testing.T) {
		in := Snapshot{Type: 0x09}
		w := packet.NewWriter()
		in.Encode(w)
		assert.Error(t, w.Err())
		assert.Empty(t, w.Bytes())
	})
}
