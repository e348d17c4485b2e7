package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aligo/server/internal/net/packet"
)

func TestSearchStallion(t *testing.T) {
	t.Run("round-trip with filter lists", func(t *testing.T) {
		in := SearchStallion{
			Unk0: 0x11223344,
			Unk1: 1,
			Unk5: 9,
			Unk9: [3][]uint32{
				{20001, 20002, 20003},
				{},
				{30010},
			},
			Unk10: 2,
		}

		w := packet.NewWriter()
		in.Encode(w)
		require.NoError(t, w.Err())

		r := packet.NewReader(w.Bytes())
		var out SearchStallion
		out.Decode(r)
		require.NoError(t, r.Err())
		assert.Zero(t, r.Remaining())

		assert.Equal(t, in.Unk0, out.Unk0)
		assert.Equal(t, in.Unk10, out.Unk10)
		assert.Equal(t, []uint32{20001, 20002, 20003}, out.Unk9[0])
		assert.Empty(t, out.Unk9[1])
		assert.Equal(t, []uint32{30010}, out.Unk9[2])
	})

	t.Run("truncated filter list poisons the reader", func(t *testing.T) {
		w := packet.NewWriter()
		w.WriteDU(0)
		for i := 0; i < 8; i++ {
			w.WriteC(0)
		}
		w.WriteC(2) // claims two ids, none follow

		r := packet.NewReader(w.Bytes())
		var out SearchStallion
		out.Decode(r)
		assert.Error(t, r.Err())
	})
}
