package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	t.Run("reads little-endian scalars in order", func(t *testing.T) {
		w := NewWriter()
		w.WriteC(0xAB)
		w.WriteH(0x1234)
		w.WriteDU(0xDEADBEEF)
		w.WriteQ(0x1122334455667788)
		w.WriteF(1.5)
		require.NoError(t, w.Err())

		r := NewReader(w.Bytes())
		assert.Equal(t, byte(0xAB), r.ReadC())
		assert.Equal(t, uint16(0x1234), r.ReadH())
		assert.Equal(t, uint32(0xDEADBEEF), r.ReadDU())
		assert.Equal(t, uint64(0x1122334455667788), r.ReadQ())
		assert.Equal(t, float32(1.5), r.ReadF())
		assert.NoError(t, r.Err())
		assert.Equal(t, 0, r.Remaining())
	})

	t.Run("wire layout is little-endian", func(t *testing.T) {
		w := NewWriter()
		w.WriteH(0x0102)
		assert.Equal(t, []byte{0x02, 0x01}, w.Bytes())
	})

	t.Run("signed read round-trips negative values", func(t *testing.T) {
		w := NewWriter()
		w.WriteD(-7)
		r := NewReader(w.Bytes())
		assert.Equal(t, int32(-7), r.ReadD())
	})
}

func TestReaderStickyError(t *testing.T) {
	t.Run("short payload poisons the reader", func(t *testing.T) {
		r := NewReader([]byte{0x01})
		_ = r.ReadDU()
		require.Error(t, r.Err())
	})

	t.Run("reads after the first failure return zero values", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x02})
		_ = r.ReadDU()
		require.Error(t, r.Err())
		assert.Equal(t, byte(0), r.ReadC())
		assert.Equal(t, uint16(0), r.ReadH())
		assert.Equal(t, "", r.ReadS())
		assert.Nil(t, r.ReadRest())
	})

	t.Run("first error is kept, not overwritten", func(t *testing.T) {
		r := NewReader(nil)
		_ = r.ReadQ()
		first := r.Err()
		_ = r.ReadC()
		assert.Same(t, first, r.Err())
	})
}

func TestReaderStrings(t *testing.T) {
	t.Run("null-terminated ascii round-trip", func(t *testing.T) {
		w := NewWriter()
		w.WriteS("RanchMaster")
		w.WriteC(0x7F)
		r := NewReader(w.Bytes())
		assert.Equal(t, "RanchMaster", r.ReadS())
		assert.Equal(t, byte(0x7F), r.ReadC())
		assert.NoError(t, r.Err())
	})

	t.Run("empty string is a bare terminator", func(t *testing.T) {
		w := NewWriter()
		w.WriteS("")
		assert.Equal(t, []byte{0x00}, w.Bytes())
		r := NewReader(w.Bytes())
		assert.Equal(t, "", r.ReadS())
		assert.NoError(t, r.Err())
	})

	t.Run("korean text survives the CP949 round-trip", func(t *testing.T) {
		const name = "백마탄왕자"
		w := NewWriter()
		w.WriteS(name)
		require.NoError(t, w.Err())
		// CP949 packs hangul as two bytes per syllable
		assert.Equal(t, len(name)/3*2+1, len(w.Bytes()))

		r := NewReader(w.Bytes())
		assert.Equal(t, name, r.ReadS())
		assert.NoError(t, r.Err())
	})

	t.Run("missing terminator is a decode error", func(t *testing.T) {
		r := NewReader([]byte("no terminator"))
		assert.Equal(t, "", r.ReadS())
		assert.Error(t, r.Err())
	})

	t.Run("interior NUL is an encode error", func(t *testing.T) {
		w := NewWriter()
		w.WriteS("bad\x00string")
		assert.Error(t, w.Err())
	})
}

func TestReaderBytes(t *testing.T) {
	t.Run("ReadBytes copies out of the payload", func(t *testing.T) {
		payload := []byte{1, 2, 3, 4}
		r := NewReader(payload)
		got := r.ReadBytes(2)
		assert.Equal(t, []byte{1, 2}, got)
		got[0] = 99
		assert.Equal(t, byte(1), payload[0])
	})

	t.Run("ReadRest drains everything left", func(t *testing.T) {
		r := NewReader([]byte{1, 2, 3, 4})
		_ = r.ReadH()
		assert.Equal(t, []byte{3, 4}, r.ReadRest())
		assert.Equal(t, 0, r.Remaining())
	})
}
