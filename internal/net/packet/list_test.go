package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A uint16
	B uint32
}

func (p *pair) Decode(r *Reader) {
	p.A = r.ReadH()
	p.B = r.ReadDU()
}

func (p *pair) Encode(w *Writer) {
	w.WriteH(p.A)
	w.WriteDU(p.B)
}

func TestList8(t *testing.T) {
	t.Run("count prefix comes from the slice length", func(t *testing.T) {
		w := NewWriter()
		WriteList8(w, []pair{{A: 1, B: 2}, {A: 3, B: 4}})
		require.NoError(t, w.Err())
		assert.Equal(t, byte(2), w.Bytes()[0])

		r := NewReader(w.Bytes())
		var got []pair
		ReadList8(r, &got)
		require.NoError(t, r.Err())
		assert.Equal(t, []pair{{A: 1, B: 2}, {A: 3, B: 4}}, got)
	})

	t.Run("empty list is a single zero byte", func(t *testing.T) {
		w := NewWriter()
		WriteList8(w, []pair(nil))
		assert.Equal(t, []byte{0x00}, w.Bytes())

		r := NewReader(w.Bytes())
		var got []pair
		ReadList8(r, &got)
		assert.NoError(t, r.Err())
		assert.Empty(t, got)
	})

	t.Run("oversized slice is an encode error", func(t *testing.T) {
		w := NewWriter()
		WriteList8(w, make([]pair, 256))
		assert.Error(t, w.Err())
	})

	t.Run("count larger than payload is a decode error", func(t *testing.T) {
		r := NewReader([]byte{0x05, 0x01, 0x00})
		var got []pair
		ReadList8(r, &got)
		assert.Error(t, r.Err())
		assert.Nil(t, got)
	})
}

func TestList16(t *testing.T) {
	t.Run("round-trip with a count above 255", func(t *testing.T) {
		items := make([]pair, 300)
		for i := range items {
			items[i] = pair{A: uint16(i), B: uint32(i * 2)}
		}
		w := NewWriter()
		WriteList16(w, items)
		require.NoError(t, w.Err())

		r := NewReader(w.Bytes())
		var got []pair
		ReadList16(r, &got)
		require.NoError(t, r.Err())
		assert.Equal(t, items, got)
	})
}

func TestDWList8(t *testing.T) {
	t.Run("scalar round-trip", func(t *testing.T) {
		vals := []uint32{7, 0xFFFFFFFF, 0}
		w := NewWriter()
		WriteDWList8(w, vals)
		require.NoError(t, w.Err())
		r := NewReader(w.Bytes())
		assert.Equal(t, vals, ReadDWList8(r))
		assert.NoError(t, r.Err())
	})

	t.Run("truncated tail is a decode error", func(t *testing.T) {
		r := NewReader([]byte{0x02, 0x01, 0x00, 0x00, 0x00})
		assert.Nil(t, ReadDWList8(r))
		assert.Error(t, r.Err())
	})
}

func TestMasked(t *testing.T) {
	type opts struct {
		a *uint16
		b *uint32
	}
	fields := func(o *opts) []OptionalField {
		return []OptionalField{
			{
				Bit:     1 << 0,
				Present: func() bool { return o.a != nil },
				Decode:  func(r *Reader) { v := r.ReadH(); o.a = &v },
				Encode:  func(w *Writer) { w.WriteH(*o.a) },
			},
			{
				Bit:     1 << 3,
				Present: func() bool { return o.b != nil },
				Decode:  func(r *Reader) { v := r.ReadDU(); o.b = &v },
				Encode:  func(w *Writer) { w.WriteDU(*o.b) },
			},
		}
	}

	t.Run("mask reflects populated groups only", func(t *testing.T) {
		b := uint32(9)
		src := opts{b: &b}
		w := NewWriter()
		WriteMasked(w, fields(&src)...)
		require.NoError(t, w.Err())

		r := NewReader(w.Bytes())
		assert.Equal(t, uint32(1<<3), r.ReadDU())

		r = NewReader(w.Bytes())
		var dst opts
		ReadMasked(r, fields(&dst)...)
		require.NoError(t, r.Err())
		assert.Nil(t, dst.a)
		require.NotNil(t, dst.b)
		assert.Equal(t, uint32(9), *dst.b)
	})

	t.Run("all groups present", func(t *testing.T) {
		a, b := uint16(3), uint32(4)
		src := opts{a: &a, b: &b}
		w := NewWriter()
		WriteMasked(w, fields(&src)...)

		r := NewReader(w.Bytes())
		var dst opts
		ReadMasked(r, fields(&dst)...)
		require.NoError(t, r.Err())
		assert.Equal(t, uint16(3), *dst.a)
		assert.Equal(t, uint32(4), *dst.b)
	})

	t.Run("unknown mask bits are ignored", func(t *testing.T) {
		w := NewWriter()
		w.WriteDU(1 << 30)
		r := NewReader(w.Bytes())
		var dst opts
		ReadMasked(r, fields(&dst)...)
		assert.NoError(t, r.Err())
		assert.Nil(t, dst.a)
		assert.Nil(t, dst.b)
	})
}

func TestUnion(t *testing.T) {
	variants := func(got *uint32) map[byte]func(*Reader) {
		return map[byte]func(*Reader){
			0: func(r *Reader) { *got = r.ReadDU() },
			1: func(r *Reader) { *got = uint32(r.ReadC()) },
		}
	}

	t.Run("tag selects the variant decoder", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x2A})
		var got uint32
		tag := ReadUnion(r, variants(&got))
		require.NoError(t, r.Err())
		assert.Equal(t, byte(1), tag)
		assert.Equal(t, uint32(0x2A), got)
	})

	t.Run("unknown tag poisons the reader", func(t *testing.T) {
		r := NewReader([]byte{0x09})
		var got uint32
		ReadUnion(r, variants(&got))
		assert.Error(t, r.Err())
	})

	t.Run("empty payload poisons the reader", func(t *testing.T) {
		r := NewReader(nil)
		var got uint32
		ReadUnion(r, variants(&got))
		assert.Error(t, r.Err())
	})
}
