package packet

import "fmt"

// Length-prefixed sequences: a u8 or u16 little-endian element count
// followed by that many elements. Encoding always recomputes the count
// from the slice length, so count and content can never disagree.

// ReadList8 decodes a u8-counted sequence of sub-records into dst.
func ReadList8[T any, PT interface {
	*T
	Decoder
}](r *Reader, dst *[]T) {
	n := int(r.ReadC())
	if r.Err() != nil {
		return
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		PT(&out[i]).Decode(r)
		if r.Err() != nil {
			return
		}
	}
	*dst = out
}

// ReadList16 decodes a u16-counted sequence of sub-records into dst.
func ReadList16[T any, PT interface {
	*T
	Decoder
}](r *Reader, dst *[]T) {
	n := int(r.ReadH())
	if r.Err() != nil {
		return
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		PT(&out[i]).Decode(r)
		if r.Err() != nil {
			return
		}
	}
	*dst = out
}

// WriteList8 encodes items with a u8 count prefix.
func WriteList8[T any, PT interface {
	*T
	Encoder
}](w *Writer, items []T) {
	if len(items) > 0xff {
		w.setErr(fmt.Errorf("sequence of %d elements exceeds u8 count", len(items)))
		return
	}
	w.WriteC(byte(len(items)))
	for i := range items {
		PT(&items[i]).Encode(w)
	}
}

// WriteList16 encodes items with a u16 count prefix.
func WriteList16[T any, PT interface {
	*T
	Encoder
}](w *Writer, items []T) {
	if len(items) > 0xffff {
		w.setErr(fmt.Errorf("sequence of %d elements exceeds u16 count", len(items)))
		return
	}
	w.WriteH(uint16(len(items)))
	for i := range items {
		PT(&items[i]).Encode(w)
	}
}

// ReadDWList8 decodes a u8-counted sequence of uint32 scalars.
func ReadDWList8(r *Reader) []uint32 {
	n := int(r.ReadC())
	if r.Err() != nil {
		return nil
	}
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = r.ReadDU()
		if r.Err() != nil {
			return nil
		}
	}
	return out
}

// WriteDWList8 encodes uint32 scalars with a u8 count prefix.
func WriteDWList8(w *Writer, vals []uint32) {
	if len(vals) > 0xff {
		w.setErr(fmt.Errorf("sequence of %d elements exceeds u8 count", len(vals)))
		return
	}
	w.WriteC(byte(len(vals)))
	for _, v := range vals {
		w.WriteDU(v)
	}
}
