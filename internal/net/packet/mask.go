package packet

// Bitmask-gated optional group: a leading u32 mask where each set bit
// gates one fixed sub-record. Sub-records follow in ascending bit order
// regardless of which bits are set; callers must pass fields sorted by
// Bit.

// OptionalField couples one mask bit with the codec callbacks for its
// sub-record.
type OptionalField struct {
	Bit     uint32
	Present func() bool
	Decode  func(*Reader)
	Encode  func(*Writer)
}

// ReadMasked reads the mask, then only the sub-records whose bits are
// set.
func ReadMasked(r *Reader, fields ...OptionalField) {
	mask := r.ReadDU()
	for _, f := range fields {
		if r.Err() != nil {
			return
		}
		if mask&f.Bit != 0 {
			f.Decode(r)
		}
	}
}

// WriteMasked computes the mask from the populated fields, writes it,
// then writes the present sub-records in field order.
func WriteMasked(w *Writer, fields ...OptionalField) {
	var mask uint32
	for _, f := range fields {
		if f.Present() {
			mask |= f.Bit
		}
	}
	w.WriteDU(mask)
	for _, f := range fields {
		if f.Present() {
			f.Encode(w)
		}
	}
}
