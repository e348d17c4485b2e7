package packet

import "fmt"

// Discriminator-tagged union: a one-byte tag read first selects which
// of a fixed set of variant layouts follows. An unrecognized tag is a
// decode error, never a default variant.

// ReadUnion reads the tag and dispatches to the matching variant
// decoder. On an unknown tag the Reader is poisoned and the zero tag is
// returned.
func ReadUnion(r *Reader, variants map[byte]func(*Reader)) byte {
	tag := r.ReadC()
	if r.Err() != nil {
		return 0
	}
	decode, ok := variants[tag]
	if !ok {
		r.setErr(fmt.Errorf("unknown union tag 0x%02x", tag))
		return 0
	}
	decode(r)
	return tag
}

// WriteUnion writes the tag followed by the variant body.
func WriteUnion(w *Writer, tag byte, body Encoder) {
	w.WriteC(tag)
	body.Encode(w)
}
