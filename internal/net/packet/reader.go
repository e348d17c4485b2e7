package packet

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/korean"
)

// Reader reads Alicia packet fields from a descrambled payload.
// All multi-byte reads are little-endian. Errors are sticky: the first
// failed read poisons the Reader and every later read returns zero
// values, so decoders can read a whole schema and check Err once. A
// short payload must fail, never silently zero-fill.
type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Err returns the first decode error, or nil.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.off+n > len(r.data) {
		r.setErr(fmt.Errorf("payload truncated: need %d bytes at offset %d, have %d", n, r.off, len(r.data)-r.off))
		return false
	}
	return true
}

// ReadC reads 1 unsigned byte.
func (r *Reader) ReadC() byte {
	if !r.need(1) {
		return 0
	}
	v := r.data[r.off]
	r.off++
	return v
}

// ReadH reads 2 bytes as little-endian uint16.
func (r *Reader) ReadH() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

// ReadD reads 4 bytes as little-endian int32.
func (r *Reader) ReadD() int32 {
	return int32(r.ReadDU())
}

// ReadDU reads 4 bytes as little-endian uint32.
func (r *Reader) ReadDU() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

// ReadQ reads 8 bytes as little-endian uint64.
func (r *Reader) ReadQ() uint64 {
	if !r.need(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v
}

// ReadF reads 4 bytes as a little-endian IEEE 754 float32.
func (r *Reader) ReadF() float32 {
	return math.Float32frombits(r.ReadDU())
}

// ReadS reads a null-terminated CP949 string and returns UTF-8.
// A missing terminator before the payload boundary is a decode error.
func (r *Reader) ReadS() string {
	if r.err != nil {
		return ""
	}
	start := r.off
	for r.off < len(r.data) {
		if r.data[r.off] == 0 {
			raw := r.data[start:r.off]
			r.off++ // skip null terminator
			return cp949ToUTF8(raw)
		}
		r.off++
	}
	r.off = start
	r.setErr(fmt.Errorf("unterminated string at offset %d", start))
	return ""
}

// cp949ToUTF8 converts CP949 (EUC-KR superset) bytes to a UTF-8 string.
// Pure ASCII passes through unchanged; only multi-byte sequences are decoded.
func cp949ToUTF8(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	allASCII := true
	for _, b := range raw {
		if b >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		return string(raw)
	}
	decoded, err := korean.EUCKR.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw) // fallback to raw bytes
	}
	return string(decoded)
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(n int) []byte {
	if !r.need(n) {
		return nil
	}
	b := make([]byte, n)
	copy(b, r.data[r.off:r.off+n])
	r.off += n
	return b
}

// ReadRest consumes and returns all remaining bytes.
func (r *Reader) ReadRest() []byte {
	if r.err != nil {
		return nil
	}
	b := make([]byte, len(r.data)-r.off)
	copy(b, r.data[r.off:])
	r.off = len(r.data)
	return b
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}
