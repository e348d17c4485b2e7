package packet

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/encoding/korean"
)

// Writer builds an Alicia packet payload. All multi-byte writes are
// little-endian. Errors are sticky, mirroring Reader: the first failed
// write poisons the Writer and Bytes must not be framed after that.
type Writer struct {
	buf []byte
	err error
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

func (w *Writer) setErr(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Err returns the first encode error, or nil.
func (w *Writer) Err() error {
	return w.err
}

// Fail poisons the Writer with err. Encoders use it when the value
// they were handed cannot be represented on the wire.
func (w *Writer) Fail(err error) {
	w.setErr(err)
}

// WriteC writes 1 byte.
func (w *Writer) WriteC(v byte) {
	w.buf = append(w.buf, v)
}

// WriteH writes 2 bytes little-endian.
func (w *Writer) WriteH(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteD writes 4 bytes little-endian (signed).
func (w *Writer) WriteD(v int32) {
	w.WriteDU(uint32(v))
}

// WriteDU writes 4 bytes little-endian unsigned.
func (w *Writer) WriteDU(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteQ writes 8 bytes little-endian.
func (w *Writer) WriteQ(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteF writes a float32 as 4 bytes little-endian IEEE 754.
func (w *Writer) WriteF(v float32) {
	w.WriteDU(math.Float32bits(v))
}

// WriteS writes a null-terminated string, converting UTF-8 to CP949.
// A source string with an interior NUL cannot be represented and is an
// encode error.
func (w *Writer) WriteS(s string) {
	if strings.ContainsRune(s, 0) {
		w.setErr(fmt.Errorf("string %q contains interior NUL", s))
		return
	}
	if len(s) > 0 {
		encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(s))
		if err != nil {
			// Fallback: write raw bytes (works for pure ASCII)
			w.buf = append(w.buf, []byte(s)...)
		} else {
			w.buf = append(w.buf, encoded...)
		}
	}
	w.buf = append(w.buf, 0) // null terminator
}

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Bytes returns the payload built so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the current payload length.
func (w *Writer) Len() int {
	return len(w.buf)
}
