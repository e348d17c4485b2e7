package command

import (
	"fmt"

	"github.com/aligo/server/internal/net/packet"
)

// Spatial snapshot variants. The client alternates between full
// updates carrying world coordinates and cheaper partial updates.
const (
	SnapshotFull    byte = 0
	SnapshotPartial byte = 1
)

type FullSpatial struct {
	Member0 uint16
	Member1 uint32
	Member2 uint16
	Member3 [12]byte
	Member4 [16]byte
	X       float32
	Y       float32
	Z       float32
}

func (s *FullSpatial) Decode(r *packet.Reader) {
	s.Member0 = r.ReadH()
	s.Member1 = r.ReadDU()
	s.Member2 = r.ReadH()
	copy(s.Member3[:], r.ReadBytes(len(s.Member3)))
	copy(s.Member4[:], r.ReadBytes(len(s.Member4)))
	s.X = r.ReadF()
	s.Y = r.ReadF()
	s.Z = r.ReadF()
}

func (s *FullSpatial) Encode(w *packet.Writer) {
	w.WriteH(s.Member0)
	w.WriteDU(s.Member1)
	w.WriteH(s.Member2)
	w.WriteBytes(s.Member3[:])
	w.WriteBytes(s.Member4[:])
	w.WriteF(s.X)
	w.WriteF(s.Y)
	w.WriteF(s.Z)
}

type PartialSpatial struct {
	Member0 uint16
	Member1 uint32
	Member2 uint16
	Member3 [12]byte
	Member4 [16]byte
}

func (s *PartialSpatial) Decode(r *packet.Reader) {
	s.Member0 = r.ReadH()
	s.Member1 = r.ReadDU()
	s.Member2 = r.ReadH()
	copy(s.Member3[:], r.ReadBytes(len(s.Member3)))
	copy(s.Member4[:], r.ReadBytes(len(s.Member4)))
}

func (s *PartialSpatial) Encode(w *packet.Writer) {
	w.WriteH(s.Member0)
	w.WriteDU(s.Member1)
	w.WriteH(s.Member2)
	w.WriteBytes(s.Member3[:])
	w.WriteBytes(s.Member4[:])
}

// Snapshot is the tagged union of the two spatial layouts. Type
// selects which variant field is meaningful.
type Snapshot struct {
	Type    byte
	Full    FullSpatial
	Partial PartialSpatial
}

func (s *Snapshot) Decode(r *packet.Reader) {
	s.Type = packet.ReadUnion(r, map[byte]func(*packet.Reader){
		SnapshotFull:    s.Full.Decode,
		SnapshotPartial: s.Partial.Decode,
	})
}

func (s *Snapshot) Encode(w *packet.Writer) {
	switch s.Type {
	case SnapshotFull:
		packet.WriteUnion(w, s.Type, &s.Full)
	case SnapshotPartial:
		packet.WriteUnion(w, s.Type, &s.Partial)
	default:
		w.Fail(fmt.Errorf("unknown snapshot type 0x%02x", s.Type))
	}
}
