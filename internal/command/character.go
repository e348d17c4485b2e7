package command

import "github.com/aligo/server/internal/net/packet"

// Character is the avatar customisation block shared by the login and
// ranch snapshots.
type Character struct {
	Parts      CharacterParts
	Appearance CharacterAppearance
}

func (c *Character) Decode(r *packet.Reader) {
	c.Parts.Decode(r)
	c.Appearance.Decode(r)
}

func (c *Character) Encode(w *packet.Writer) {
	c.Parts.Encode(w)
	c.Appearance.Encode(w)
}

type CharacterParts struct {
	CharID        byte
	MouthSerialID byte
	FaceSerialID  byte
	Val0          byte
}

func (p *CharacterParts) Decode(r *packet.Reader) {
	p.CharID = r.ReadC()
	p.MouthSerialID = r.ReadC()
	p.FaceSerialID = r.ReadC()
	p.Val0 = r.ReadC()
}

func (p *CharacterParts) Encode(w *packet.Writer) {
	w.WriteC(p.CharID)
	w.WriteC(p.MouthSerialID)
	w.WriteC(p.FaceSerialID)
	w.WriteC(p.Val0)
}

// DefaultCharacterParts is the fallback body the client accepts for a
// character created before customisation.
func DefaultCharacterParts() CharacterParts {
	return CharacterParts{CharID: 10}
}

// Gender derives the profile gender from the avatar model id. Model
// ids below ten belong to the boy set.
func (p CharacterParts) Gender() Gender {
	switch {
	case p.CharID == 0:
		return GenderUnspecified
	case p.CharID < 10:
		return GenderBoy
	default:
		return GenderGirl
	}
}

type CharacterAppearance struct {
	Val0        uint16
	HeadSize    uint16
	Height      uint16
	ThighVolume uint16
	LegVolume   uint16
	Val1        uint16
}

func (a *CharacterAppearance) Decode(r *packet.Reader) {
	a.Val0 = r.ReadH()
	a.HeadSize = r.ReadH()
	a.Height = r.ReadH()
	a.ThighVolume = r.ReadH()
	a.LegVolume = r.ReadH()
	a.Val1 = r.ReadH()
}

func (a *CharacterAppearance) Encode(w *packet.Writer) {
	w.WriteH(a.Val0)
	w.WriteH(a.HeadSize)
	w.WriteH(a.Height)
	w.WriteH(a.ThighVolume)
	w.WriteH(a.LegVolume)
	w.WriteH(a.Val1)
}

// Gender is a single-byte discriminator on the wire.
type Gender byte

const (
	GenderUnspecified Gender = 0x00
	GenderBoy         Gender = 0x01
	GenderGirl        Gender = 0x02
)

// AgeGroup encodes the age bracket chosen at registration.
type AgeGroup byte

const (
	AgeKid          AgeGroup = 0x0C // under 12
	AgeTeenager     AgeGroup = 0x0D // 13 to 15
	AgeHighschooler AgeGroup = 0x10 // 16 to 18
	AgeAdult        AgeGroup = 0x13 // 19 and up
)

// PlayerRelatedThing carries per-player state the client reads during
// ranch entry. Most fields are still unidentified.
type PlayerRelatedThing struct {
	Val0 uint32
	Val1 byte
	Val2 uint32
	Val3 string
	Val4 byte
	Val5 uint32
	Val6 byte
}

func (p *PlayerRelatedThing) Decode(r *packet.Reader) {
	p.Val0 = r.ReadDU()
	p.Val1 = r.ReadC()
	p.Val2 = r.ReadDU()
	p.Val3 = r.ReadS()
	p.Val4 = r.ReadC()
	p.Val5 = r.ReadDU()
	p.Val6 = r.ReadC()
}

func (p *PlayerRelatedThing) Encode(w *packet.Writer) {
	w.WriteDU(p.Val0)
	w.WriteC(p.Val1)
	w.WriteDU(p.Val2)
	w.WriteS(p.Val3)
	w.WriteC(p.Val4)
	w.WriteDU(p.Val5)
	w.WriteC(p.Val6)
}

// AnotherPlayerRelatedThing binds a player to their active mount.
type AnotherPlayerRelatedThing struct {
	MountUID uint32
	Val1     uint32
	Val2     uint32
}

func (p *AnotherPlayerRelatedThing) Decode(r *packet.Reader) {
	p.MountUID = r.ReadDU()
	p.Val1 = r.ReadDU()
	p.Val2 = r.ReadDU()
}

func (p *AnotherPlayerRelatedThing) Encode(w *packet.Writer) {
	w.WriteDU(p.MountUID)
	w.WriteDU(p.Val1)
	w.WriteDU(p.Val2)
}

// YetAnotherPlayerRelatedThing is a trailing player block with an
// embedded string, likely guild related.
type YetAnotherPlayerRelatedThing struct {
	Val0 uint32
	Val1 uint32
	Val2 string
	Val3 uint32
}

func (p *YetAnotherPlayerRelatedThing) Decode(r *packet.Reader) {
	p.Val0 = r.ReadDU()
	p.Val1 = r.ReadDU()
	p.Val2 = r.ReadS()
	p.Val3 = r.ReadDU()
}

func (p *YetAnotherPlayerRelatedThing) Encode(w *packet.Writer) {
	w.WriteDU(p.Val0)
	w.WriteDU(p.Val1)
	w.WriteS(p.Val2)
	w.WriteDU(p.Val3)
}
