package command

import "github.com/aligo/server/internal/net/packet"

// Horse is the full wire representation of one horse, reused across
// login, ranch entry, breeding and the storage commands.
type Horse struct {
	UID  uint32
	TID  uint32
	Name string

	Parts      HorseParts
	Appearance HorseAppearance
	Stats      HorseStats

	Rating        uint32
	Class         byte
	ClassProgress byte
	Grade         byte
	GrowthPoints  uint16

	Vals0   HorseVals0
	Vals1   HorseVals1
	Mastery HorseMastery

	Val16 uint32
	Val17 uint32
}

func (h *Horse) Decode(r *packet.Reader) {
	h.UID = r.ReadDU()
	h.TID = r.ReadDU()
	h.Name = r.ReadS()
	h.Parts.Decode(r)
	h.Appearance.Decode(r)
	h.Stats.Decode(r)
	h.Rating = r.ReadDU()
	h.Class = r.ReadC()
	h.ClassProgress = r.ReadC()
	h.Grade = r.ReadC()
	h.GrowthPoints = r.ReadH()
	h.Vals0.Decode(r)
	h.Vals1.Decode(r)
	h.Mastery.Decode(r)
	h.Val16 = r.ReadDU()
	h.Val17 = r.ReadDU()
}

func (h *Horse) Encode(w *packet.Writer) {
	w.WriteDU(h.UID)
	w.WriteDU(h.TID)
	w.WriteS(h.Name)
	h.Parts.Encode(w)
	h.Appearance.Encode(w)
	h.Stats.Encode(w)
	w.WriteDU(h.Rating)
	w.WriteC(h.Class)
	w.WriteC(h.ClassProgress)
	w.WriteC(h.Grade)
	w.WriteH(h.GrowthPoints)
	h.Vals0.Encode(w)
	h.Vals1.Encode(w)
	h.Mastery.Encode(w)
	w.WriteDU(h.Val16)
	w.WriteDU(h.Val17)
}

type HorseParts struct {
	SkinID byte
	ManeID byte
	TailID byte
	FaceID byte
}

func (p *HorseParts) Decode(r *packet.Reader) {
	p.SkinID = r.ReadC()
	p.ManeID = r.ReadC()
	p.TailID = r.ReadC()
	p.FaceID = r.ReadC()
}

func (p *HorseParts) Encode(w *packet.Writer) {
	w.WriteC(p.SkinID)
	w.WriteC(p.ManeID)
	w.WriteC(p.TailID)
	w.WriteC(p.FaceID)
}

type HorseAppearance struct {
	Scale      byte
	LegLength  byte
	LegVolume  byte
	BodyLength byte
	BodyVolume byte
}

func (a *HorseAppearance) Decode(r *packet.Reader) {
	a.Scale = r.ReadC()
	a.LegLength = r.ReadC()
	a.LegVolume = r.ReadC()
	a.BodyLength = r.ReadC()
	a.BodyVolume = r.ReadC()
}

func (a *HorseAppearance) Encode(w *packet.Writer) {
	w.WriteC(a.Scale)
	w.WriteC(a.LegLength)
	w.WriteC(a.LegVolume)
	w.WriteC(a.BodyLength)
	w.WriteC(a.BodyVolume)
}

type HorseStats struct {
	Agility  uint32
	Control  uint32
	Speed    uint32
	Strength uint32
	Spirit   uint32
}

func (s *HorseStats) Decode(r *packet.Reader) {
	s.Agility = r.ReadDU()
	s.Control = r.ReadDU()
	s.Speed = r.ReadDU()
	s.Strength = r.ReadDU()
	s.Spirit = r.ReadDU()
}

func (s *HorseStats) Encode(w *packet.Writer) {
	w.WriteDU(s.Agility)
	w.WriteDU(s.Control)
	w.WriteDU(s.Speed)
	w.WriteDU(s.Strength)
	w.WriteDU(s.Spirit)
}

type HorseVals0 struct {
	Stamina        uint16
	Attractiveness uint16
	Hunger         uint16
	Val0           uint16
	Val1           uint16
	Val2           uint16
	Val3           uint16
	Val4           uint16
	Val5           uint16
	Val6           uint16
	Val7           uint16
	Val8           uint16
	Val9           uint16
	Val10          uint16
}

func (v *HorseVals0) Decode(r *packet.Reader) {
	v.Stamina = r.ReadH()
	v.Attractiveness = r.ReadH()
	v.Hunger = r.ReadH()
	v.Val0 = r.ReadH()
	v.Val1 = r.ReadH()
	v.Val2 = r.ReadH()
	v.Val3 = r.ReadH()
	v.Val4 = r.ReadH()
	v.Val5 = r.ReadH()
	v.Val6 = r.ReadH()
	v.Val7 = r.ReadH()
	v.Val8 = r.ReadH()
	v.Val9 = r.ReadH()
	v.Val10 = r.ReadH()
}

func (v *HorseVals0) Encode(w *packet.Writer) {
	w.WriteH(v.Stamina)
	w.WriteH(v.Attractiveness)
	w.WriteH(v.Hunger)
	w.WriteH(v.Val0)
	w.WriteH(v.Val1)
	w.WriteH(v.Val2)
	w.WriteH(v.Val3)
	w.WriteH(v.Val4)
	w.WriteH(v.Val5)
	w.WriteH(v.Val6)
	w.WriteH(v.Val7)
	w.WriteH(v.Val8)
	w.WriteH(v.Val9)
	w.WriteH(v.Val10)
}

type HorseVals1 struct {
	Val0             byte
	Val1             uint32
	DateOfBirth      uint32
	Val3             byte
	Val4             byte
	ClassProgression uint32
	Val5             uint32
	PotentialLevel   byte
	HasPotential     byte
	PotentialValue   byte
	Val9             byte
	Luck             byte
	HasLuck          byte
	Val12            byte
	Fatigue          uint16
	Val14            uint16
	Emblem           uint16
}

func (v *HorseVals1) Decode(r *packet.Reader) {
	v.Val0 = r.ReadC()
	v.Val1 = r.ReadDU()
	v.DateOfBirth = r.ReadDU()
	v.Val3 = r.ReadC()
	v.Val4 = r.ReadC()
	v.ClassProgression = r.ReadDU()
	v.Val5 = r.ReadDU()
	v.PotentialLevel = r.ReadC()
	v.HasPotential = r.ReadC()
	v.PotentialValue = r.ReadC()
	v.Val9 = r.ReadC()
	v.Luck = r.ReadC()
	v.HasLuck = r.ReadC()
	v.Val12 = r.ReadC()
	v.Fatigue = r.ReadH()
	v.Val14 = r.ReadH()
	v.Emblem = r.ReadH()
}

func (v *HorseVals1) Encode(w *packet.Writer) {
	w.WriteC(v.Val0)
	w.WriteDU(v.Val1)
	w.WriteDU(v.DateOfBirth)
	w.WriteC(v.Val3)
	w.WriteC(v.Val4)
	w.WriteDU(v.ClassProgression)
	w.WriteDU(v.Val5)
	w.WriteC(v.PotentialLevel)
	w.WriteC(v.HasPotential)
	w.WriteC(v.PotentialValue)
	w.WriteC(v.Val9)
	w.WriteC(v.Luck)
	w.WriteC(v.HasLuck)
	w.WriteC(v.Val12)
	w.WriteH(v.Fatigue)
	w.WriteH(v.Val14)
	w.WriteH(v.Emblem)
}

type HorseMastery struct {
	SpurMagicCount  uint32
	JumpCount       uint32
	SlidingTime     uint32
	GlidingDistance uint32
}

func (m *HorseMastery) Decode(r *packet.Reader) {
	m.SpurMagicCount = r.ReadDU()
	m.JumpCount = r.ReadDU()
	m.SlidingTime = r.ReadDU()
	m.GlidingDistance = r.ReadDU()
}

func (m *HorseMastery) Encode(w *packet.Writer) {
	w.WriteDU(m.SpurMagicCount)
	w.WriteDU(m.JumpCount)
	w.WriteDU(m.SlidingTime)
	w.WriteDU(m.GlidingDistance)
}

// DefaultHorseParts matches the client's neutral newborn coat.
func DefaultHorseParts() HorseParts {
	return HorseParts{SkinID: 1}
}
