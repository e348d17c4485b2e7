package command

import "github.com/aligo/server/internal/net/packet"

type EnterBreedingMarket struct{}

func (*EnterBreedingMarket) ID() packet.CommandID { return packet.AcCmdCREnterBreedingMarket }
func (*EnterBreedingMarket) Decode(*packet.Reader) {}
func (*EnterBreedingMarket) Encode(*packet.Writer) {}

// EnterBreedingMarketOK lists the player's horses eligible for
// breeding.
type EnterBreedingMarketOK struct {
	AvailableHorses []AvailableHorse
}

func (*EnterBreedingMarketOK) ID() packet.CommandID { return packet.AcCmdCREnterBreedingMarketOK }

func (m *EnterBreedingMarketOK) Decode(r *packet.Reader) {
	packet.ReadList8(r, &m.AvailableHorses)
}

func (m *EnterBreedingMarketOK) Encode(w *packet.Writer) {
	packet.WriteList8(w, m.AvailableHorses)
}

type EnterBreedingMarketCancel struct{}

func (*EnterBreedingMarketCancel) ID() packet.CommandID {
	return packet.AcCmdCREnterBreedingMarketCancel
}

func (*EnterBreedingMarketCancel) Decode(*packet.Reader) {}
func (*EnterBreedingMarketCancel) Encode(*packet.Writer) {}

type AvailableHorse struct {
	UID       uint32
	TID       uint32
	Success   byte
	Unk1      uint32
	Unk2      byte
	CoatBonus byte
}

func (h *AvailableHorse) Decode(r *packet.Reader) {
	h.UID = r.ReadDU()
	h.TID = r.ReadDU()
	h.Success = r.ReadC()
	h.Unk1 = r.ReadDU()
	h.Unk2 = r.ReadC()
	h.CoatBonus = r.ReadC()
}

func (h *AvailableHorse) Encode(w *packet.Writer) {
	w.WriteDU(h.UID)
	w.WriteDU(h.TID)
	w.WriteC(h.Success)
	w.WriteDU(h.Unk1)
	w.WriteC(h.Unk2)
	w.WriteC(h.CoatBonus)
}

type LeaveBreedingMarket struct{}

func (*LeaveBreedingMarket) ID() packet.CommandID { return packet.AcCmdCRLeaveBreedingMarket }
func (*LeaveBreedingMarket) Decode(*packet.Reader) {}
func (*LeaveBreedingMarket) Encode(*packet.Writer) {}

// SearchStallion filters the stallion market. Unk9 is three parallel
// id filter lists, one per filter column.
type SearchStallion struct {
	Unk0  uint32
	Unk1  byte
	Unk2  byte
	Unk3  byte
	Unk4  byte
	Unk5  byte
	Unk6  byte
	Unk7  byte
	Unk8  byte
	Unk9  [3][]uint32
	Unk10 byte
}

func (*SearchStallion) ID() packet.CommandID { return packet.AcCmdCRSearchStallion }

func (m *SearchStallion) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadDU()
	m.Unk1 = r.ReadC()
	m.Unk2 = r.ReadC()
	m.Unk3 = r.ReadC()
	m.Unk4 = r.ReadC()
	m.Unk5 = r.ReadC()
	m.Unk6 = r.ReadC()
	m.Unk7 = r.ReadC()
	m.Unk8 = r.ReadC()
	for i := range m.Unk9 {
		m.Unk9[i] = packet.ReadDWList8(r)
	}
	m.Unk10 = r.ReadC()
}

func (m *SearchStallion) Encode(w *packet.Writer) {
	w.WriteDU(m.Unk0)
	w.WriteC(m.Unk1)
	w.WriteC(m.Unk2)
	w.WriteC(m.Unk3)
	w.WriteC(m.Unk4)
	w.WriteC(m.Unk5)
	w.WriteC(m.Unk6)
	w.WriteC(m.Unk7)
	w.WriteC(m.Unk8)
	for i := range m.Unk9 {
		packet.WriteDWList8(w, m.Unk9[i])
	}
	w.WriteC(m.Unk10)
}

type SearchStallionOK struct {
	Unk0      uint32
	Unk1      uint32
	Stallions []Stallion
}

func (*SearchStallionOK) ID() packet.CommandID { return packet.AcCmdCRSearchStallionOK }

func (m *SearchStallionOK) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadDU()
	m.Unk1 = r.ReadDU()
	packet.ReadList8(r, &m.Stallions)
}

func (m *SearchStallionOK) Encode(w *packet.Writer) {
	w.WriteDU(m.Unk0)
	w.WriteDU(m.Unk1)
	packet.WriteList8(w, m.Stallions)
}

type SearchStallionCancel struct{}

func (*SearchStallionCancel) ID() packet.CommandID { return packet.AcCmdCRSearchStallionCancel }
func (*SearchStallionCancel) Decode(*packet.Reader) {}
func (*SearchStallionCancel) Encode(*packet.Writer) {}

type Stallion struct {
	Unk0       string
	UID        uint32
	TID        uint32
	Name       string
	Grade      byte
	Chance     byte
	Price      uint32
	Unk7       uint32
	Unk8       uint32
	Stats      HorseStats
	Parts      HorseParts
	Appearance HorseAppearance
	Unk11      byte
	CoatBonus  byte
}

func (s *Stallion) Decode(r *packet.Reader) {
	s.Unk0 = r.ReadS()
	s.UID = r.ReadDU()
	s.TID = r.ReadDU()
	s.Name = r.ReadS()
	s.Grade = r.ReadC()
	s.Chance = r.ReadC()
	s.Price = r.ReadDU()
	s.Unk7 = r.ReadDU()
	s.Unk8 = r.ReadDU()
	s.Stats.Decode(r)
	s.Parts.Decode(r)
	s.Appearance.Decode(r)
	s.Unk11 = r.ReadC()
	s.CoatBonus = r.ReadC()
}

func (s *Stallion) Encode(w *packet.Writer) {
	w.WriteS(s.Unk0)
	w.WriteDU(s.UID)
	w.WriteDU(s.TID)
	w.WriteS(s.Name)
	w.WriteC(s.Grade)
	w.WriteC(s.Chance)
	w.WriteDU(s.Price)
	w.WriteDU(s.Unk7)
	w.WriteDU(s.Unk8)
	s.Stats.Encode(w)
	s.Parts.Encode(w)
	s.Appearance.Encode(w)
	w.WriteC(s.Unk11)
	w.WriteC(s.CoatBonus)
}

type TryBreeding struct {
	OwnHorseUID   uint32
	OtherHorseUID uint32
}

func (*TryBreeding) ID() packet.CommandID { return packet.AcCmdCRTryBreeding }

func (m *TryBreeding) Decode(r *packet.Reader) {
	m.OwnHorseUID = r.ReadDU()
	m.OtherHorseUID = r.ReadDU()
}

func (m *TryBreeding) Encode(w *packet.Writer) {
	w.WriteDU(m.OwnHorseUID)
	w.WriteDU(m.OtherHorseUID)
}

// TryBreedingOK describes the foal rolled from the pairing.
type TryBreedingOK struct {
	UID        uint32
	TID        uint32
	Val        uint32
	Count      uint32
	Unk0       byte
	Parts      HorseParts
	Appearance HorseAppearance
	Stats      HorseStats
	Unk1       uint32
	Unk2       byte
	Unk3       byte
	Unk4       byte
	Unk5       byte
	Unk6       byte
	Unk7       byte
	Unk8       byte
	Unk9       uint16
	Unk10      byte
}

func (*TryBreedingOK) ID() packet.CommandID { return packet.AcCmdCRTryBreedingOK }

func (m *TryBreedingOK) Decode(r *packet.Reader) {
	m.UID = r.ReadDU()
	m.TID = r.ReadDU()
	m.Val = r.ReadDU()
	m.Count = r.ReadDU()
	m.Unk0 = r.ReadC()
	m.Parts.Decode(r)
	m.Appearance.Decode(r)
	m.Stats.Decode(r)
	m.Unk1 = r.ReadDU()
	m.Unk2 = r.ReadC()
	m.Unk3 = r.ReadC()
	m.Unk4 = r.ReadC()
	m.Unk5 = r.ReadC()
	m.Unk6 = r.ReadC()
	m.Unk7 = r.ReadC()
	m.Unk8 = r.ReadC()
	m.Unk9 = r.ReadH()
	m.Unk10 = r.ReadC()
}

func (m *TryBreedingOK) Encode(w *packet.Writer) {
	w.WriteDU(m.UID)
	w.WriteDU(m.TID)
	w.WriteDU(m.Val)
	w.WriteDU(m.Count)
	w.WriteC(m.Unk0)
	m.Parts.Encode(w)
	m.Appearance.Encode(w)
	m.Stats.Encode(w)
	w.WriteDU(m.Unk1)
	w.WriteC(m.Unk2)
	w.WriteC(m.Unk3)
	w.WriteC(m.Unk4)
	w.WriteC(m.Unk5)
	w.WriteC(m.Unk6)
	w.WriteC(m.Unk7)
	w.WriteC(m.Unk8)
	w.WriteH(m.Unk9)
	w.WriteC(m.Unk10)
}

type TryBreedingCancel struct {
	Unk0 byte
	Unk1 uint32
	Unk2 byte
	Unk3 byte
	Unk4 byte
	Unk5 byte
}

func (*TryBreedingCancel) ID() packet.CommandID { return packet.AcCmdCRTryBreedingCancel }

func (m *TryBreedingCancel) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadC()
	m.Unk1 = r.ReadDU()
	m.Unk2 = r.ReadC()
	m.Unk3 = r.ReadC()
	m.Unk4 = r.ReadC()
	m.Unk5 = r.ReadC()
}

func (m *TryBreedingCancel) Encode(w *packet.Writer) {
	w.WriteC(m.Unk0)
	w.WriteDU(m.Unk1)
	w.WriteC(m.Unk2)
	w.WriteC(m.Unk3)
	w.WriteC(m.Unk4)
	w.WriteC(m.Unk5)
}

type BreedingWishlist struct{}

func (*BreedingWishlist) ID() packet.CommandID { return packet.AcCmdCRBreedingWishlist }
func (*BreedingWishlist) Decode(*packet.Reader) {}
func (*BreedingWishlist) Encode(*packet.Writer) {}

type BreedingWishlistOK struct {
	Wishlist []WishlistElement
}

func (*BreedingWishlistOK) ID() packet.CommandID { return packet.AcCmdCRBreedingWishlistOK }

func (m *BreedingWishlistOK) Decode(r *packet.Reader) {
	packet.ReadList8(r, &m.Wishlist)
}

func (m *BreedingWishlistOK) Encode(w *packet.Writer) {
	packet.WriteList8(w, m.Wishlist)
}

type BreedingWishlistCancel struct{}

func (*BreedingWishlistCancel) ID() packet.CommandID { return packet.AcCmdCRBreedingWishlistCancel }
func (*BreedingWishlistCancel) Decode(*packet.Reader) {}
func (*BreedingWishlistCancel) Encode(*packet.Writer) {}

type WishlistElement struct {
	Unk0       string
	UID        uint32
	TID        uint32
	Unk1       byte
	Unk2       string
	Unk3       byte
	Unk4       uint32
	Unk5       uint32
	Unk6       uint32
	Unk7       uint32
	Unk8       uint32
	Stats      HorseStats
	Parts      HorseParts
	Appearance HorseAppearance
	Unk9       byte
	Unk10      byte
	Unk11      byte
}

func (e *WishlistElement) Decode(r *packet.Reader) {
	e.Unk0 = r.ReadS()
	e.UID = r.ReadDU()
	e.TID = r.ReadDU()
	e.Unk1 = r.ReadC()
	e.Unk2 = r.ReadS()
	e.Unk3 = r.ReadC()
	e.Unk4 = r.ReadDU()
	e.Unk5 = r.ReadDU()
	e.Unk6 = r.ReadDU()
	e.Unk7 = r.ReadDU()
	e.Unk8 = r.ReadDU()
	e.Stats.Decode(r)
	e.Parts.Decode(r)
	e.Appearance.Decode(r)
	e.Unk9 = r.ReadC()
	e.Unk10 = r.ReadC()
	e.Unk11 = r.ReadC()
}

func (e *WishlistElement) Encode(w *packet.Writer) {
	w.WriteS(e.Unk0)
	w.WriteDU(e.UID)
	w.WriteDU(e.TID)
	w.WriteC(e.Unk1)
	w.WriteS(e.Unk2)
	w.WriteC(e.Unk3)
	w.WriteDU(e.Unk4)
	w.WriteDU(e.Unk5)
	w.WriteDU(e.Unk6)
	w.WriteDU(e.Unk7)
	w.WriteDU(e.Unk8)
	e.Stats.Encode(w)
	e.Parts.Encode(w)
	e.Appearance.Encode(w)
	w.WriteC(e.Unk9)
	w.WriteC(e.Unk10)
	w.WriteC(e.Unk11)
}

type BreedingFailureCard struct{}

func (*BreedingFailureCard) ID() packet.CommandID { return packet.AcCmdCRBreedingFailureCard }
func (*BreedingFailureCard) Decode(*packet.Reader) {}
func (*BreedingFailureCard) Encode(*packet.Writer) {}

type BreedingFailureCardOK struct {
	Unk0 byte
}

func (*BreedingFailureCardOK) ID() packet.CommandID { return packet.AcCmdCRBreedingFailureCardOK }

func (m *BreedingFailureCardOK) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadC()
}

func (m *BreedingFailureCardOK) Encode(w *packet.Writer) {
	w.WriteC(m.Unk0)
}

type MountFamilyTree struct {
	UID uint32
}

func (*MountFamilyTree) ID() packet.CommandID { return packet.AcCmdCRMountFamilyTree }

func (m *MountFamilyTree) Decode(r *packet.Reader) {
	m.UID = r.ReadDU()
}

func (m *MountFamilyTree) Encode(w *packet.Writer) {
	w.WriteDU(m.UID)
}

type MountFamilyTreeOK struct {
	UID   uint32
	Items []MountFamilyTreeItem
}

func (*MountFamilyTreeOK) ID() packet.CommandID { return packet.AcCmdCRMountFamilyTreeOK }

func (m *MountFamilyTreeOK) Decode(r *packet.Reader) {
	m.UID = r.ReadDU()
	packet.ReadList8(r, &m.Items)
}

func (m *MountFamilyTreeOK) Encode(w *packet.Writer) {
	w.WriteDU(m.UID)
	packet.WriteList8(w, m.Items)
}

type MountFamilyTreeCancel struct{}

func (*MountFamilyTreeCancel) ID() packet.CommandID { return packet.AcCmdCRMountFamilyTreeCancel }
func (*MountFamilyTreeCancel) Decode(*packet.Reader) {}
func (*MountFamilyTreeCancel) Encode(*packet.Writer) {}

type MountFamilyTreeItem struct {
	Unk0 byte
	Unk1 string
	Unk2 byte
	Unk3 uint16
}

func (i *MountFamilyTreeItem) Decode(r *packet.Reader) {
	i.Unk0 = r.ReadC()
	i.Unk1 = r.ReadS()
	i.Unk2 = r.ReadC()
	i.Unk3 = r.ReadH()
}

func (i *MountFamilyTreeItem) Encode(w *packet.Writer) {
	w.WriteC(i.Unk0)
	w.WriteS(i.Unk1)
	w.WriteC(i.Unk2)
	w.WriteH(i.Unk3)
}
