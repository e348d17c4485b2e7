package command

import "github.com/aligo/server/internal/net/packet"

// RanchHorse is a horse standing in the ranch, tagged with the room
// slot index it occupies.
type RanchHorse struct {
	RanchIndex uint16
	Horse      Horse
}

func (h *RanchHorse) Decode(r *packet.Reader) {
	h.RanchIndex = r.ReadH()
	h.Horse.Decode(r)
}

func (h *RanchHorse) Encode(w *packet.Writer) {
	w.WriteH(h.RanchIndex)
	h.Horse.Encode(w)
}

// RanchCharacter is a player standing in the ranch: avatar, mount,
// equipment and the slot index the room assigned on entry.
type RanchCharacter struct {
	UID         uint32
	Name        string
	Gender      Gender
	Unk0        byte
	Unk1        byte
	Description string

	Character          Character
	Mount              Horse
	CharacterEquipment []Item

	PlayerRelatedThing PlayerRelatedThing

	RanchIndex uint16
	Unk2       byte
	Unk3       byte

	AnotherPlayerRelatedThing    AnotherPlayerRelatedThing
	YetAnotherPlayerRelatedThing YetAnotherPlayerRelatedThing

	Unk4 byte
	Unk5 byte
}

func (c *RanchCharacter) Decode(r *packet.Reader) {
	c.UID = r.ReadDU()
	c.Name = r.ReadS()
	c.Gender = Gender(r.ReadC())
	c.Unk0 = r.ReadC()
	c.Unk1 = r.ReadC()
	c.Description = r.ReadS()
	c.Character.Decode(r)
	c.Mount.Decode(r)
	packet.ReadList8(r, &c.CharacterEquipment)
	c.PlayerRelatedThing.Decode(r)
	c.RanchIndex = r.ReadH()
	c.Unk2 = r.ReadC()
	c.Unk3 = r.ReadC()
	c.AnotherPlayerRelatedThing.Decode(r)
	c.YetAnotherPlayerRelatedThing.Decode(r)
	c.Unk4 = r.ReadC()
	c.Unk5 = r.ReadC()
}

func (c *RanchCharacter) Encode(w *packet.Writer) {
	w.WriteDU(c.UID)
	w.WriteS(c.Name)
	w.WriteC(byte(c.Gender))
	w.WriteC(c.Unk0)
	w.WriteC(c.Unk1)
	w.WriteS(c.Description)
	c.Character.Encode(w)
	c.Mount.Encode(w)
	packet.WriteList8(w, c.CharacterEquipment)
	c.PlayerRelatedThing.Encode(w)
	w.WriteH(c.RanchIndex)
	w.WriteC(c.Unk2)
	w.WriteC(c.Unk3)
	c.AnotherPlayerRelatedThing.Encode(w)
	c.YetAnotherPlayerRelatedThing.Encode(w)
	w.WriteC(c.Unk4)
	w.WriteC(c.Unk5)
}

type RanchUnk11 struct {
	Unk0 byte
	Unk1 byte
}

func (u *RanchUnk11) Decode(r *packet.Reader) {
	u.Unk0 = r.ReadC()
	u.Unk1 = r.ReadC()
}

func (u *RanchUnk11) Encode(w *packet.Writer) {
	w.WriteC(u.Unk0)
	w.WriteC(u.Unk1)
}

// RanchEnterRanch presents the one-time code issued by the lobby to
// the ranch server.
type RanchEnterRanch struct {
	CharacterUID uint32
	OTP          uint32
	RanchUID     uint32
}

func (*RanchEnterRanch) ID() packet.CommandID { return packet.AcCmdCREnterRanch }

func (m *RanchEnterRanch) Decode(r *packet.Reader) {
	m.CharacterUID = r.ReadDU()
	m.OTP = r.ReadDU()
	m.RanchUID = r.ReadDU()
}

func (m *RanchEnterRanch) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterUID)
	w.WriteDU(m.OTP)
	w.WriteDU(m.RanchUID)
}

type RanchEnterRanchCancel struct{}

func (*RanchEnterRanchCancel) ID() packet.CommandID { return packet.AcCmdCREnterRanchCancel }
func (*RanchEnterRanchCancel) Decode(*packet.Reader) {}
func (*RanchEnterRanchCancel) Encode(*packet.Writer) {}

// RanchEnterRanchNotify tells present members about the newcomer. The
// newcomer itself receives the full RanchEnterRanchOK instead.
type RanchEnterRanchNotify struct {
	Character RanchCharacter
}

func (*RanchEnterRanchNotify) ID() packet.CommandID { return packet.AcCmdCREnterRanchNotify }

func (m *RanchEnterRanchNotify) Decode(r *packet.Reader) {
	m.Character.Decode(r)
}

func (m *RanchEnterRanchNotify) Encode(w *packet.Writer) {
	m.Character.Encode(w)
}

// RanchEnterRanchOK is the full room state sent to the entering
// player. Slot indices are shared across the horse and character
// lists: if horses occupy 1..3 the characters start at 4.
type RanchEnterRanchOK struct {
	RanchID   uint32
	Unk0      string
	RanchName string

	Horses     []RanchHorse
	Characters []RanchCharacter

	Unk1 uint64
	Unk2 uint32
	Unk3 uint32

	Unk4 []RanchUnk4

	Unk5 byte
	Unk6 uint32
	Unk7 uint32

	Unk8 uint32
	Unk9 uint32

	Unk10 [3]RanchUnk10

	Unk11 RanchUnk11

	Unk12 uint32
}

func (*RanchEnterRanchOK) ID() packet.CommandID { return packet.AcCmdCREnterRanchOK }

func (m *RanchEnterRanchOK) Decode(r *packet.Reader) {
	m.RanchID = r.ReadDU()
	m.Unk0 = r.ReadS()
	m.RanchName = r.ReadS()
	packet.ReadList8(r, &m.Horses)
	packet.ReadList8(r, &m.Characters)
	m.Unk1 = r.ReadQ()
	m.Unk2 = r.ReadDU()
	m.Unk3 = r.ReadDU()
	packet.ReadList8(r, &m.Unk4)
	m.Unk5 = r.ReadC()
	m.Unk6 = r.ReadDU()
	m.Unk7 = r.ReadDU()
	m.Unk8 = r.ReadDU()
	m.Unk9 = r.ReadDU()
	for i := range m.Unk10 {
		m.Unk10[i].Decode(r)
	}
	m.Unk11.Decode(r)
	m.Unk12 = r.ReadDU()
}

func (m *RanchEnterRanchOK) Encode(w *packet.Writer) {
	w.WriteDU(m.RanchID)
	w.WriteS(m.Unk0)
	w.WriteS(m.RanchName)
	packet.WriteList8(w, m.Horses)
	packet.WriteList8(w, m.Characters)
	w.WriteQ(m.Unk1)
	w.WriteDU(m.Unk2)
	w.WriteDU(m.Unk3)
	packet.WriteList8(w, m.Unk4)
	w.WriteC(m.Unk5)
	w.WriteDU(m.Unk6)
	w.WriteDU(m.Unk7)
	w.WriteDU(m.Unk8)
	w.WriteDU(m.Unk9)
	for i := range m.Unk10 {
		m.Unk10[i].Encode(w)
	}
	m.Unk11.Encode(w)
	w.WriteDU(m.Unk12)
}

type RanchUnk4 struct {
	Unk0 uint32
	Unk1 uint16
	Unk2 uint32
}

func (u *RanchUnk4) Decode(r *packet.Reader) {
	u.Unk0 = r.ReadDU()
	u.Unk1 = r.ReadH()
	u.Unk2 = r.ReadDU()
}

func (u *RanchUnk4) Encode(w *packet.Writer) {
	w.WriteDU(u.Unk0)
	w.WriteH(u.Unk1)
	w.WriteDU(u.Unk2)
}

type RanchUnk10 struct {
	HorseTID uint32
	Unk0     uint32
	Unk1     uint32
	Unk2     byte
	Unk3     uint32
	Unk4     uint32
	Unk5     uint32
	Unk6     uint32
	Unk7     uint32
}

func (u *RanchUnk10) Decode(r *packet.Reader) {
	u.HorseTID = r.ReadDU()
	u.Unk0 = r.ReadDU()
	u.Unk1 = r.ReadDU()
	u.Unk2 = r.ReadC()
	u.Unk3 = r.ReadDU()
	u.Unk4 = r.ReadDU()
	u.Unk5 = r.ReadDU()
	u.Unk6 = r.ReadDU()
	u.Unk7 = r.ReadDU()
}

func (u *RanchUnk10) Encode(w *packet.Writer) {
	w.WriteDU(u.HorseTID)
	w.WriteDU(u.Unk0)
	w.WriteDU(u.Unk1)
	w.WriteC(u.Unk2)
	w.WriteDU(u.Unk3)
	w.WriteDU(u.Unk4)
	w.WriteDU(u.Unk5)
	w.WriteDU(u.Unk6)
	w.WriteDU(u.Unk7)
}

// LeaveRanch is a graceful exit request. The slot index is retired,
// never reassigned for the lifetime of the room.
type LeaveRanch struct{}

func (*LeaveRanch) ID() packet.CommandID { return packet.AcCmdCRLeaveRanch }
func (*LeaveRanch) Decode(*packet.Reader) {}
func (*LeaveRanch) Encode(*packet.Writer) {}

type LeaveRanchOK struct{}

func (*LeaveRanchOK) ID() packet.CommandID { return packet.AcCmdCRLeaveRanchOK }
func (*LeaveRanchOK) Decode(*packet.Reader) {}
func (*LeaveRanchOK) Encode(*packet.Writer) {}

// LeaveRanchNotify removes the departed player from everyone's view.
type LeaveRanchNotify struct {
	CharacterUID uint32
}

func (*LeaveRanchNotify) ID() packet.CommandID { return packet.AcCmdCRLeaveRanchNotify }

func (m *LeaveRanchNotify) Decode(r *packet.Reader) {
	m.CharacterUID = r.ReadDU()
}

func (m *LeaveRanchNotify) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterUID)
}

// RanchHeartbeat is the ranch keepalive. Empty payload.
type RanchHeartbeat struct{}

func (*RanchHeartbeat) ID() packet.CommandID { return packet.AcCmdCRHeartbeat }
func (*RanchHeartbeat) Decode(*packet.Reader) {}
func (*RanchHeartbeat) Encode(*packet.Writer) {}

// RanchSnapshot is the client's frequent position report. The payload
// is a tagged union: tag 0 carries coordinates, tag 1 omits them.
type RanchSnapshot struct {
	Snapshot Snapshot
}

func (*RanchSnapshot) ID() packet.CommandID { return packet.AcCmdCRRanchSnapshot }

func (m *RanchSnapshot) Decode(r *packet.Reader) {
	m.Snapshot.Decode(r)
}

func (m *RanchSnapshot) Encode(w *packet.Writer) {
	m.Snapshot.Encode(w)
}

// RanchSnapshotNotify relays a member's snapshot to the rest of the
// room, prefixed with the sender's slot index.
type RanchSnapshotNotify struct {
	RanchIndex uint16
	Snapshot   Snapshot
}

func (*RanchSnapshotNotify) ID() packet.CommandID { return packet.AcCmdCRRanchSnapshotNotify }

func (m *RanchSnapshotNotify) Decode(r *packet.Reader) {
	m.RanchIndex = r.ReadH()
	m.Snapshot.Decode(r)
}

func (m *RanchSnapshotNotify) Encode(w *packet.Writer) {
	w.WriteH(m.RanchIndex)
	m.Snapshot.Encode(w)
}

type RanchChat struct {
	Message string
	Unk0    byte
	Unk1    byte
}

func (*RanchChat) ID() packet.CommandID { return packet.AcCmdCRRanchChat }

func (m *RanchChat) Decode(r *packet.Reader) {
	m.Message = r.ReadS()
	m.Unk0 = r.ReadC()
	m.Unk1 = r.ReadC()
}

func (m *RanchChat) Encode(w *packet.Writer) {
	w.WriteS(m.Message)
	w.WriteC(m.Unk0)
	w.WriteC(m.Unk1)
}

type RanchChatNotify struct {
	Author  string
	Message string
	IsBlue  byte
	Unk1    byte
}

func (*RanchChatNotify) ID() packet.CommandID { return packet.AcCmdCRRanchChatNotify }

func (m *RanchChatNotify) Decode(r *packet.Reader) {
	m.Author = r.ReadS()
	m.Message = r.ReadS()
	m.IsBlue = r.ReadC()
	m.Unk1 = r.ReadC()
}

func (m *RanchChatNotify) Encode(w *packet.Writer) {
	w.WriteS(m.Author)
	w.WriteS(m.Message)
	w.WriteC(m.IsBlue)
	w.WriteC(m.Unk1)
}

// RanchCmdAction carries an emote with an opaque spatial trailer the
// server relays without interpreting.
type RanchCmdAction struct {
	Unk0     uint16
	Snapshot []byte
}

func (*RanchCmdAction) ID() packet.CommandID { return packet.AcCmdCRRanchCmdAction }

func (m *RanchCmdAction) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadH()
	m.Snapshot = r.ReadRest()
}

func (m *RanchCmdAction) Encode(w *packet.Writer) {
	w.WriteH(m.Unk0)
	w.WriteBytes(m.Snapshot)
}

type RanchCmdActionNotify struct {
	Unk0 uint16
	Unk1 uint16
	Unk2 byte
}

func (*RanchCmdActionNotify) ID() packet.CommandID { return packet.AcCmdCRRanchCmdActionNotify }

func (m *RanchCmdActionNotify) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadH()
	m.Unk1 = r.ReadH()
	m.Unk2 = r.ReadC()
}

func (m *RanchCmdActionNotify) Encode(w *packet.Writer) {
	w.WriteH(m.Unk0)
	w.WriteH(m.Unk1)
	w.WriteC(m.Unk2)
}

type UpdateMountNickname struct {
	UID      uint32
	Nickname string
	Unk1     uint32
}

func (*UpdateMountNickname) ID() packet.CommandID { return packet.AcCmdCRUpdateMountNickname }

func (m *UpdateMountNickname) Decode(r *packet.Reader) {
	m.UID = r.ReadDU()
	m.Nickname = r.ReadS()
	m.Unk1 = r.ReadDU()
}

func (m *UpdateMountNickname) Encode(w *packet.Writer) {
	w.WriteDU(m.UID)
	w.WriteS(m.Nickname)
	w.WriteDU(m.Unk1)
}

type UpdateMountNicknameOK struct {
	UID      uint32
	Nickname string
	Unk1     uint32
	Unk2     uint32
}

func (*UpdateMountNicknameOK) ID() packet.CommandID { return packet.AcCmdCRUpdateMountNicknameOK }

func (m *UpdateMountNicknameOK) Decode(r *packet.Reader) {
	m.UID = r.ReadDU()
	m.Nickname = r.ReadS()
	m.Unk1 = r.ReadDU()
	m.Unk2 = r.ReadDU()
}

func (m *UpdateMountNicknameOK) Encode(w *packet.Writer) {
	w.WriteDU(m.UID)
	w.WriteS(m.Nickname)
	w.WriteDU(m.Unk1)
	w.WriteDU(m.Unk2)
}

type UpdateMountNicknameCancel struct {
	Unk0 byte
}

func (*UpdateMountNicknameCancel) ID() packet.CommandID {
	return packet.AcCmdCRUpdateMountNicknameCancel
}

func (m *UpdateMountNicknameCancel) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadC()
}

func (m *UpdateMountNicknameCancel) Encode(w *packet.Writer) {
	w.WriteC(m.Unk0)
}

type WearEquipment struct {
	ItemUID uint32
	Member  byte
}

func (*WearEquipment) ID() packet.CommandID { return packet.AcCmdCRWearEquipment }

func (m *WearEquipment) Decode(r *packet.Reader) {
	m.ItemUID = r.ReadDU()
	m.Member = r.ReadC()
}

func (m *WearEquipment) Encode(w *packet.Writer) {
	w.WriteDU(m.ItemUID)
	w.WriteC(m.Member)
}

type WearEquipmentOK struct {
	ItemUID uint32
	Member  byte
}

func (*WearEquipmentOK) ID() packet.CommandID { return packet.AcCmdCRWearEquipmentOK }

func (m *WearEquipmentOK) Decode(r *packet.Reader) {
	m.ItemUID = r.ReadDU()
	m.Member = r.ReadC()
}

func (m *WearEquipmentOK) Encode(w *packet.Writer) {
	w.WriteDU(m.ItemUID)
	w.WriteC(m.Member)
}

type WearEquipmentCancel struct {
	Unk0 uint32
	Unk1 byte
}

func (*WearEquipmentCancel) ID() packet.CommandID { return packet.AcCmdCRWearEquipmentCancel }

func (m *WearEquipmentCancel) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadDU()
	m.Unk1 = r.ReadC()
}

func (m *WearEquipmentCancel) Encode(w *packet.Writer) {
	w.WriteDU(m.Unk0)
	w.WriteC(m.Unk1)
}

type RequestStorage struct {
	Val0 byte
	Val1 uint16
}

func (*RequestStorage) ID() packet.CommandID { return packet.AcCmdCRRequestStorage }

func (m *RequestStorage) Decode(r *packet.Reader) {
	m.Val0 = r.ReadC()
	m.Val1 = r.ReadH()
}

func (m *RequestStorage) Encode(w *packet.Writer) {
	w.WriteC(m.Val0)
	w.WriteH(m.Val1)
}

// RequestStorageOK pages gift-box entries. The client caps a page at
// 33 entries.
type RequestStorageOK struct {
	Val0 byte
	Val1 uint16
	Val2 uint16
	Val3 []StorageItem
}

func (*RequestStorageOK) ID() packet.CommandID { return packet.AcCmdCRRequestStorageOK }

func (m *RequestStorageOK) Decode(r *packet.Reader) {
	m.Val0 = r.ReadC()
	m.Val1 = r.ReadH()
	m.Val2 = r.ReadH()
	packet.ReadList8(r, &m.Val3)
}

func (m *RequestStorageOK) Encode(w *packet.Writer) {
	w.WriteC(m.Val0)
	w.WriteH(m.Val1)
	w.WriteH(m.Val2)
	packet.WriteList8(w, m.Val3)
}

type RequestStorageCancel struct {
	Val0 byte
	Val1 byte
}

func (*RequestStorageCancel) ID() packet.CommandID { return packet.AcCmdCRRequestStorageCancel }

func (m *RequestStorageCancel) Decode(r *packet.Reader) {
	m.Val0 = r.ReadC()
	m.Val1 = r.ReadC()
}

func (m *RequestStorageCancel) Encode(w *packet.Writer) {
	w.WriteC(m.Val0)
	w.WriteC(m.Val1)
}

// StorageItem is one gift-box entry. DateAndTime packs minute, hour,
// day, month and year into bit fields, low to high.
type StorageItem struct {
	UID         uint32
	Val1        uint32
	Val2        byte
	Val3        uint32
	Val4        uint32
	Val5        uint32
	Val6        uint32
	Sender      string
	Message     string
	DateAndTime uint32
}

func (s *StorageItem) Decode(r *packet.Reader) {
	s.UID = r.ReadDU()
	s.Val1 = r.ReadDU()
	s.Val2 = r.ReadC()
	s.Val3 = r.ReadDU()
	s.Val4 = r.ReadDU()
	s.Val5 = r.ReadDU()
	s.Val6 = r.ReadDU()
	s.Sender = r.ReadS()
	s.Message = r.ReadS()
	s.DateAndTime = r.ReadDU()
}

func (s *StorageItem) Encode(w *packet.Writer) {
	w.WriteDU(s.UID)
	w.WriteDU(s.Val1)
	w.WriteC(s.Val2)
	w.WriteDU(s.Val3)
	w.WriteDU(s.Val4)
	w.WriteDU(s.Val5)
	w.WriteDU(s.Val6)
	w.WriteS(s.Sender)
	w.WriteS(s.Message)
	w.WriteDU(s.DateAndTime)
}

type RequestNpcDressList struct {
	RanchUID uint32
}

func (*RequestNpcDressList) ID() packet.CommandID { return packet.AcCmdCRRequestNpcDressList }

func (m *RequestNpcDressList) Decode(r *packet.Reader) {
	m.RanchUID = r.ReadDU()
}

func (m *RequestNpcDressList) Encode(w *packet.Writer) {
	w.WriteDU(m.RanchUID)
}

// RequestNpcDressListOK returns at most ten dress items.
type RequestNpcDressListOK struct {
	RanchUID  uint32
	DressList []Item
}

func (*RequestNpcDressListOK) ID() packet.CommandID { return packet.AcCmdCRRequestNpcDressListOK }

func (m *RequestNpcDressListOK) Decode(r *packet.Reader) {
	m.RanchUID = r.ReadDU()
	packet.ReadList8(r, &m.DressList)
}

func (m *RequestNpcDressListOK) Encode(w *packet.Writer) {
	w.WriteDU(m.RanchUID)
	packet.WriteList8(w, m.DressList)
}

type RequestNpcDressListCancel struct{}

func (*RequestNpcDressListCancel) ID() packet.CommandID {
	return packet.AcCmdCRRequestNpcDressListCancel
}

func (*RequestNpcDressListCancel) Decode(*packet.Reader) {}
func (*RequestNpcDressListCancel) Encode(*packet.Writer) {}
