package command

import "github.com/aligo/server/internal/net/packet"

// LobbyHeartbeat is the lobby keepalive. Empty payload.
type LobbyHeartbeat struct{}

func (*LobbyHeartbeat) ID() packet.CommandID { return packet.AcCmdCLHeartbeat }
func (*LobbyHeartbeat) Decode(*packet.Reader) {}
func (*LobbyHeartbeat) Encode(*packet.Writer) {}

type CreateNickname struct {
	Nickname  string
	Character Character
	Unk0      uint32
}

func (*CreateNickname) ID() packet.CommandID { return packet.AcCmdCLCreateNickname }

func (m *CreateNickname) Decode(r *packet.Reader) {
	m.Nickname = r.ReadS()
	m.Character.Decode(r)
	m.Unk0 = r.ReadDU()
}

func (m *CreateNickname) Encode(w *packet.Writer) {
	w.WriteS(m.Nickname)
	m.Character.Encode(w)
	w.WriteDU(m.Unk0)
}

// CreateNicknameNotify asks the client to open the first-run nickname
// dialog. Empty payload.
type CreateNicknameNotify struct{}

func (*CreateNicknameNotify) ID() packet.CommandID { return packet.AcCmdCLCreateNicknameNotify }
func (*CreateNicknameNotify) Decode(*packet.Reader) {}
func (*CreateNicknameNotify) Encode(*packet.Writer) {}

type CreateNicknameCancel struct {
	Error byte
}

func (*CreateNicknameCancel) ID() packet.CommandID { return packet.AcCmdCLCreateNicknameCancel }

func (m *CreateNicknameCancel) Decode(r *packet.Reader) {
	m.Error = r.ReadC()
}

func (m *CreateNicknameCancel) Encode(w *packet.Writer) {
	w.WriteC(m.Error)
}

type ShowInventory struct{}

func (*ShowInventory) ID() packet.CommandID { return packet.AcCmdCLShowInventory }
func (*ShowInventory) Decode(*packet.Reader) {}
func (*ShowInventory) Encode(*packet.Writer) {}

type ShowInventoryOK struct {
	Items  []Item
	Horses []Horse
}

func (*ShowInventoryOK) ID() packet.CommandID { return packet.AcCmdCLShowInventoryOK }

func (m *ShowInventoryOK) Decode(r *packet.Reader) {
	packet.ReadList8(r, &m.Items)
	packet.ReadList8(r, &m.Horses)
}

func (m *ShowInventoryOK) Encode(w *packet.Writer) {
	packet.WriteList8(w, m.Items)
	packet.WriteList8(w, m.Horses)
}

type AchievementCompleteList struct {
	CharacterID uint32
}

func (*AchievementCompleteList) ID() packet.CommandID { return packet.AcCmdCLAchievementCompleteList }

func (m *AchievementCompleteList) Decode(r *packet.Reader) {
	m.CharacterID = r.ReadDU()
}

func (m *AchievementCompleteList) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterID)
}

type AchievementCompleteListOK struct {
	CharacterID  uint32
	Achievements []Quest
}

func (*AchievementCompleteListOK) ID() packet.CommandID {
	return packet.AcCmdCLAchievementCompleteListOK
}

func (m *AchievementCompleteListOK) Decode(r *packet.Reader) {
	m.CharacterID = r.ReadDU()
	packet.ReadList16(r, &m.Achievements)
}

func (m *AchievementCompleteListOK) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterID)
	packet.WriteList16(w, m.Achievements)
}

type RequestLeagueInfo struct{}

func (*RequestLeagueInfo) ID() packet.CommandID { return packet.AcCmdCLRequestLeagueInfo }
func (*RequestLeagueInfo) Decode(*packet.Reader) {}
func (*RequestLeagueInfo) Encode(*packet.Writer) {}

type RequestLeagueInfoOK struct {
	Unk0  byte
	Unk1  byte
	Unk2  uint32
	Unk3  uint32
	Unk4  byte
	Unk5  byte
	Unk6  uint32
	Unk7  uint32
	Unk8  byte
	Unk9  byte
	Unk10 uint32
	Unk11 byte
	Unk12 byte
	Unk13 byte
}

func (*RequestLeagueInfoOK) ID() packet.CommandID { return packet.AcCmdCLRequestLeagueInfoOK }

func (m *RequestLeagueInfoOK) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadC()
	m.Unk1 = r.ReadC()
	m.Unk2 = r.ReadDU()
	m.Unk3 = r.ReadDU()
	m.Unk4 = r.ReadC()
	m.Unk5 = r.ReadC()
	m.Unk6 = r.ReadDU()
	m.Unk7 = r.ReadDU()
	m.Unk8 = r.ReadC()
	m.Unk9 = r.ReadC()
	m.Unk10 = r.ReadDU()
	m.Unk11 = r.ReadC()
	m.Unk12 = r.ReadC()
	m.Unk13 = r.ReadC()
}

func (m *RequestLeagueInfoOK) Encode(w *packet.Writer) {
	w.WriteC(m.Unk0)
	w.WriteC(m.Unk1)
	w.WriteDU(m.Unk2)
	w.WriteDU(m.Unk3)
	w.WriteC(m.Unk4)
	w.WriteC(m.Unk5)
	w.WriteDU(m.Unk6)
	w.WriteDU(m.Unk7)
	w.WriteC(m.Unk8)
	w.WriteC(m.Unk9)
	w.WriteDU(m.Unk10)
	w.WriteC(m.Unk11)
	w.WriteC(m.Unk12)
	w.WriteC(m.Unk13)
}

type RequestLeagueInfoCancel struct{}

func (*RequestLeagueInfoCancel) ID() packet.CommandID { return packet.AcCmdCLRequestLeagueInfoCancel }
func (*RequestLeagueInfoCancel) Decode(*packet.Reader) {}
func (*RequestLeagueInfoCancel) Encode(*packet.Writer) {}

type RequestQuestList struct {
	CharacterID uint32
}

func (*RequestQuestList) ID() packet.CommandID { return packet.AcCmdCLRequestQuestList }

func (m *RequestQuestList) Decode(r *packet.Reader) {
	m.CharacterID = r.ReadDU()
}

func (m *RequestQuestList) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterID)
}

type RequestQuestListOK struct {
	CharacterID uint32
	Quests      []Quest
}

func (*RequestQuestListOK) ID() packet.CommandID { return packet.AcCmdCLRequestQuestListOK }

func (m *RequestQuestListOK) Decode(r *packet.Reader) {
	m.CharacterID = r.ReadDU()
	packet.ReadList16(r, &m.Quests)
}

func (m *RequestQuestListOK) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterID)
	packet.WriteList16(w, m.Quests)
}

type RequestDailyQuestList struct {
	CharacterID uint32
}

func (*RequestDailyQuestList) ID() packet.CommandID { return packet.AcCmdCLRequestDailyQuestList }

func (m *RequestDailyQuestList) Decode(r *packet.Reader) {
	m.CharacterID = r.ReadDU()
}

func (m *RequestDailyQuestList) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterID)
}

type RequestDailyQuestListOK struct {
	CharacterID uint32
	Quests      []Quest
	Val1        []DailyQuestUnk
}

func (*RequestDailyQuestListOK) ID() packet.CommandID { return packet.AcCmdCLRequestDailyQuestListOK }

func (m *RequestDailyQuestListOK) Decode(r *packet.Reader) {
	m.CharacterID = r.ReadDU()
	packet.ReadList16(r, &m.Quests)
	packet.ReadList16(r, &m.Val1)
}

func (m *RequestDailyQuestListOK) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterID)
	packet.WriteList16(w, m.Quests)
	packet.WriteList16(w, m.Val1)
}

type DailyQuestUnk struct {
	Val0 uint16
	Val1 uint32
	Val2 byte
	Val3 byte
}

func (u *DailyQuestUnk) Decode(r *packet.Reader) {
	u.Val0 = r.ReadH()
	u.Val1 = r.ReadDU()
	u.Val2 = r.ReadC()
	u.Val3 = r.ReadC()
}

func (u *DailyQuestUnk) Encode(w *packet.Writer) {
	w.WriteH(u.Val0)
	w.WriteDU(u.Val1)
	w.WriteC(u.Val2)
	w.WriteC(u.Val3)
}

type RequestSpecialEventList struct {
	Unk0 uint32
}

func (*RequestSpecialEventList) ID() packet.CommandID { return packet.AcCmdCLRequestSpecialEventList }

func (m *RequestSpecialEventList) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadDU()
}

func (m *RequestSpecialEventList) Encode(w *packet.Writer) {
	w.WriteDU(m.Unk0)
}

type RequestSpecialEventListOK struct {
	Unk0   uint32
	Quests []Quest
	Events []SpecialEvent
}

func (*RequestSpecialEventListOK) ID() packet.CommandID {
	return packet.AcCmdCLRequestSpecialEventListOK
}

func (m *RequestSpecialEventListOK) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadDU()
	packet.ReadList16(r, &m.Quests)
	packet.ReadList16(r, &m.Events)
}

func (m *RequestSpecialEventListOK) Encode(w *packet.Writer) {
	w.WriteDU(m.Unk0)
	packet.WriteList16(w, m.Quests)
	packet.WriteList16(w, m.Events)
}

type SpecialEvent struct {
	Unk0 uint16
	Unk1 uint32
}

func (e *SpecialEvent) Decode(r *packet.Reader) {
	e.Unk0 = r.ReadH()
	e.Unk1 = r.ReadDU()
}

func (e *SpecialEvent) Encode(w *packet.Writer) {
	w.WriteH(e.Unk0)
	w.WriteDU(e.Unk1)
}

type GetMessengerInfo struct{}

func (*GetMessengerInfo) ID() packet.CommandID { return packet.AcCmdCLGetMessengerInfo }
func (*GetMessengerInfo) Decode(*packet.Reader) {}
func (*GetMessengerInfo) Encode(*packet.Writer) {}

type GetMessengerInfoOK struct {
	Code    uint32
	Address Address
}

func (*GetMessengerInfoOK) ID() packet.CommandID { return packet.AcCmdCLGetMessengerInfoOK }

func (m *GetMessengerInfoOK) Decode(r *packet.Reader) {
	m.Code = r.ReadDU()
	m.Address.Decode(r)
}

func (m *GetMessengerInfoOK) Encode(w *packet.Writer) {
	w.WriteDU(m.Code)
	m.Address.Encode(w)
}

type GetMessengerInfoCancel struct{}

func (*GetMessengerInfoCancel) ID() packet.CommandID { return packet.AcCmdCLGetMessengerInfoCancel }
func (*GetMessengerInfoCancel) Decode(*packet.Reader) {}
func (*GetMessengerInfoCancel) Encode(*packet.Writer) {}

// EnterRanch asks the lobby for a ticket into a ranch room. The OK
// response points the client at the ranch server with a one-time code.
type EnterRanch struct {
	CharacterID uint32
	Unk1        string
	Unk2        byte
}

func (*EnterRanch) ID() packet.CommandID { return packet.AcCmdCLEnterRanch }

func (m *EnterRanch) Decode(r *packet.Reader) {
	m.CharacterID = r.ReadDU()
	m.Unk1 = r.ReadS()
	m.Unk2 = r.ReadC()
}

func (m *EnterRanch) Encode(w *packet.Writer) {
	w.WriteDU(m.CharacterID)
	w.WriteS(m.Unk1)
	w.WriteC(m.Unk2)
}

// EnterRanchOK hands the client off to the ranch server. The address
// is a raw big-endian u32 here, unlike the octet form elsewhere.
type EnterRanchOK struct {
	RanchUID uint32
	Code     uint32
	IP       uint32
	Port     uint16
}

func (*EnterRanchOK) ID() packet.CommandID { return packet.AcCmdCLEnterRanchOK }

func (m *EnterRanchOK) Decode(r *packet.Reader) {
	m.RanchUID = r.ReadDU()
	m.Code = r.ReadDU()
	m.IP = r.ReadDU()
	m.Port = r.ReadH()
}

func (m *EnterRanchOK) Encode(w *packet.Writer) {
	w.WriteDU(m.RanchUID)
	w.WriteDU(m.Code)
	w.WriteDU(m.IP)
	w.WriteH(m.Port)
}

type EnterRanchCancel struct {
	Unk0 uint16
}

func (*EnterRanchCancel) ID() packet.CommandID { return packet.AcCmdCLEnterRanchCancel }

func (m *EnterRanchCancel) Decode(r *packet.Reader) {
	m.Unk0 = r.ReadH()
}

func (m *EnterRanchCancel) Encode(w *packet.Writer) {
	w.WriteH(m.Unk0)
}
