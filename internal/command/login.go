package command

import "github.com/aligo/server/internal/net/packet"

// Login is the first command a client sends after connecting to the
// lobby. The auth key is issued out of band by the web launcher.
type Login struct {
	Constant0 uint16
	Constant1 uint16
	LoginID   string
	MemberNo  uint32
	AuthKey   string
	Val0      byte
}

func (*Login) ID() packet.CommandID { return packet.AcCmdCLLogin }

func (m *Login) Decode(r *packet.Reader) {
	m.Constant0 = r.ReadH()
	m.Constant1 = r.ReadH()
	m.LoginID = r.ReadS()
	m.MemberNo = r.ReadDU()
	m.AuthKey = r.ReadS()
	m.Val0 = r.ReadC()
}

func (m *Login) Encode(w *packet.Writer) {
	w.WriteH(m.Constant0)
	w.WriteH(m.Constant1)
	w.WriteS(m.LoginID)
	w.WriteDU(m.MemberNo)
	w.WriteS(m.AuthKey)
	w.WriteC(m.Val0)
}

// LoginCancelReason selects the error dialog the client shows.
type LoginCancelReason byte

const (
	LoginCancelInvalidUser        LoginCancelReason = 1
	LoginCancelDuplicated         LoginCancelReason = 2
	LoginCancelInvalidVersion     LoginCancelReason = 3
	LoginCancelInvalidEquipment   LoginCancelReason = 4
	LoginCancelInvalidLoginID     LoginCancelReason = 5
	LoginCancelDisconnectYourself LoginCancelReason = 6
)

type LoginCancel struct {
	Reason LoginCancelReason
}

func (*LoginCancel) ID() packet.CommandID { return packet.AcCmdCLLoginCancel }

func (m *LoginCancel) Decode(r *packet.Reader) {
	m.Reason = LoginCancelReason(r.ReadC())
}

func (m *LoginCancel) Encode(w *packet.Writer) {
	w.WriteC(byte(m.Reason))
}

// LoginOK carries the whole initial player state: identity, wallet,
// equipment, per-account client options, the bound character and
// mount, and the lobby's announced address plus scrambling constant
// the client must apply from the next frame on.
type LoginOK struct {
	LobbyTime WinFileTime
	Val0      uint32

	SelfUID       uint32
	Nickname      string
	Motd          string
	ProfileGender Gender
	Status        string

	CharacterEquipment []Item
	MountEquipment     []Item

	Level   uint16
	Carrots uint32
	Val1    uint32
	Val2    uint32
	Val3    byte

	Options LoginOptions

	AgeGroup AgeGroup
	HideAge  byte

	Val5 []LoginVal5

	Val6 string

	LobbyServerAddress Address
	ScramblingConstant uint32

	Character Character
	Horse     Horse

	Val7 LoginVal7

	Bitfield uint32

	Val9 LoginVal9

	Val10 uint32

	Val11 LoginVal11
	Val12 LoginVal12
	Val13 LoginVal13

	Val14 uint32
	Val15 PlayerRelatedThing
	Val16 byte

	Val17 AnotherPlayerRelatedThing

	Val18 uint32
	Val19 uint32
	Val20 uint32

	Val21 YetAnotherPlayerRelatedThing
}

func (*LoginOK) ID() packet.CommandID { return packet.AcCmdCLLoginOK }

func (m *LoginOK) Decode(r *packet.Reader) {
	m.LobbyTime.Decode(r)
	m.Val0 = r.ReadDU()
	m.SelfUID = r.ReadDU()
	m.Nickname = r.ReadS()
	m.Motd = r.ReadS()
	m.ProfileGender = Gender(r.ReadC())
	m.Status = r.ReadS()
	packet.ReadList8(r, &m.CharacterEquipment)
	packet.ReadList8(r, &m.MountEquipment)
	m.Level = r.ReadH()
	m.Carrots = r.ReadDU()
	m.Val1 = r.ReadDU()
	m.Val2 = r.ReadDU()
	m.Val3 = r.ReadC()
	m.Options.Decode(r)
	m.AgeGroup = AgeGroup(r.ReadC())
	m.HideAge = r.ReadC()
	packet.ReadList8(r, &m.Val5)
	m.Val6 = r.ReadS()
	m.LobbyServerAddress.Decode(r)
	m.ScramblingConstant = r.ReadDU()
	m.Character.Decode(r)
	m.Horse.Decode(r)
	m.Val7.Decode(r)
	m.Bitfield = r.ReadDU()
	m.Val9.Decode(r)
	m.Val10 = r.ReadDU()
	m.Val11.Decode(r)
	m.Val12.Decode(r)
	m.Val13.Decode(r)
	m.Val14 = r.ReadDU()
	m.Val15.Decode(r)
	m.Val16 = r.ReadC()
	m.Val17.Decode(r)
	m.Val18 = r.ReadDU()
	m.Val19 = r.ReadDU()
	m.Val20 = r.ReadDU()
	m.Val21.Decode(r)
}

func (m *LoginOK) Encode(w *packet.Writer) {
	m.LobbyTime.Encode(w)
	w.WriteDU(m.Val0)
	w.WriteDU(m.SelfUID)
	w.WriteS(m.Nickname)
	w.WriteS(m.Motd)
	w.WriteC(byte(m.ProfileGender))
	w.WriteS(m.Status)
	packet.WriteList8(w, m.CharacterEquipment)
	packet.WriteList8(w, m.MountEquipment)
	w.WriteH(m.Level)
	w.WriteDU(m.Carrots)
	w.WriteDU(m.Val1)
	w.WriteDU(m.Val2)
	w.WriteC(m.Val3)
	m.Options.Encode(w)
	w.WriteC(byte(m.AgeGroup))
	w.WriteC(m.HideAge)
	packet.WriteList8(w, m.Val5)
	w.WriteS(m.Val6)
	m.LobbyServerAddress.Encode(w)
	w.WriteDU(m.ScramblingConstant)
	m.Character.Encode(w)
	m.Horse.Encode(w)
	m.Val7.Encode(w)
	w.WriteDU(m.Bitfield)
	m.Val9.Encode(w)
	w.WriteDU(m.Val10)
	m.Val11.Encode(w)
	m.Val12.Encode(w)
	m.Val13.Encode(w)
	w.WriteDU(m.Val14)
	m.Val15.Encode(w)
	w.WriteC(m.Val16)
	m.Val17.Encode(w)
	w.WriteDU(m.Val18)
	w.WriteDU(m.Val19)
	w.WriteDU(m.Val20)
	m.Val21.Encode(w)
}

// LoginOptions is a bitmask-gated group: only option blocks whose bit
// is set in the leading u32 appear in the payload. Bit 1 is the
// gamepad block; the client tolerates its absence so it is left
// unimplemented for now.
type LoginOptions struct {
	Keyboard *KeyboardOptions
	Macros   *MacroOptions
	Values   *uint32
}

func (o *LoginOptions) fields() []packet.OptionalField {
	return []packet.OptionalField{
		{
			Bit:     1 << 0,
			Present: func() bool { return o.Keyboard != nil },
			Decode: func(r *packet.Reader) {
				o.Keyboard = new(KeyboardOptions)
				o.Keyboard.Decode(r)
			},
			Encode: func(w *packet.Writer) { o.Keyboard.Encode(w) },
		},
		{
			Bit:     1 << 3,
			Present: func() bool { return o.Macros != nil },
			Decode: func(r *packet.Reader) {
				o.Macros = new(MacroOptions)
				o.Macros.Decode(r)
			},
			Encode: func(w *packet.Writer) { o.Macros.Encode(w) },
		},
		{
			Bit:     1 << 4,
			Present: func() bool { return o.Values != nil },
			Decode: func(r *packet.Reader) {
				v := r.ReadDU()
				o.Values = &v
			},
			Encode: func(w *packet.Writer) { w.WriteDU(*o.Values) },
		},
	}
}

func (o *LoginOptions) Decode(r *packet.Reader) {
	packet.ReadMasked(r, o.fields()...)
}

func (o *LoginOptions) Encode(w *packet.Writer) {
	packet.WriteMasked(w, o.fields()...)
}

type KeyboardOptions struct {
	Bindings []KeyboardBinding
}

func (o *KeyboardOptions) Decode(r *packet.Reader) {
	packet.ReadList8(r, &o.Bindings)
}

func (o *KeyboardOptions) Encode(w *packet.Writer) {
	packet.WriteList8(w, o.Bindings)
}

type KeyboardBinding struct {
	Index uint16
	Type  byte
	Key   byte
}

func (b *KeyboardBinding) Decode(r *packet.Reader) {
	b.Index = r.ReadH()
	b.Type = r.ReadC()
	b.Key = r.ReadC()
}

func (b *KeyboardBinding) Encode(w *packet.Writer) {
	w.WriteH(b.Index)
	w.WriteC(b.Type)
	w.WriteC(b.Key)
}

// MacroOptions is a fixed block of eight chat macro slots.
type MacroOptions struct {
	Macros [8]string
}

func (o *MacroOptions) Decode(r *packet.Reader) {
	for i := range o.Macros {
		o.Macros[i] = r.ReadS()
	}
}

func (o *MacroOptions) Encode(w *packet.Writer) {
	for i := range o.Macros {
		w.WriteS(o.Macros[i])
	}
}

type LoginVal5 struct {
	Val0 uint16
	Val1 []LoginVal5Val1
}

func (v *LoginVal5) Decode(r *packet.Reader) {
	v.Val0 = r.ReadH()
	packet.ReadList8(r, &v.Val1)
}

func (v *LoginVal5) Encode(w *packet.Writer) {
	w.WriteH(v.Val0)
	packet.WriteList8(w, v.Val1)
}

type LoginVal5Val1 struct {
	Val0 uint32
	Val1 uint32
}

func (v *LoginVal5Val1) Decode(r *packet.Reader) {
	v.Val0 = r.ReadDU()
	v.Val1 = r.ReadDU()
}

func (v *LoginVal5Val1) Encode(w *packet.Writer) {
	w.WriteDU(v.Val0)
	w.WriteDU(v.Val1)
}

type LoginVal7 struct {
	Values []LoginVal7Value
}

func (v *LoginVal7) Decode(r *packet.Reader) {
	packet.ReadList8(r, &v.Values)
}

func (v *LoginVal7) Encode(w *packet.Writer) {
	packet.WriteList8(w, v.Values)
}

type LoginVal7Value struct {
	Val0 uint32
	Val1 uint32
}

func (v *LoginVal7Value) Decode(r *packet.Reader) {
	v.Val0 = r.ReadDU()
	v.Val1 = r.ReadDU()
}

func (v *LoginVal7Value) Encode(w *packet.Writer) {
	w.WriteDU(v.Val0)
	w.WriteDU(v.Val1)
}

type LoginVal9 struct {
	Val0 uint16
	Val1 uint16
	Val2 uint16
}

func (v *LoginVal9) Decode(r *packet.Reader) {
	v.Val0 = r.ReadH()
	v.Val1 = r.ReadH()
	v.Val2 = r.ReadH()
}

func (v *LoginVal9) Encode(w *packet.Writer) {
	w.WriteH(v.Val0)
	w.WriteH(v.Val1)
	w.WriteH(v.Val2)
}

type LoginVal11 struct {
	Val0 byte
	Val1 uint32
	Val2 uint16
}

func (v *LoginVal11) Decode(r *packet.Reader) {
	v.Val0 = r.ReadC()
	v.Val1 = r.ReadDU()
	v.Val2 = r.ReadH()
}

func (v *LoginVal11) Encode(w *packet.Writer) {
	w.WriteC(v.Val0)
	w.WriteDU(v.Val1)
	w.WriteH(v.Val2)
}

type LoginVal12 struct {
	Values []LoginVal12Value
}

func (v *LoginVal12) Decode(r *packet.Reader) {
	packet.ReadList8(r, &v.Values)
}

func (v *LoginVal12) Encode(w *packet.Writer) {
	packet.WriteList8(w, v.Values)
}

type LoginVal12Value struct {
	Val0 byte
	Val1 byte
}

func (v *LoginVal12Value) Decode(r *packet.Reader) {
	v.Val0 = r.ReadC()
	v.Val1 = r.ReadC()
}

func (v *LoginVal12Value) Encode(w *packet.Writer) {
	w.WriteC(v.Val0)
	w.WriteC(v.Val1)
}

type LoginVal13 struct {
	Values []LoginVal13Value
}

func (v *LoginVal13) Decode(r *packet.Reader) {
	packet.ReadList8(r, &v.Values)
}

func (v *LoginVal13) Encode(w *packet.Writer) {
	packet.WriteList8(w, v.Values)
}

type LoginVal13Value struct {
	Val0 uint16
	Val1 byte
	Val2 byte
}

func (v *LoginVal13Value) Decode(r *packet.Reader) {
	v.Val0 = r.ReadH()
	v.Val1 = r.ReadC()
	v.Val2 = r.ReadC()
}

func (v *LoginVal13Value) Encode(w *packet.Writer) {
	w.WriteH(v.Val0)
	w.WriteC(v.Val1)
	w.WriteC(v.Val2)
}
