// Package command defines the typed payload of every lobby and ranch
// command. Field layouts are fixed by the existing client and must
// match byte-for-byte; names ending in Unk/Val cover fields whose
// purpose is not yet understood, mirroring the community's protocol
// notes. Decode/Encode lean on the packet primitives and leave error
// tracking to the sticky Reader/Writer state.
package command

import (
	"net"
	"time"

	"github.com/aligo/server/internal/net/packet"
)

// Item is one inventory or equipment entry.
type Item struct {
	UID   uint32
	TID   uint32
	Val   uint32
	Count uint32
}

func (i *Item) Decode(r *packet.Reader) {
	i.UID = r.ReadDU()
	i.TID = r.ReadDU()
	i.Val = r.ReadDU()
	i.Count = r.ReadDU()
}

func (i *Item) Encode(w *packet.Writer) {
	w.WriteDU(i.UID)
	w.WriteDU(i.TID)
	w.WriteDU(i.Val)
	w.WriteDU(i.Count)
}

// Quest is one quest/achievement progress entry.
type Quest struct {
	TID     uint16
	Member0 uint32
	Member1 byte
	Member2 uint32
	Member3 byte
	Member4 byte
}

func (q *Quest) Decode(r *packet.Reader) {
	q.TID = r.ReadH()
	q.Member0 = r.ReadDU()
	q.Member1 = r.ReadC()
	q.Member2 = r.ReadDU()
	q.Member3 = r.ReadC()
	q.Member4 = r.ReadC()
}

func (q *Quest) Encode(w *packet.Writer) {
	w.WriteH(q.TID)
	w.WriteDU(q.Member0)
	w.WriteC(q.Member1)
	w.WriteDU(q.Member2)
	w.WriteC(q.Member3)
	w.WriteC(q.Member4)
}

// Address is an IPv4 endpoint announced for cross-server handoff:
// 4 raw octets followed by a u16 port.
type Address struct {
	IP   net.IP
	Port uint16
}

func (a *Address) Decode(r *packet.Reader) {
	octets := r.ReadBytes(4)
	if r.Err() != nil {
		return
	}
	a.IP = net.IPv4(octets[0], octets[1], octets[2], octets[3]).To4()
	a.Port = r.ReadH()
}

func (a *Address) Encode(w *packet.Writer) {
	ip := a.IP.To4()
	if ip == nil {
		ip = net.IPv4(127, 0, 0, 1).To4()
	}
	w.WriteBytes(ip)
	w.WriteH(a.Port)
}

// WinFileTime is a Windows FILETIME: 100ns intervals since 1601-01-01,
// split into two u32 halves.
type WinFileTime struct {
	LowDateTime  uint32
	HighDateTime uint32
}

// secondsBetweenEpochs is the offset from the Windows epoch (1601) to
// the Unix epoch (1970).
const secondsBetweenEpochs = 11644473600

func WinFileTimeFrom(t time.Time) WinFileTime {
	intervals := uint64(t.Unix()+secondsBetweenEpochs)*10_000_000 + uint64(t.Nanosecond()/100)
	return WinFileTime{
		LowDateTime:  uint32(intervals),
		HighDateTime: uint32(intervals >> 32),
	}
}

func (ft WinFileTime) Time() time.Time {
	intervals := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	secs := int64(intervals/10_000_000) - secondsBetweenEpochs
	nanos := int64(intervals%10_000_000) * 100
	return time.Unix(secs, nanos).UTC()
}

func (ft *WinFileTime) Decode(r *packet.Reader) {
	ft.LowDateTime = r.ReadDU()
	ft.HighDateTime = r.ReadDU()
}

func (ft *WinFileTime) Encode(w *packet.Writer) {
	w.WriteDU(ft.LowDateTime)
	w.WriteDU(ft.HighDateTime)
}
