package world

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

type handoffTicket struct {
	OTP     uint32
	RanchID uint32
}

// HandoffIssuer hands out the one-time codes the lobby embeds in its
// ranch-entry response. The ranch server redeems the code when the
// client reconnects there; codes expire unredeemed after the TTL.
type HandoffIssuer struct {
	tickets *cache.Cache
}

func NewHandoffIssuer(ttl time.Duration) *HandoffIssuer {
	return &HandoffIssuer{
		tickets: cache.New(ttl, ttl),
	}
}

// Issue creates a fresh code for the character, replacing any code
// still pending for it.
func (h *HandoffIssuer) Issue(characterUID, ranchID uint32) uint32 {
	otp := randomOTP()
	h.tickets.Set(ticketKey(characterUID), handoffTicket{OTP: otp, RanchID: ranchID}, cache.DefaultExpiration)
	return otp
}

// Redeem consumes the pending code. It succeeds at most once per Issue
// and only with a matching code and ranch id.
func (h *HandoffIssuer) Redeem(characterUID, otp, ranchID uint32) bool {
	key := ticketKey(characterUID)
	v, ok := h.tickets.Get(key)
	if !ok {
		return false
	}
	t := v.(handoffTicket)
	if t.OTP != otp || t.RanchID != ranchID {
		return false
	}
	h.tickets.Delete(key)
	return true
}

func ticketKey(characterUID uint32) string {
	return strconv.FormatUint(uint64(characterUID), 10)
}

// randomOTP draws a non-zero code from crypto/rand. Zero is reserved
// so a zeroed packet can never redeem.
func randomOTP() uint32 {
	var buf [4]byte
	for {
		rand.Read(buf[:])
		if v := binary.LittleEndian.Uint32(buf[:]); v != 0 {
			return v
		}
	}
}
