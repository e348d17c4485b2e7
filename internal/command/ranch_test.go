package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aligo/server/internal/net/packet"
)

func TestRanchEnterRanchRoundTrip(t *testing.T) {
	in := RanchEnterRanch{CharacterUID: 4, OTP: 0x5EED, RanchUID: 4}

	w := packet.NewWriter()
	in.Encode(w)
	require.NoError(t, w.Err())
	assert.Len(t, w.Bytes(), 12)

	r := packet.NewReader(w.Bytes())
	var out RanchEnterRanch
	out.Decode(r)
	require.NoError(t, r.Err())
	assert.Equal(t, in, out)
}

func TestRanchEnterRanchOKRoundTrip(t *testing.T) {
	in := RanchEnterRanchOK{
		RanchID:   4,
		RanchName: "rgnt의 목장",
		Horses: []RanchHorse{
			{RanchIndex: 1, Horse: Horse{UID: 2, TID: 20001, Name: "idontunderstand"}},
		},
		Characters: []RanchCharacter{
			{UID: 4, Name: "rgnt", Gender: GenderBoy, Unk0: 1, Unk1: 1, RanchIndex: 2},
		},
	}

	w := packet.NewWriter()
	in.Encode(w)
	require.NoError(t, w.Err())

	r := packet.NewReader(w.Bytes())
	var out RanchEnterRanchOK
	out.Decode(r)
	require.NoError(t, r.Err())
	assert.Zero(t, r.Remaining())

	assert.Equal(t, in.RanchID, out.RanchID)
	assert.Equal(t, in.RanchName, out.RanchName)
	require.Len(t, out.Horses, 1)
	assert.Equal(t, uint16(1), out.Horses[0].RanchIndex)
	assert.Equal(t, in.Horses[0].Horse.Name, out.Horses[0].Horse.Name)
	require.Len(t, out.Characters, 1)
	assert.Equal(t, in.Characters[0].Name, out.Characters[0].Name)
	assert.Equal(t, uint16(2), out.Characters[0].RanchIndex)
}

func TestRanchChatNotifyRoundTrip(t *testing.T) {
	in := RanchChatNotify{Author: "rgnt", Message: "안녕하세요", IsBlue: 1}

	w := packet.NewWriter()
	in.Encode(w)
	require.NoError(t, w.Err())

	r := packet.NewReader(w.Bytes())
	var out RanchChatNotify
	out.Decode(r)
	require.NoError(t, r.Err())
	assert.Equal(t, in, out)
}
