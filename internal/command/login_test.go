package command

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aligo/server/internal/net/packet"
)

func TestLoginRoundTrip(t *testing.T) {
	in := Login{
		Constant0: 20,
		Constant1: 1,
		LoginID:   "rgnt",
		MemberNo:  4,
		AuthKey:   "abcd1234",
		Val0:      1,
	}

	w := packet.NewWriter()
	in.Encode(w)
	require.NoError(t, w.Err())

	r := packet.NewReader(w.Bytes())
	var out Login
	out.Decode(r)
	require.NoError(t, r.Err())
	assert.Equal(t, in, out)
}

func TestLoginOptions(t *testing.T) {
	t.Run("empty options encode a zero mask", func(t *testing.T) {
		w := packet.NewWriter()
		(&LoginOptions{}).Encode(w)
		require.NoError(t, w.Err())
		assert.Equal(t, []byte{0, 0, 0, 0}, w.Bytes())
	})

	t.Run("mask reflects populated blocks", func(t *testing.T) {
		value := uint32(100)
		in := LoginOptions{
			Keyboard: &KeyboardOptions{Bindings: []KeyboardBinding{{Index: 1, Type: 0x16, Key: 0x57}}},
			Macros:   &MacroOptions{Macros: [8]string{"/wink", "/hug"}},
			Values:   &value,
		}

		w := packet.NewWriter()
		in.Encode(w)
		require.NoError(t, w.Err())
		mask := binary.LittleEndian.Uint32(w.Bytes()[:4])
		assert.Equal(t, uint32(1<<0|1<<3|1<<4), mask)

		r := packet.NewReader(w.Bytes())
		var out LoginOptions
		out.Decode(r)
		require.NoError(t, r.Err())
		require.NotNil(t, out.Keyboard)
		assert.Equal(t, in.Keyboard.Bindings, out.Keyboard.Bindings)
		require.NotNil(t, out.Macros)
		assert.Equal(t, in.Macros.Macros, out.Macros.Macros)
		require.NotNil(t, out.Values)
		assert.Equal(t, value, *out.Values)
	})

	t.Run("absent blocks stay nil after decode", func(t *testing.T) {
		w := packet.NewWriter()
		(&LoginOptions{Macros: &MacroOptions{}}).Encode(w)
		require.NoError(t, w.Err())

		r := packet.NewReader(w.Bytes())
		var out LoginOptions
		out.Decode(r)
		require.NoError(t, r.Err())
		assert.Nil(t, out.Keyboard)
		assert.NotNil(t, out.Macros)
		assert.Nil(t, out.Values)
	})
}

func TestLoginOKRoundTrip(t *testing.T) {
	in := LoginOK{
		SelfUID:  4,
		Nickname: "rgnt",
		Motd:     "Welcome!",
		Status:   "status",
		CharacterEquipment: []Item{
			{UID: 1, TID: 30008, Count: 1},
		},
		Level:   161,
		Carrots: 255,
		Options: LoginOptions{
			Keyboard: &KeyboardOptions{Bindings: []KeyboardBinding{{Index: 1, Type: 0x16, Key: 0x57}}},
		},
		Val5:               []LoginVal5{{Val0: 24, Val1: []LoginVal5Val1{{Val0: 2, Val1: 1}}}},
		LobbyServerAddress: Address{IP: []byte{127, 0, 0, 1}, Port: 10030},
		ScramblingConstant: 0xCAFEBABE,
		Bitfield:           3590,
	}

	w := packet.NewWriter()
	in.Encode(w)
	require.NoError(t, w.Err())

	r := packet.NewReader(w.Bytes())
	var out LoginOK
	out.Decode(r)
	require.NoError(t, r.Err())
	assert.Zero(t, r.Remaining())

	assert.Equal(t, in.SelfUID, out.SelfUID)
	assert.Equal(t, in.Nickname, out.Nickname)
	assert.Equal(t, in.CharacterEquipment, out.CharacterEquipment)
	assert.Equal(t, in.Val5, out.Val5)
	assert.Equal(t, in.ScramblingConstant, out.ScramblingConstant)
	assert.Equal(t, in.Bitfield, out.Bitfield)

	// A second encode of the decoded message is byte-identical.
	w2 := packet.NewWriter()
	out.Encode(w2)
	require.NoError(t, w2.Err())
	assert.Equal(t, w.Bytes(), w2.Bytes())
}
